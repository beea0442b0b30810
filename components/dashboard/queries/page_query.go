package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/RaiLord005/inventory-agent-software/components/dashboard"
)

// PageQueryInput identifies the tab to render.
type PageQueryInput struct {
	Tab    dashboard.Tab
	Anchor string
}

type navigator interface {
	Navigate(ctx context.Context, tab dashboard.Tab, options ...dashboard.NavigateOption) (*dashboard.Page, error)
}

// PageQuery executes a read-only tab render through the coordinator.
type PageQuery struct {
	coordinator navigator
}

// NewPageQuery builds the query.
func NewPageQuery(coordinator navigator) *PageQuery {
	return &PageQuery{coordinator: coordinator}
}

var _ gocommand.Querier[PageQueryInput, *dashboard.Page] = (*PageQuery)(nil)

// Query renders the requested tab.
func (q *PageQuery) Query(ctx context.Context, input PageQueryInput) (*dashboard.Page, error) {
	if input.Anchor != "" {
		return q.coordinator.Navigate(ctx, input.Tab, dashboard.WithAnchor(input.Anchor))
	}
	return q.coordinator.Navigate(ctx, input.Tab)
}
