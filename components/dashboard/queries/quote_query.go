package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/RaiLord005/inventory-agent-software/components/dashboard"
)

type quoteService interface {
	Lookup(ctx context.Context, productID int) (*dashboard.ProductQuote, error)
}

// ProductQuoteQuery resolves the readonly form fields for a product id.
type ProductQuoteQuery struct {
	service quoteService
}

// NewProductQuoteQuery builds the query.
func NewProductQuoteQuery(service quoteService) *ProductQuoteQuery {
	return &ProductQuoteQuery{service: service}
}

var _ gocommand.Querier[int, *dashboard.ProductQuote] = (*ProductQuoteQuery)(nil)

// Query resolves the quote for the product.
func (q *ProductQuoteQuery) Query(ctx context.Context, productID int) (*dashboard.ProductQuote, error) {
	return q.service.Lookup(ctx, productID)
}
