package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// SalesRenderer builds the sales analytics tab: the monthly trend chart plus
// fast and slow mover lists.
type SalesRenderer struct{}

func (SalesRenderer) Render(ctx context.Context, rc RenderContext) (*Page, error) {
	var (
		summary apiclient.SalesSummary
		fast    []apiclient.MovementItem
		slow    []apiclient.MovementItem

		summaryErr, fastErr, slowErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		summary, summaryErr = rc.Client.SalesSummary(ctx)
	}()
	go func() {
		defer wg.Done()
		fast, fastErr = rc.Client.FastMoving(ctx)
	}()
	go func() {
		defer wg.Done()
		slow, slowErr = rc.Client.SlowMoving(ctx)
	}()
	wg.Wait()

	if err := errors.Join(summaryErr, fastErr, slowErr); err != nil {
		return nil, err
	}

	trend, err := rc.Charts.SalesTrendChart(summary)
	if err != nil {
		return nil, err
	}

	return &Page{
		Tab:   TabSales,
		Title: "Sales Analytics",
		Nodes: []Node{
			Card{Header: "Monthly Sales Trend", Body: []Node{
				ChartSlot{Slot: trend.Slot, HTML: trend.HTML},
				Action{Kind: ActionNavigate, Label: "View Full History", Target: string(TabHistory), Tone: ToneInfo},
			}},
			Row{Columns: []Node{
				Card{Header: "Fast Moving Items", Body: []Node{movementList(fast, ToneSuccess)}},
				Card{Header: "Slow Moving Items", Body: []Node{movementList(slow, ToneWarning)}},
			}},
		},
	}, nil
}
