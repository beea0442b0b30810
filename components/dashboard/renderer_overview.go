package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// OverviewRenderer builds the landing tab: quick actions, alert summary,
// stock chart, and mover lists.
type OverviewRenderer struct{}

// Render pulls five datasets concurrently. A slow-moving failure degrades to
// an empty list; any other fetch failure aborts the whole view. The sales
// summary widget is independent and degrades on its own.
func (OverviewRenderer) Render(ctx context.Context, rc RenderContext) (*Page, error) {
	var (
		inventory []apiclient.Product
		advice    []apiclient.AdviceEntry
		fast      []apiclient.MovementItem
		slow      []apiclient.MovementItem
		expiry    []apiclient.ExpiryAlert

		invErr, adviceErr, fastErr, expiryErr error
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		inventory, invErr = rc.Client.Inventory(ctx)
	}()
	go func() {
		defer wg.Done()
		advice, adviceErr = rc.Client.Advice(ctx)
	}()
	go func() {
		defer wg.Done()
		fast, fastErr = rc.Client.FastMoving(ctx)
	}()
	go func() {
		defer wg.Done()
		expiry, expiryErr = rc.Client.ExpiryAlerts(ctx)
	}()
	go func() {
		defer wg.Done()
		// Slow movers are a nice-to-have; a failure here never takes the
		// overview down with it.
		items, err := rc.Client.SlowMoving(ctx)
		if err != nil {
			rc.Telemetry.Record(ctx, "dashboard.overview.slow_moving_degraded", map[string]any{
				"error": err.Error(),
			})
			return
		}
		slow = items
	}()
	wg.Wait()

	if err := errors.Join(invErr, adviceErr, fastErr, expiryErr); err != nil {
		return nil, err
	}

	criticalCount := 0
	for _, entry := range advice {
		if AdviceCritical(entry) {
			criticalCount++
		}
	}
	expiringSoon := 0
	for _, alert := range expiry {
		if alert.DaysToExpiry <= 30 {
			expiringSoon++
		}
	}

	stockChart, err := rc.Charts.StockChart(inventory)
	if err != nil {
		return nil, err
	}

	page := &Page{Tab: TabOverview, Title: "Overview"}
	page.Nodes = append(page.Nodes,
		Row{Columns: []Node{
			Card{Header: "Quick Actions", Body: []Node{
				Action{Kind: ActionNavigate, Label: "Record Sale", Target: string(TabActions), Tone: ToneSuccess},
				Action{Kind: ActionNavigate, Label: "Update Stock", Target: string(TabActions), Anchor: "update-stock-card", Tone: TonePrimary},
				Action{Kind: ActionNavigate, Label: "Generate Purchase Order", Target: string(TabOrders), Tone: ToneWarning},
				Action{Kind: ActionNavigate, Label: "View P/L or History", Target: string(TabHistory), Tone: ToneInfo},
			}},
			Card{Header: "Critical Alerts", Body: []Node{
				AlertBox{Tone: ToneDanger, Text: fmt.Sprintf("%d items need immediate reordering", criticalCount)},
				AlertBox{Tone: ToneWarning, Text: fmt.Sprintf("%d items expiring soon", len(expiry))},
			}},
		}},
		Row{Columns: []Node{
			Card{Header: "Stock Status Overview", Body: []Node{
				ChartSlot{Slot: stockChart.Slot, HTML: stockChart.HTML},
			}},
			Card{Header: "Fast Moving Items", Body: []Node{movementList(fast, ToneSuccess)}},
		}},
		Row{Columns: []Node{
			Card{Header: "Slow Moving Items", Body: []Node{movementList(slow, ToneWarning)}},
			Card{Header: "Expiry Alerts Summary", Body: []Node{StatList{Items: []StatItem{
				{Label: "Total Expiring Products", Value: fmt.Sprintf("%d", len(expiry)), Tone: ToneDanger},
				{Label: "Within 30 Days", Value: fmt.Sprintf("%d", expiringSoon), Tone: ToneWarning},
			}}}},
		}},
		salesSummaryWidget(ctx, rc),
	)
	return page, nil
}

// salesSummaryWidget fetches the monthly summary for the secondary widget.
// Its failure degrades the widget alone, never the overview.
func salesSummaryWidget(ctx context.Context, rc RenderContext) Node {
	summary, err := rc.Client.SalesSummary(ctx)
	if err != nil {
		rc.Telemetry.Record(ctx, "dashboard.overview.sales_summary_degraded", map[string]any{
			"error": err.Error(),
		})
		return Card{Header: "Sales Summary", Body: []Node{
			Text{Tone: ToneMuted, Content: "Unable to load sales summary"},
		}}
	}

	totalQuantity := 0.0
	for _, quantity := range summary.QuantitySold {
		totalQuantity += quantity
	}
	totalRevenue := 0.0
	for _, revenue := range summary.Revenue {
		totalRevenue += revenue
	}
	return Card{Header: "Sales Summary", Body: []Node{StatList{Items: []StatItem{
		{Label: "Total Sales Quantity", Value: fmt.Sprintf("%.0f units", totalQuantity), Tone: TonePrimary},
		{Label: "Total Revenue", Value: fmt.Sprintf("Rs.%.2f", totalRevenue), Tone: ToneSuccess},
	}}}}
}

func movementList(items []apiclient.MovementItem, tone Tone) Node {
	if len(items) == 0 {
		return Text{Tone: ToneMuted, Content: "No items to show"}
	}
	stats := make([]StatItem, len(items))
	for i, item := range items {
		stats[i] = StatItem{
			Label: item.ProductName,
			Value: fmt.Sprintf("%d units", item.QuantitySold),
			Tone:  tone,
		}
	}
	return StatList{Items: stats}
}
