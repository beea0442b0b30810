package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// HistoryRenderer builds the profit/loss statement and the full transaction
// log.
type HistoryRenderer struct{}

// HistoryTotals are the aggregate P/L figures derived from the transaction
// log. All amounts use exact decimal arithmetic.
type HistoryTotals struct {
	GrossRevenue    decimal.Decimal
	OrderCost       decimal.Decimal
	TotalProfit     decimal.Decimal
	MarginOfRevenue decimal.Decimal
	NetProfit       decimal.Decimal
}

// AggregateHistory folds the flat transaction log into P/L totals. Sales
// contribute revenue and profit; purchases contribute their absolute revenue
// as order cost. Margin is gross revenue minus order cost, and net profit is
// margin plus total profit.
func AggregateHistory(entries []apiclient.HistoryEntry) HistoryTotals {
	var totals HistoryTotals
	for _, entry := range entries {
		switch strings.ToLower(entry.Type) {
		case "sale":
			totals.GrossRevenue = totals.GrossRevenue.Add(entry.Revenue)
			totals.TotalProfit = totals.TotalProfit.Add(entry.Profit)
		case "purchase":
			totals.OrderCost = totals.OrderCost.Add(entry.Revenue.Abs())
		}
	}
	totals.MarginOfRevenue = totals.GrossRevenue.Sub(totals.OrderCost)
	totals.NetProfit = totals.MarginOfRevenue.Add(totals.TotalProfit)
	return totals
}

func (HistoryRenderer) Render(ctx context.Context, rc RenderContext) (*Page, error) {
	entries, err := rc.Client.SalesHistory(ctx)
	if err != nil {
		return nil, err
	}

	totals := AggregateHistory(entries)

	rows := make([]TableRow, 0, len(entries))
	for _, entry := range entries {
		tone := ToneInfo
		if strings.EqualFold(entry.Type, "sale") {
			tone = ToneSuccess
		}
		rows = append(rows, TableRow{
			Cells: []string{
				strings.ToUpper(entry.Type),
				entry.ProductName,
				entry.SaleDate,
				fmt.Sprintf("%d", entry.QuantitySold),
				"Rs." + entry.Revenue.StringFixed(2),
				"Rs." + entry.Profit.StringFixed(2),
			},
			Tone: tone,
		})
	}

	return &Page{
		Tab:   TabHistory,
		Title: "Sales History & P/L",
		Nodes: []Node{
			Card{Header: "Profit & Loss Statement", Body: []Node{
				StatList{Items: []StatItem{
					{
						Label:   "Gross Revenue",
						Value:   "Rs." + totals.GrossRevenue.StringFixed(2),
						Tone:    TonePrimary,
						Caption: "sum of sale revenue",
					},
					{
						Label:   "Order Cost",
						Value:   "Rs." + totals.OrderCost.StringFixed(2),
						Tone:    ToneWarning,
						Caption: "sum of purchase amounts",
					},
					{
						Label:   "Total Profit",
						Value:   "Rs." + totals.TotalProfit.StringFixed(2),
						Tone:    ToneSuccess,
						Caption: "sum of sale profit",
					},
					{
						Label:   "Margin of Revenue",
						Value:   "Rs." + totals.MarginOfRevenue.StringFixed(2),
						Tone:    ToneInfo,
						Caption: "gross revenue - order cost",
					},
					{
						Label:   "Net Profit",
						Value:   "Rs." + totals.NetProfit.StringFixed(2),
						Tone:    ToneSuccess,
						Caption: "margin of revenue + total profit",
					},
				}},
			}},
			Card{Header: "Transaction History", Body: []Node{
				Table{
					Columns: []string{"Type", "Product", "Date", "Quantity", "Revenue", "Profit"},
					Rows:    rows,
				},
				Action{Kind: ActionNavigate, Label: "Back to Sales", Target: string(TabSales), Tone: ToneMuted},
			}},
		},
	}, nil
}
