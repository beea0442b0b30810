package dashboard

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// OrdersRenderer builds the draft purchase order table with print and export
// affordances.
type OrdersRenderer struct{}

var orderColumns = []string{"Product", "Current Stock", "Reorder Quantity", "EOQ", "Priority"}

func (OrdersRenderer) Render(ctx context.Context, rc RenderContext) (*Page, error) {
	lines, err := rc.Client.PurchaseOrder(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]TableRow, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, TableRow{
			Cells: []string{
				line.ProductName,
				fmt.Sprintf("%d", line.CurrentStock),
				fmt.Sprintf("%d", line.ReorderQuantity),
				fmt.Sprintf("%d", line.EOQ),
				line.Priority,
			},
			Tone: priorityTone(line.Priority),
		})
	}

	return &Page{
		Tab:   TabOrders,
		Title: "Purchase Orders",
		Nodes: []Node{
			Card{Header: "Draft Purchase Order", Body: []Node{
				Table{Columns: orderColumns, Rows: rows},
				Action{Kind: ActionPrint, Label: "Print Order", Tone: TonePrimary},
				Action{Kind: ActionExport, Label: "Export CSV", Target: "purchase-order.csv", Tone: ToneSuccess},
			}},
		},
	}, nil
}

func priorityTone(priority string) Tone {
	switch strings.ToUpper(priority) {
	case "HIGH":
		return ToneDanger
	case "MEDIUM":
		return ToneWarning
	default:
		return ToneInfo
	}
}

// ExportOrderCSV serializes the draft order for download. The header row
// mirrors the on-screen table.
func ExportOrderCSV(lines []apiclient.OrderLine) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(orderColumns); err != nil {
		return "", err
	}
	for _, line := range lines {
		record := []string{
			line.ProductName,
			fmt.Sprintf("%d", line.CurrentStock),
			fmt.Sprintf("%d", line.ReorderQuantity),
			fmt.Sprintf("%d", line.EOQ),
			line.Priority,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
