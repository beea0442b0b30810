package dashboard

import (
	"context"
	"fmt"
)

// InventoryRenderer builds the complete inventory table with per-product
// status tiers and destructive delete actions.
type InventoryRenderer struct{}

var inventoryColumns = []string{
	"Product ID", "Product", "Current Stock", "Safety Level", "Forecasted Demand",
	"Lead Time", "Annual Demand", "Order Cost", "Holding Cost", "MRP (1 unit)",
	"Expiry Date", "Status",
}

func (InventoryRenderer) Render(ctx context.Context, rc RenderContext) (*Page, error) {
	inventory, err := rc.Client.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]TableRow, 0, len(inventory))
	for _, product := range inventory {
		status := StatusFor(product)
		rows = append(rows, TableRow{
			Cells: []string{
				fmt.Sprintf("%d", product.ProductID),
				product.ProductName,
				fmt.Sprintf("%d", product.CurrentStock),
				fmt.Sprintf("%d", product.SafetyStockLevel),
				fmt.Sprintf("%d", product.ForecastedDemand),
				fmt.Sprintf("%d days", product.LeadTimeDays),
				fmt.Sprintf("%d", product.AnnualDemand),
				"Rs." + product.OrderCostFixed.StringFixed(2),
				"Rs." + product.HoldingCostPerUnit.StringFixed(2),
				"Rs." + product.MRP.StringFixed(2),
				product.ExpiryDate,
				string(status),
			},
			Tone: statusTone(status),
			Actions: []Action{{
				Kind:    ActionDelete,
				Label:   "Delete",
				Target:  fmt.Sprintf("%d", product.ProductID),
				Tone:    ToneDanger,
				Confirm: fmt.Sprintf("Are you sure you want to delete product %d? This action cannot be undone.", product.ProductID),
			}},
		})
	}

	return &Page{
		Tab:   TabInventory,
		Title: "Inventory",
		Nodes: []Node{
			Card{Header: "Complete Inventory List", Body: []Node{
				Table{Columns: inventoryColumns, Rows: rows},
				Action{Kind: ActionModal, Label: "Add New Product", Target: string(ModalAddProduct), Tone: ToneSuccess},
			}},
		},
	}, nil
}

func statusTone(status StockStatus) Tone {
	switch status {
	case StatusCritical:
		return ToneDanger
	case StatusWarning:
		return ToneWarning
	default:
		return ToneSuccess
	}
}
