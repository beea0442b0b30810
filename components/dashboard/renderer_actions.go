package dashboard

import "context"

// ActionsRenderer builds the data-entry tab: the record-sale and update-stock
// forms plus product management shortcuts. No fetches happen here; lookups and
// live previews run through the FormController as the user types.
type ActionsRenderer struct{}

func (ActionsRenderer) Render(_ context.Context, _ RenderContext) (*Page, error) {
	return &Page{
		Tab:   TabActions,
		Title: "Actions",
		Nodes: []Node{
			Row{Columns: []Node{
				Card{ID: "record-sale-card", Header: "Record Sale", Body: []Node{
					RecordSaleForm(),
				}},
				Card{ID: "update-stock-card", Header: "Update Stock", Body: []Node{
					UpdateStockForm(),
				}},
			}},
			Card{Header: "Product Management", Body: []Node{
				Action{Kind: ActionModal, Label: "Add New Product", Target: string(ModalAddProduct), Tone: ToneSuccess},
				Action{Kind: ActionNavigate, Label: "View Inventory", Target: string(TabInventory), Tone: TonePrimary},
			}},
		},
	}, nil
}

// RecordSaleForm declares the sale entry form. Revenue and profit are live
// previews; the server's receipt stays authoritative on submit.
func RecordSaleForm() FormSpec {
	return FormSpec{
		ID:    "record-sale",
		Title: "Record Sale",
		Fields: []FormField{
			{Name: "product_id", Label: "Product ID", Kind: "number", Required: true},
			{Name: "product_name", Label: "Product", Kind: "text", ReadOnly: true, Compute: "product_name"},
			{Name: "quantity", Label: "Quantity Sold", Kind: "number", Required: true},
			{Name: "revenue", Label: "Revenue", Kind: "text", ReadOnly: true, Compute: "revenue"},
			{Name: "profit", Label: "Profit", Kind: "text", ReadOnly: true, Compute: "profit"},
		},
		Submit: Action{Kind: ActionSubmit, Label: "Record Sale", Target: "record-sale", Tone: ToneSuccess},
	}
}

// UpdateStockForm declares the stock adjustment form. Unit cost is looked up
// per product and total cost recomputes as the quantity changes.
func UpdateStockForm() FormSpec {
	return FormSpec{
		ID:    "update-stock",
		Title: "Update Stock",
		Fields: []FormField{
			{Name: "product_id", Label: "Product ID", Kind: "number", Required: true},
			{Name: "product_name", Label: "Product", Kind: "text", ReadOnly: true, Compute: "product_name"},
			{Name: "quantity_change", Label: "Quantity to Add", Kind: "number", Required: true},
			{Name: "unit_cost", Label: "Unit Cost", Kind: "text", ReadOnly: true, Compute: "unit_cost"},
			{Name: "total_cost", Label: "Total Cost", Kind: "text", ReadOnly: true, Compute: "total_cost"},
		},
		Submit: Action{Kind: ActionSubmit, Label: "Update Stock", Target: "update-stock", Tone: TonePrimary},
	}
}
