package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeHTMLEscapesContent(t *testing.T) {
	got := NodeHTML(Text{Content: `<script>alert("x")</script>`})
	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
}

func TestNodeHTMLDefaultsToneToMuted(t *testing.T) {
	assert.Contains(t, NodeHTML(Text{Content: "hello"}), `class="text-muted"`)
	assert.Contains(t, NodeHTML(Text{Tone: ToneDanger, Content: "hello"}), `class="text-danger"`)
}

func TestTableAppendsActionColumnWhenAnyRowHasActions(t *testing.T) {
	table := Table{
		Columns: []string{"Product", "Stock"},
		Rows: []TableRow{
			{Cells: []string{"Aspirin", "4"}, Tone: ToneDanger, Actions: []Action{
				{Kind: ActionDelete, Label: "Delete", Target: "1", Tone: ToneDanger, Confirm: "Are you sure?"},
			}},
			{Cells: []string{"Ibuprofen", "40"}},
		},
	}

	got := NodeHTML(table)
	assert.Contains(t, got, "<th>Action</th>")
	assert.Contains(t, got, `data-action="delete"`)
	assert.Contains(t, got, `data-confirm="Are you sure?"`)
	assert.Contains(t, got, `class="row-danger"`)
	assert.Contains(t, got, `class="row-muted"`)
}

func TestTableOmitsActionColumnWithoutActions(t *testing.T) {
	got := NodeHTML(Table{
		Columns: []string{"Product"},
		Rows:    []TableRow{{Cells: []string{"Aspirin"}}},
	})
	assert.NotContains(t, got, "<th>Action</th>")
}

func TestTableRendersNewlinesAsBreaks(t *testing.T) {
	got := NodeHTML(Table{
		Columns: []string{"Recommendation"},
		Rows:    []TableRow{{Cells: []string{"CRITICAL restock\nReorder 40 units"}}},
	})
	assert.Contains(t, got, "CRITICAL restock<br>Reorder 40 units")
}

func TestActionAttributes(t *testing.T) {
	got := NodeHTML(Action{
		Kind:   ActionNavigate,
		Label:  "View Full History",
		Target: string(TabHistory),
		Anchor: "totals",
		Tone:   TonePrimary,
	})
	assert.Contains(t, got, `data-action="navigate"`)
	assert.Contains(t, got, `data-target="history"`)
	assert.Contains(t, got, `data-anchor="totals"`)
	assert.Contains(t, got, `class="btn btn-primary"`)
	assert.Contains(t, got, ">View Full History<")
	assert.NotContains(t, got, "data-confirm")
}

func TestFormSpecMarkup(t *testing.T) {
	got := NodeHTML(FormSpec{
		ID:    "record-sale-form",
		Title: "Record Sale",
		Fields: []FormField{
			{Name: "product_id", Label: "Product ID", Kind: "number", Required: true},
			{Name: "revenue", Label: "Revenue", Kind: "number", ReadOnly: true, Step: "0.01", Compute: "revenue"},
		},
		Submit: Action{Kind: ActionSubmit, Label: "Record Sale", Target: "/api/record-sale", Tone: TonePrimary},
	})

	assert.Contains(t, got, `<form id="record-sale-form" data-action="submit" data-target="/api/record-sale">`)
	assert.Contains(t, got, `name="product_id"`)
	assert.Contains(t, got, ` required`)
	assert.Contains(t, got, `data-compute="revenue"`)
	assert.Contains(t, got, ` readonly`)
	assert.Contains(t, got, `step="0.01"`)
	assert.Contains(t, got, `for="record-sale-form-product_id"`)
}

func TestCardAndRowNesting(t *testing.T) {
	got := NodeHTML(Row{Columns: []Node{
		Card{ID: "stock-card", Header: "Stock & Alerts", Body: []Node{Text{Content: "ok"}}},
	}})

	assert.Contains(t, got, `<div class="row">`)
	assert.Contains(t, got, `<div class="col">`)
	assert.Contains(t, got, `id="stock-card"`)
	assert.Contains(t, got, "Stock &amp; Alerts")
}

func TestChartSlotEmbedsRawHTML(t *testing.T) {
	got := NodeHTML(ChartSlot{Slot: SlotStock, HTML: "<div>chart markup</div>"})
	assert.Contains(t, got, `id="stock-chart"`)
	assert.Contains(t, got, "<div>chart markup</div>")
}

func TestStatListCaption(t *testing.T) {
	got := NodeHTML(StatList{Items: []StatItem{
		{Label: "Net Profit", Value: "812.50", Tone: ToneSuccess, Caption: "margin + total profit"},
	}})
	assert.Contains(t, got, "Net Profit")
	assert.Contains(t, got, `badge-success`)
	assert.Contains(t, got, "margin + total profit")
}

func TestPageHTMLNilPage(t *testing.T) {
	assert.Equal(t, "", PageHTML(nil))
}
