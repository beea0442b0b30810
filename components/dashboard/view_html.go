package dashboard

import (
	"fmt"
	"html"
	"strings"
)

// NodeHTML serializes a single view node into an HTML fragment. Interactivity
// is expressed through data-action attributes so the transport's script layer
// can wire events without renderers knowing about the DOM.
func NodeHTML(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// PageHTML serializes a full page body.
func PageHTML(page *Page) string {
	if page == nil {
		return ""
	}
	var b strings.Builder
	for _, n := range page.Nodes {
		writeNode(&b, n)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Row:
		b.WriteString(`<div class="row">`)
		for _, col := range v.Columns {
			b.WriteString(`<div class="col">`)
			writeNode(b, col)
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	case Card:
		b.WriteString(`<div class="card"`)
		writeAttr(b, "id", v.ID)
		b.WriteString(`><div class="card-header">`)
		b.WriteString(html.EscapeString(v.Header))
		b.WriteString(`</div><div class="card-body">`)
		for _, child := range v.Body {
			writeNode(b, child)
		}
		b.WriteString(`</div></div>`)
	case Table:
		writeTable(b, v)
	case StatList:
		b.WriteString(`<div class="stat-list">`)
		for _, item := range v.Items {
			fmt.Fprintf(b, `<div class="stat-item"><span>%s</span><span class="badge badge-%s">%s</span>`,
				html.EscapeString(item.Label), toneClass(item.Tone), html.EscapeString(item.Value))
			if item.Caption != "" {
				fmt.Fprintf(b, `<small class="stat-caption">%s</small>`, html.EscapeString(item.Caption))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	case AlertBox:
		fmt.Fprintf(b, `<div class="alert alert-%s">%s</div>`, toneClass(v.Tone), html.EscapeString(v.Text))
	case Text:
		fmt.Fprintf(b, `<p class="text-%s">%s</p>`, toneClass(v.Tone), html.EscapeString(v.Content))
	case ChartSlot:
		fmt.Fprintf(b, `<div class="chart-slot" id="%s">%s</div>`, html.EscapeString(v.Slot), v.HTML)
	case Action:
		writeAction(b, v)
	case FormSpec:
		writeForm(b, v)
	}
}

func writeTable(b *strings.Builder, t Table) {
	hasActions := false
	for _, row := range t.Rows {
		if len(row.Actions) > 0 {
			hasActions = true
			break
		}
	}

	b.WriteString(`<table class="table"><thead><tr>`)
	for _, col := range t.Columns {
		fmt.Fprintf(b, `<th>%s</th>`, html.EscapeString(col))
	}
	if hasActions {
		b.WriteString(`<th>Action</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range t.Rows {
		fmt.Fprintf(b, `<tr class="row-%s">`, toneClass(row.Tone))
		for _, cell := range row.Cells {
			escaped := strings.ReplaceAll(html.EscapeString(cell), "\n", "<br>")
			fmt.Fprintf(b, `<td>%s</td>`, escaped)
		}
		if hasActions {
			b.WriteString(`<td>`)
			for _, action := range row.Actions {
				writeAction(b, action)
			}
			b.WriteString(`</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
}

func writeAction(b *strings.Builder, a Action) {
	fmt.Fprintf(b, `<button class="btn btn-%s"`, toneClass(a.Tone))
	writeAttr(b, "data-action", string(a.Kind))
	writeAttr(b, "data-target", a.Target)
	writeAttr(b, "data-anchor", a.Anchor)
	writeAttr(b, "data-confirm", a.Confirm)
	fmt.Fprintf(b, `>%s</button>`, html.EscapeString(a.Label))
}

func writeForm(b *strings.Builder, f FormSpec) {
	fmt.Fprintf(b, `<form id="%s" data-action="submit" data-target="%s">`,
		html.EscapeString(f.ID), html.EscapeString(f.Submit.Target))
	for _, field := range f.Fields {
		fieldID := f.ID + "-" + field.Name
		fmt.Fprintf(b, `<div class="form-group"><label for="%s">%s</label>`,
			html.EscapeString(fieldID), html.EscapeString(field.Label))
		fmt.Fprintf(b, `<input type="%s" id="%s" name="%s"`,
			html.EscapeString(field.Kind), html.EscapeString(fieldID), html.EscapeString(field.Name))
		writeAttr(b, "step", field.Step)
		writeAttr(b, "data-compute", field.Compute)
		if field.Required {
			b.WriteString(` required`)
		}
		if field.ReadOnly {
			b.WriteString(` readonly`)
		}
		b.WriteString(`></div>`)
	}
	fmt.Fprintf(b, `<button type="submit" class="btn btn-%s">%s</button></form>`,
		toneClass(f.Submit.Tone), html.EscapeString(f.Submit.Label))
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, ` %s="%s"`, name, html.EscapeString(value))
}

func toneClass(t Tone) string {
	if t == "" {
		return string(ToneMuted)
	}
	return string(t)
}
