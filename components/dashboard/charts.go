package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

const defaultChartHeight = "360px"

// Chart slots. One live handle per visible canvas.
const (
	SlotStock = "stock-chart"
	SlotSales = "sales-chart"
)

var statusFillColors = map[StockStatus]string{
	StatusCritical: "rgba(255, 71, 87, 0.9)",
	StatusWarning:  "rgba(255, 170, 0, 0.9)",
	StatusOptimal:  "rgba(0, 255, 170, 0.9)",
}

// ChartHandle is one live chart bound to a slot. Handles are destroyed and
// recreated on navigation so stale charts never stack on the same canvas.
type ChartHandle struct {
	Slot  string
	HTML  string
	Theme Theme

	rebuild func(Theme) (string, error)
}

// ChartAdapter builds go-echarts markup from fetched series and owns the live
// handle registry.
type ChartAdapter struct {
	mu      sync.Mutex
	cache   RenderCache
	theme   Theme
	handles map[string]*ChartHandle
}

// ChartAdapterOption customizes adapter behavior.
type ChartAdapterOption func(*ChartAdapter)

// WithRenderCache injects a render cache.
func WithRenderCache(cache RenderCache) ChartAdapterOption {
	return func(a *ChartAdapter) {
		a.cache = cache
	}
}

// WithInitialTheme sets the starting theme.
func WithInitialTheme(theme Theme) ChartAdapterOption {
	return func(a *ChartAdapter) {
		a.theme = theme
	}
}

// NewChartAdapter builds an adapter with a five minute render cache.
func NewChartAdapter(options ...ChartAdapterOption) *ChartAdapter {
	a := &ChartAdapter{
		cache:   NewChartCache(5 * time.Minute),
		theme:   DefaultTheme,
		handles: make(map[string]*ChartHandle),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Theme returns the adapter's current theme.
func (a *ChartAdapter) Theme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

// StockChart renders the stock-status bar chart: one bar per product, fill
// color chosen by the shared status classification, border color by the
// safety-level border rule.
func (a *ChartAdapter) StockChart(products []apiclient.Product) (*ChartHandle, error) {
	theme := a.Theme()
	rebuild := func(t Theme) (string, error) {
		return a.renderCached(SlotStock, t, products, func() (string, error) {
			return renderStockChart(products, t)
		})
	}
	html, err := rebuild(theme)
	if err != nil {
		return nil, err
	}
	handle := &ChartHandle{Slot: SlotStock, HTML: html, Theme: theme, rebuild: rebuild}
	a.mount(handle)
	return handle, nil
}

// SalesTrendChart renders the monthly multi-series trend chart.
func (a *ChartAdapter) SalesTrendChart(summary apiclient.SalesSummary) (*ChartHandle, error) {
	theme := a.Theme()
	rebuild := func(t Theme) (string, error) {
		return a.renderCached(SlotSales, t, summary, func() (string, error) {
			return renderSalesTrendChart(summary, t)
		})
	}
	html, err := rebuild(theme)
	if err != nil {
		return nil, err
	}
	handle := &ChartHandle{Slot: SlotSales, HTML: html, Theme: theme, rebuild: rebuild}
	a.mount(handle)
	return handle, nil
}

// mount replaces any live handle on the same slot.
func (a *ChartAdapter) mount(handle *ChartHandle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.handles, handle.Slot)
	a.handles[handle.Slot] = handle
}

// Handle returns the live handle for a slot.
func (a *ChartAdapter) Handle(slot string) (*ChartHandle, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	handle, ok := a.handles[slot]
	return handle, ok
}

// Destroy drops the handle for a slot.
func (a *ChartAdapter) Destroy(slot string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.handles, slot)
}

// DestroyAll drops every live handle, used on tab change.
func (a *ChartAdapter) DestroyAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handles = make(map[string]*ChartHandle)
}

// UpdateTheme re-renders every live handle in place with the new theme so
// axis and legend colors match the page.
func (a *ChartAdapter) UpdateTheme(theme Theme) error {
	a.mu.Lock()
	a.theme = theme
	live := make([]*ChartHandle, 0, len(a.handles))
	for _, handle := range a.handles {
		live = append(live, handle)
	}
	a.mu.Unlock()

	for _, handle := range live {
		html, err := handle.rebuild(theme)
		if err != nil {
			return fmt.Errorf("dashboard: redraw chart %s: %w", handle.Slot, err)
		}
		a.mu.Lock()
		handle.HTML = html
		handle.Theme = theme
		a.mu.Unlock()
	}
	return nil
}

func (a *ChartAdapter) renderCached(slot string, theme Theme, data any, render func() (string, error)) (string, error) {
	if a.cache == nil {
		return render()
	}
	key := fmt.Sprintf("%s:%s:%s", slot, theme, datasetHash(data))
	return a.cache.GetOrRender(key, render)
}

func renderStockChart(products []apiclient.Product, theme Theme) (string, error) {
	labels := make([]string, len(products))
	data := make([]opts.BarData, len(products))
	for i, product := range products {
		labels[i] = truncateLabel(product.ProductName, 15)
		data[i] = opts.BarData{
			Name:  product.ProductName,
			Value: product.CurrentStock,
			ItemStyle: &opts.ItemStyle{
				Color:       statusFillColors[StatusFor(product)],
				BorderColor: borderColorFor(product),
			},
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(globalChartOptions("Stock Status Overview", theme)...)
	bar.SetXAxis(labels)
	bar.AddSeries("Current Stock", data)
	return renderChart(bar)
}

// borderColorFor keeps the original border rule, which tiers against the
// safety level alone rather than the shared status classification.
func borderColorFor(p apiclient.Product) string {
	switch {
	case p.CurrentStock*2 <= p.SafetyStockLevel:
		return "rgba(255, 71, 87, 1)"
	case p.CurrentStock <= p.SafetyStockLevel:
		return "rgba(255, 170, 0, 1)"
	default:
		return "rgba(0, 255, 170, 1)"
	}
}

func renderSalesTrendChart(summary apiclient.SalesSummary, theme Theme) (string, error) {
	months := monthAxis(summary)

	line := charts.NewLine()
	line.SetGlobalOptions(globalChartOptions("Monthly Sales Trend", theme)...)
	line.SetXAxis(months)
	for _, series := range []struct {
		name   string
		values map[string]float64
	}{
		{"Gross Revenue", summary.GrossRevenue},
		{"Order Cost", summary.OrderCost},
		{"Total Profit", summary.TotalProfit},
		{"Margin of Revenue", summary.MarginOfRevenue},
		{"Net Profit", summary.NetProfit},
	} {
		line.AddSeries(series.name, toLineData(months, series.values))
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

// monthAxis returns the union of month keys across all series, sorted.
func monthAxis(summary apiclient.SalesSummary) []string {
	seen := map[string]struct{}{}
	for _, series := range []map[string]float64{
		summary.GrossRevenue,
		summary.OrderCost,
		summary.TotalProfit,
		summary.MarginOfRevenue,
		summary.NetProfit,
	} {
		for month := range series {
			seen[month] = struct{}{}
		}
	}
	months := make([]string, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	sort.Strings(months)
	return months
}

func toLineData(months []string, values map[string]float64) []opts.LineData {
	data := make([]opts.LineData, len(months))
	for i, month := range months {
		data[i] = opts.LineData{Name: month, Value: values[month]}
	}
	return data
}

func globalChartOptions(title string, theme Theme) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  theme.ChartTheme(),
			Width:  "100%",
			Height: defaultChartHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func truncateLabel(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max]) + "..."
}
