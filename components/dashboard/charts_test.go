package dashboard

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

func stockFixture() []apiclient.Product {
	return []apiclient.Product{
		{ProductID: 1, ProductName: "Aspirin", CurrentStock: 4, SafetyStockLevel: 10, ForecastedDemand: 30},
		{ProductID: 2, ProductName: "Ibuprofen", CurrentStock: 15, SafetyStockLevel: 10, ForecastedDemand: 30},
		{ProductID: 3, ProductName: "Paracetamol", CurrentStock: 80, SafetyStockLevel: 10, ForecastedDemand: 30},
	}
}

func TestStockChartColorsByStatus(t *testing.T) {
	adapter := NewChartAdapter()
	handle, err := adapter.StockChart(stockFixture())
	require.NoError(t, err)

	assert.Equal(t, SlotStock, handle.Slot)
	// fills follow the shared status classification
	assert.Contains(t, handle.HTML, "rgba(255, 71, 87, 0.9)")
	assert.Contains(t, handle.HTML, "rgba(255, 170, 0, 0.9)")
	assert.Contains(t, handle.HTML, "rgba(0, 255, 170, 0.9)")
	// borders follow the safety-level rule
	assert.Contains(t, handle.HTML, "rgba(255, 71, 87, 1)")
	assert.Contains(t, handle.HTML, "Stock Status Overview")
}

func TestBorderColorTiersAgainstSafetyLevel(t *testing.T) {
	red := apiclient.Product{CurrentStock: 5, SafetyStockLevel: 10}
	amber := apiclient.Product{CurrentStock: 8, SafetyStockLevel: 10}
	green := apiclient.Product{CurrentStock: 11, SafetyStockLevel: 10}

	assert.Equal(t, "rgba(255, 71, 87, 1)", borderColorFor(red))
	assert.Equal(t, "rgba(255, 170, 0, 1)", borderColorFor(amber))
	assert.Equal(t, "rgba(0, 255, 170, 1)", borderColorFor(green))
}

func TestStockChartTruncatesLongLabels(t *testing.T) {
	adapter := NewChartAdapter()
	handle, err := adapter.StockChart([]apiclient.Product{
		{ProductID: 1, ProductName: "Extremely Long Product Name", CurrentStock: 5},
	})
	require.NoError(t, err)
	assert.Contains(t, handle.HTML, "Extremely Long ...")
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 15))
	assert.Equal(t, "exactly fifteen", truncateLabel("exactly fifteen", 15))
	assert.Equal(t, "one character o...", truncateLabel("one character over", 15))
}

func TestTruncateLabelCutsOnRunes(t *testing.T) {
	name := strings.Repeat("म", 20)
	got := truncateLabel(name, 15)

	assert.Equal(t, strings.Repeat("म", 15)+"...", got)
	assert.True(t, utf8.ValidString(got))
	// multibyte names within the limit pass through untouched
	assert.Equal(t, "पैरासिटामोल", truncateLabel("पैरासिटामोल", 15))
}

func TestSalesTrendChartSeries(t *testing.T) {
	adapter := NewChartAdapter()
	handle, err := adapter.SalesTrendChart(apiclient.SalesSummary{
		GrossRevenue: map[string]float64{"2026-07": 1200, "2026-08": 1500},
		NetProfit:    map[string]float64{"2026-08": 400},
	})
	require.NoError(t, err)

	assert.Equal(t, SlotSales, handle.Slot)
	for _, series := range []string{"Gross Revenue", "Order Cost", "Total Profit", "Margin of Revenue", "Net Profit"} {
		assert.Contains(t, handle.HTML, series)
	}
	assert.Contains(t, handle.HTML, "Monthly Sales Trend")
}

func TestMonthAxisUnionSorted(t *testing.T) {
	months := monthAxis(apiclient.SalesSummary{
		GrossRevenue: map[string]float64{"2026-08": 1, "2026-06": 1},
		OrderCost:    map[string]float64{"2026-07": 1},
		NetProfit:    map[string]float64{"2026-08": 1},
	})
	assert.Equal(t, []string{"2026-06", "2026-07", "2026-08"}, months)
}

func TestMountReplacesHandleOnSameSlot(t *testing.T) {
	adapter := NewChartAdapter()
	first, err := adapter.StockChart(stockFixture())
	require.NoError(t, err)
	second, err := adapter.StockChart(stockFixture()[:1])
	require.NoError(t, err)

	live, ok := adapter.Handle(SlotStock)
	require.True(t, ok)
	assert.Same(t, second, live)
	assert.NotSame(t, first, live)
}

func TestDestroyAllDropsHandles(t *testing.T) {
	adapter := NewChartAdapter()
	_, err := adapter.StockChart(stockFixture())
	require.NoError(t, err)
	_, err = adapter.SalesTrendChart(apiclient.SalesSummary{})
	require.NoError(t, err)

	adapter.DestroyAll()

	_, ok := adapter.Handle(SlotStock)
	assert.False(t, ok)
	_, ok = adapter.Handle(SlotSales)
	assert.False(t, ok)
}

func TestUpdateThemeRedrawsLiveHandles(t *testing.T) {
	adapter := NewChartAdapter()
	handle, err := adapter.StockChart(stockFixture())
	require.NoError(t, err)
	require.Equal(t, ThemeLight, handle.Theme)
	require.True(t, strings.Contains(handle.HTML, ThemeLight.ChartTheme()))

	require.NoError(t, adapter.UpdateTheme(ThemeDark))

	assert.Equal(t, ThemeDark, adapter.Theme())
	assert.Equal(t, ThemeDark, handle.Theme)
	assert.Contains(t, handle.HTML, ThemeDark.ChartTheme())
}

func TestThemeChartThemeMapping(t *testing.T) {
	assert.Equal(t, "westeros", ThemeLight.ChartTheme())
	assert.Equal(t, "chalk", ThemeDark.ChartTheme())
}
