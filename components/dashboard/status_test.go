package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

func TestStatusForTiers(t *testing.T) {
	cases := []struct {
		name    string
		product apiclient.Product
		want    StockStatus
	}{
		{"at safety level", apiclient.Product{CurrentStock: 10, SafetyStockLevel: 10, ForecastedDemand: 30}, StatusCritical},
		{"below safety level", apiclient.Product{CurrentStock: 3, SafetyStockLevel: 10, ForecastedDemand: 30}, StatusCritical},
		{"at forecast", apiclient.Product{CurrentStock: 30, SafetyStockLevel: 10, ForecastedDemand: 30}, StatusWarning},
		{"between safety and forecast", apiclient.Product{CurrentStock: 20, SafetyStockLevel: 10, ForecastedDemand: 30}, StatusWarning},
		{"above forecast", apiclient.Product{CurrentStock: 31, SafetyStockLevel: 10, ForecastedDemand: 30}, StatusOptimal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.product))
		})
	}
}

func TestAdvicePriority(t *testing.T) {
	critical := apiclient.AdviceEntry{Product: "A", Recommendation: "CRITICAL: reorder 40 units now"}
	normal := apiclient.AdviceEntry{Product: "B", Recommendation: "Reorder 10 units before next cycle"}

	assert.True(t, AdviceCritical(critical))
	assert.False(t, AdviceCritical(normal))
	assert.Equal(t, "HIGH", AdvicePriority(critical))
	assert.Equal(t, "MEDIUM", AdvicePriority(normal))
}

func TestSortAdviceCriticalFirstThenStock(t *testing.T) {
	entries := []apiclient.AdviceEntry{
		{Product: "plain-high", Current: 50, Recommendation: "reorder soon"},
		{Product: "critical-high", Current: 9, Recommendation: "CRITICAL restock"},
		{Product: "plain-low", Current: 2, Recommendation: "reorder soon"},
		{Product: "critical-low", Current: 1, Recommendation: "CRITICAL restock"},
	}

	sorted := SortAdvice(entries)

	assert.Equal(t, "critical-low", sorted[0].Product)
	assert.Equal(t, "critical-high", sorted[1].Product)
	assert.Equal(t, "plain-low", sorted[2].Product)
	assert.Equal(t, "plain-high", sorted[3].Product)
	// input untouched
	assert.Equal(t, "plain-high", entries[0].Product)
}

func TestSortAdviceStableOnTies(t *testing.T) {
	entries := []apiclient.AdviceEntry{
		{Product: "first", Current: 5, Recommendation: "reorder"},
		{Product: "second", Current: 5, Recommendation: "reorder"},
	}
	sorted := SortAdvice(entries)
	assert.Equal(t, "first", sorted[0].Product)
	assert.Equal(t, "second", sorted[1].Product)
}

func TestSeverityForAndAction(t *testing.T) {
	assert.Equal(t, ExpiryCritical, SeverityFor(0))
	assert.Equal(t, ExpiryCritical, SeverityFor(7))
	assert.Equal(t, ExpiryWarning, SeverityFor(8))
	assert.Equal(t, ExpiryWarning, SeverityFor(14))
	assert.Equal(t, ExpiryNormal, SeverityFor(15))

	assert.Equal(t, "Clearance Sale", ExpiryAction(ExpiryCritical))
	assert.Equal(t, "Plan Clearance", ExpiryAction(ExpiryWarning))
	assert.Equal(t, "Monitor", ExpiryAction(ExpiryNormal))
}
