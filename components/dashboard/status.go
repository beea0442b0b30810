package dashboard

import (
	"sort"
	"strings"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// StockStatus is the health tier of a product's stock level.
type StockStatus string

const (
	StatusCritical StockStatus = "CRITICAL"
	StatusWarning  StockStatus = "WARNING"
	StatusOptimal  StockStatus = "OPTIMAL"
)

// StatusFor classifies a product. This is the single threshold function shared
// by the inventory table and the stock chart: current stock at or below the
// safety level is CRITICAL, at or below forecasted demand is WARNING,
// everything else OPTIMAL.
func StatusFor(p apiclient.Product) StockStatus {
	switch {
	case p.CurrentStock <= p.SafetyStockLevel:
		return StatusCritical
	case p.CurrentStock <= p.ForecastedDemand:
		return StatusWarning
	default:
		return StatusOptimal
	}
}

// criticalMarker is the token the backend embeds in critical recommendations.
const criticalMarker = "CRITICAL"

// AdviceCritical reports whether a recommendation carries the critical marker.
func AdviceCritical(entry apiclient.AdviceEntry) bool {
	return strings.Contains(entry.Recommendation, criticalMarker)
}

// AdvicePriority maps criticality to the displayed priority label.
func AdvicePriority(entry apiclient.AdviceEntry) string {
	if AdviceCritical(entry) {
		return "HIGH"
	}
	return "MEDIUM"
}

// SortAdvice orders entries critical-first, then ascending by current stock.
// The sort is stable so ties within the same criticality keep fetch order.
func SortAdvice(entries []apiclient.AdviceEntry) []apiclient.AdviceEntry {
	sorted := make([]apiclient.AdviceEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aCritical, bCritical := AdviceCritical(a), AdviceCritical(b)
		if aCritical != bCritical {
			return aCritical
		}
		return a.Current < b.Current
	})
	return sorted
}

// ExpirySeverity tiers an expiry alert by days remaining.
type ExpirySeverity string

const (
	ExpiryCritical ExpirySeverity = "Critical"
	ExpiryWarning  ExpirySeverity = "Warning"
	ExpiryNormal   ExpirySeverity = "Normal"
)

// SeverityFor tiers days-to-expiry: seven days or fewer is Critical, fourteen
// or fewer Warning, anything later Normal.
func SeverityFor(daysToExpiry int) ExpirySeverity {
	switch {
	case daysToExpiry <= 7:
		return ExpiryCritical
	case daysToExpiry <= 14:
		return ExpiryWarning
	default:
		return ExpiryNormal
	}
}

// ExpiryAction maps severity to its fixed action label.
func ExpiryAction(severity ExpirySeverity) string {
	switch severity {
	case ExpiryCritical:
		return "Clearance Sale"
	case ExpiryWarning:
		return "Plan Clearance"
	default:
		return "Monitor"
	}
}
