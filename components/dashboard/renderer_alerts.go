package dashboard

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// AlertsRenderer builds the reorder advice and expiry alert tables.
type AlertsRenderer struct{}

// recommendationBreaks matches the underscore filler the backend uses to
// separate recommendation lines.
var recommendationBreaks = regexp.MustCompile(`_{3,}`)

func (AlertsRenderer) Render(ctx context.Context, rc RenderContext) (*Page, error) {
	var (
		advice []apiclient.AdviceEntry
		expiry []apiclient.ExpiryAlert

		adviceErr, expiryErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		advice, adviceErr = rc.Client.Advice(ctx)
	}()
	go func() {
		defer wg.Done()
		expiry, expiryErr = rc.Client.ExpiryAlerts(ctx)
	}()
	wg.Wait()

	if err := errors.Join(adviceErr, expiryErr); err != nil {
		return nil, err
	}

	adviceRows := make([]TableRow, 0, len(advice))
	for _, entry := range SortAdvice(advice) {
		tone := ToneWarning
		if AdviceCritical(entry) {
			tone = ToneDanger
		}
		adviceRows = append(adviceRows, TableRow{
			Cells: []string{
				entry.Product,
				fmt.Sprintf("%d", entry.Current),
				AdvicePriority(entry),
				recommendationBreaks.ReplaceAllString(entry.Recommendation, "\n"),
			},
			Tone: tone,
		})
	}

	expiryRows := make([]TableRow, 0, len(expiry))
	for _, alert := range expiry {
		severity := SeverityFor(alert.DaysToExpiry)
		expiryRows = append(expiryRows, TableRow{
			Cells: []string{
				alert.ProductName,
				alert.ExpiryDate,
				fmt.Sprintf("%d days", alert.DaysToExpiry),
				string(severity),
				ExpiryAction(severity),
			},
			Tone: severityTone(severity),
		})
	}

	return &Page{
		Tab:   TabAlerts,
		Title: "Alerts",
		Nodes: []Node{
			Card{Header: "Reorder Recommendations", Body: []Node{
				Table{
					Columns: []string{"Product", "Current Stock", "Priority", "Recommendation"},
					Rows:    adviceRows,
				},
			}},
			Card{Header: "Expiry Alerts", Body: []Node{
				Table{
					Columns: []string{"Product", "Expiry Date", "Days Remaining", "Severity", "Action Needed"},
					Rows:    expiryRows,
				},
			}},
		},
	}, nil
}

func severityTone(severity ExpirySeverity) Tone {
	switch severity {
	case ExpiryCritical:
		return ToneDanger
	case ExpiryWarning:
		return ToneWarning
	default:
		return ToneInfo
	}
}
