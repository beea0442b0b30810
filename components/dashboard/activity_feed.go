package dashboard

import (
	"context"
	"sync"
	"time"
)

// ActivityItem is one recorded dashboard action.
type ActivityItem struct {
	Event   string         `json:"event"`
	Details map[string]any `json:"details,omitempty"`
	At      time.Time      `json:"at"`
}

// ActivityLog keeps a bounded in-memory trail of telemetry events so the
// transport can expose a recent-activity endpoint. It satisfies Telemetry and
// can be chained in front of another sink.
type ActivityLog struct {
	mu    sync.Mutex
	items []ActivityItem
	limit int
	next  Telemetry
}

// NewActivityLog builds a log retaining the most recent limit events,
// forwarding each one to next when provided.
func NewActivityLog(limit int, next Telemetry) *ActivityLog {
	if limit <= 0 {
		limit = 50
	}
	return &ActivityLog{
		limit: limit,
		next:  normalizeTelemetry(next),
	}
}

// Record stores the event and forwards it.
func (l *ActivityLog) Record(ctx context.Context, event string, payload map[string]any) {
	l.mu.Lock()
	l.items = append(l.items, ActivityItem{Event: event, Details: payload, At: time.Now()})
	if len(l.items) > l.limit {
		l.items = l.items[len(l.items)-l.limit:]
	}
	l.mu.Unlock()

	l.next.Record(ctx, event, payload)
}

// Recent returns up to limit items, newest first.
func (l *ActivityLog) Recent(limit int) []ActivityItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limit <= 0 || limit > len(l.items) {
		limit = len(l.items)
	}
	out := make([]ActivityItem, 0, limit)
	for i := len(l.items) - 1; i >= len(l.items)-limit; i-- {
		out = append(out, l.items[i])
	}
	return out
}
