package dashboard

import (
	"context"
	"sync"
	"time"
)

// PageEventKind distinguishes coordinator events.
type PageEventKind string

const (
	PageEventNavigate PageEventKind = "navigate"
	PageEventTheme    PageEventKind = "theme"
)

// PageEvent describes a committed view change.
type PageEvent struct {
	Kind  PageEventKind `json:"kind"`
	Tab   Tab           `json:"tab"`
	Theme Theme         `json:"theme"`
	At    time.Time     `json:"at"`
}

// RefreshHook receives committed page events.
type RefreshHook interface {
	PageUpdated(ctx context.Context, event PageEvent) error
}

// BroadcastHook fans out page events to in-process subscribers, typically SSE
// streams keeping open browser tabs in sync.
type BroadcastHook struct {
	mu   sync.RWMutex
	subs map[int]chan PageEvent
	next int
}

// NewBroadcastHook creates a broadcast hook.
func NewBroadcastHook() *BroadcastHook {
	return &BroadcastHook{
		subs: make(map[int]chan PageEvent),
	}
}

// PageUpdated satisfies the RefreshHook interface and broadcasts events.
// Slow subscribers drop events rather than blocking the coordinator.
func (h *BroadcastHook) PageUpdated(_ context.Context, event PageEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe returns a channel of page events and a cancel func.
func (h *BroadcastHook) Subscribe() (<-chan PageEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan PageEvent, 8)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
