package dashboard

import (
	"context"
	"testing"
	"time"
)

func TestBroadcastHookDeliversToSubscribers(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()

	sent := PageEvent{Kind: PageEventNavigate, Tab: TabSales, Theme: ThemeLight, At: time.Now()}
	if err := hook.PageUpdated(context.Background(), sent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case got := <-events:
		if got.Kind != PageEventNavigate || got.Tab != TabSales {
			t.Fatalf("unexpected event: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBroadcastHookCancelClosesChannel(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()

	cancel()
	// double cancel is safe
	cancel()

	if _, open := <-events; open {
		t.Fatal("channel still open after cancel")
	}

	// publishing after cancel reaches nobody but must not panic
	if err := hook.PageUpdated(context.Background(), PageEvent{Kind: PageEventTheme}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBroadcastHookDropsEventsForSlowSubscribers(t *testing.T) {
	hook := NewBroadcastHook()
	_, cancel := hook.Subscribe()
	defer cancel()

	// the subscriber buffer holds 8; the rest are dropped without blocking
	done := make(chan struct{})
	go func() {
		for i := 0; i < 32; i++ {
			_ = hook.PageUpdated(context.Background(), PageEvent{Kind: PageEventNavigate})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on slow subscriber")
	}
}

type capturingNotifications struct {
	events []PageEvent
	err    error
}

func (c *capturingNotifications) PublishPageEvent(_ context.Context, event PageEvent) error {
	c.events = append(c.events, event)
	return c.err
}

func TestNotificationsHookPublishes(t *testing.T) {
	client := &capturingNotifications{}
	hook := &NotificationsHook{Client: client, Channel: "dashboard"}

	event := PageEvent{Kind: PageEventTheme, Theme: ThemeDark}
	if err := hook.PageUpdated(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client.events) != 1 || client.events[0].Theme != ThemeDark {
		t.Fatalf("event not published: %+v", client.events)
	}
}

func TestNotificationsHookNilClientIsNoop(t *testing.T) {
	hook := &NotificationsHook{}
	if err := hook.PageUpdated(context.Background(), PageEvent{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
