package dashboard

import "context"

// NotificationsClient defines the minimal interface needed from an external
// notifications system.
type NotificationsClient interface {
	PublishPageEvent(ctx context.Context, event PageEvent) error
}

// NotificationsHook forwards page events to an external notifications client.
type NotificationsHook struct {
	Client  NotificationsClient
	Channel string
}

// PageUpdated publishes events to the configured notifications client.
func (h *NotificationsHook) PageUpdated(ctx context.Context, event PageEvent) error {
	if h == nil || h.Client == nil {
		return nil
	}
	return h.Client.PublishPageEvent(ctx, event)
}
