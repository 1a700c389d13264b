package eventbus

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// NotificationRouter maps domain events to user-facing status messages.
type NotificationRouter struct {
	bus *EventBus
}

// NewNotificationRouter constructs a router for event-to-status mappings.
func NewNotificationRouter(bus *EventBus) *NotificationRouter {
	return &NotificationRouter{bus: bus}
}

// Register subscribes all supported event mappings.
func (r *NotificationRouter) Register() {
	if r == nil || r.bus == nil {
		return
	}

	r.bus.SubscribeGalleryReloaded(func(p GalleryReloadedPayload) {
		if p.Err != nil {
			r.notifyf(StatusError, "reload failed: %v", p.Err)
			return
		}
		if p.Gallery == nil {
			return
		}
		n := p.Gallery.Len()
		r.notifyf(StatusInfo, "reloaded %s %s", humanize.Comma(int64(n)), pluralize(n, "image", "images"))
	})
}

func (r *NotificationRouter) notifyf(level StatusLevel, format string, args ...any) {
	r.bus.PublishStatusPublished(StatusPublishedPayload{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
