package eventbus_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lightbox/internal/core/eventbus"
	"github.com/colonyops/lightbox/internal/core/eventbus/testbus"
	"github.com/colonyops/lightbox/internal/core/gallery"
)

func latestStatusPayload(tb *testbus.Bus, t *testing.T) eventbus.StatusPublishedPayload {
	t.Helper()
	tb.AssertPublished(t, eventbus.EventStatusPublished)

	payloads := testbus.Payloads[eventbus.StatusPublishedPayload](tb)
	require.NotEmpty(t, payloads)
	return payloads[len(payloads)-1]
}

func TestNotificationRouter_GalleryReloaded(t *testing.T) {
	tb := testbus.New(t)
	eventbus.NewNotificationRouter(tb.EventBus).Register()

	g := &gallery.Gallery{Sections: []gallery.Section{{
		Name: "hero",
		Rows: []gallery.Row{{Entries: []gallery.Entry{{Ref: "a.png"}, {Ref: "b.png"}}}},
	}}}
	tb.PublishGalleryReloaded(eventbus.GalleryReloadedPayload{Source: "/srv", Gallery: g})
	p := latestStatusPayload(tb, t)

	assert.Equal(t, eventbus.StatusInfo, p.Level)
	assert.Equal(t, "reloaded 2 images", p.Message)
}

func TestNotificationRouter_GalleryReloadFailed(t *testing.T) {
	tb := testbus.New(t)
	eventbus.NewNotificationRouter(tb.EventBus).Register()

	tb.PublishGalleryReloaded(eventbus.GalleryReloadedPayload{Source: "/srv", Err: errors.New("bad yaml")})
	p := latestStatusPayload(tb, t)

	assert.Equal(t, eventbus.StatusError, p.Level)
	assert.Contains(t, p.Message, "bad yaml")
}

func TestNotificationRouter_NilBus(t *testing.T) {
	var r *eventbus.NotificationRouter
	assert.NotPanics(t, r.Register)
	assert.NotPanics(t, eventbus.NewNotificationRouter(nil).Register)
}
