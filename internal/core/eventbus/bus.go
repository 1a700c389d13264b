package eventbus

import (
	"context"
	"sync"
)

// Event names a bus event.
type Event string

const (
	EventGalleryActivated Event = "gallery.activated"
	EventGalleryReloaded  Event = "gallery.reloaded"
	EventStatusPublished  Event = "status.published"
	EventViewerClosed     Event = "viewer.closed"
	EventViewerNavigated  Event = "viewer.navigated"
	EventViewerOpened     Event = "viewer.opened"
)

type envelope struct {
	event   Event
	payload any
}

// EventBus delivers published events to subscribers on a single dispatch
// goroutine. Publish never blocks; events are dropped when the buffer is full.
type EventBus struct {
	ch    chan envelope
	hooks hooks

	mu   sync.RWMutex
	subs map[Event][]func(any)
}

// New creates a bus with the given buffer size. Call Start to begin dispatch.
func New(buffer int) *EventBus {
	return &EventBus{
		ch:   make(chan envelope, buffer),
		subs: make(map[Event][]func(any)),
	}
}

// Start dispatches events until ctx is cancelled.
func (bus *EventBus) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-bus.ch:
			bus.dispatch(env)
		}
	}
}

func (bus *EventBus) dispatch(env envelope) {
	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[env.event]))
	copy(subs, bus.subs[env.event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					bus.runOnPanic(env.event, env.payload, r)
				}
			}()
			fn(env.payload)
		}()
	}
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	bus.subs[event] = append(bus.subs[event], fn)
	bus.mu.Unlock()

	for _, fn := range bus.hooks.subscribed.snapshot() {
		fn(event)
	}
}

// PublishGalleryActivated publishes a gallery.activated event.
func (bus *EventBus) PublishGalleryActivated(p GalleryActivatedPayload) {
	bus.send(EventGalleryActivated, p)
}

// SubscribeGalleryActivated registers fn for gallery.activated events.
func (bus *EventBus) SubscribeGalleryActivated(fn func(GalleryActivatedPayload)) {
	bus.subscribe(EventGalleryActivated, func(p any) { fn(p.(GalleryActivatedPayload)) })
}

// PublishGalleryReloaded publishes a gallery.reloaded event.
func (bus *EventBus) PublishGalleryReloaded(p GalleryReloadedPayload) {
	bus.send(EventGalleryReloaded, p)
}

// SubscribeGalleryReloaded registers fn for gallery.reloaded events.
func (bus *EventBus) SubscribeGalleryReloaded(fn func(GalleryReloadedPayload)) {
	bus.subscribe(EventGalleryReloaded, func(p any) { fn(p.(GalleryReloadedPayload)) })
}

// PublishStatusPublished publishes a status.published event.
func (bus *EventBus) PublishStatusPublished(p StatusPublishedPayload) {
	bus.send(EventStatusPublished, p)
}

// SubscribeStatusPublished registers fn for status.published events.
func (bus *EventBus) SubscribeStatusPublished(fn func(StatusPublishedPayload)) {
	bus.subscribe(EventStatusPublished, func(p any) { fn(p.(StatusPublishedPayload)) })
}

// PublishViewerClosed publishes a viewer.closed event.
func (bus *EventBus) PublishViewerClosed(p ViewerClosedPayload) {
	bus.send(EventViewerClosed, p)
}

// SubscribeViewerClosed registers fn for viewer.closed events.
func (bus *EventBus) SubscribeViewerClosed(fn func(ViewerClosedPayload)) {
	bus.subscribe(EventViewerClosed, func(p any) { fn(p.(ViewerClosedPayload)) })
}

// PublishViewerNavigated publishes a viewer.navigated event.
func (bus *EventBus) PublishViewerNavigated(p ViewerNavigatedPayload) {
	bus.send(EventViewerNavigated, p)
}

// SubscribeViewerNavigated registers fn for viewer.navigated events.
func (bus *EventBus) SubscribeViewerNavigated(fn func(ViewerNavigatedPayload)) {
	bus.subscribe(EventViewerNavigated, func(p any) { fn(p.(ViewerNavigatedPayload)) })
}

// PublishViewerOpened publishes a viewer.opened event.
func (bus *EventBus) PublishViewerOpened(p ViewerOpenedPayload) {
	bus.send(EventViewerOpened, p)
}

// SubscribeViewerOpened registers fn for viewer.opened events.
func (bus *EventBus) SubscribeViewerOpened(fn func(ViewerOpenedPayload)) {
	bus.subscribe(EventViewerOpened, func(p any) { fn(p.(ViewerOpenedPayload)) })
}
