// Package testbus runs a real event bus in tests and records everything it
// dispatches.
package testbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/lightbox/internal/core/eventbus"
)

// DefaultWait bounds AssertPublished.
const DefaultWait = 500 * time.Millisecond

// RecordedEvent is one dispatched event.
type RecordedEvent struct {
	Event   eventbus.Event
	Payload any
}

// Bus is a started EventBus that records every event it dispatches.
type Bus struct {
	*eventbus.EventBus

	mu      sync.Mutex
	events  []RecordedEvent
	changed chan struct{} // closed and replaced on every record
}

// New starts a recording bus. It stops when the test finishes.
func New(t *testing.T) *Bus {
	t.Helper()

	tb := &Bus{
		EventBus: eventbus.New(64),
		changed:  make(chan struct{}),
	}

	subscribe(tb, tb.SubscribeGalleryActivated, eventbus.EventGalleryActivated)
	subscribe(tb, tb.SubscribeGalleryReloaded, eventbus.EventGalleryReloaded)
	subscribe(tb, tb.SubscribeStatusPublished, eventbus.EventStatusPublished)
	subscribe(tb, tb.SubscribeViewerOpened, eventbus.EventViewerOpened)
	subscribe(tb, tb.SubscribeViewerNavigated, eventbus.EventViewerNavigated)
	subscribe(tb, tb.SubscribeViewerClosed, eventbus.EventViewerClosed)

	ctx, cancel := context.WithCancel(context.Background())
	go tb.Start(ctx)
	t.Cleanup(cancel)

	return tb
}

func subscribe[T any](tb *Bus, sub func(func(T)), event eventbus.Event) {
	sub(func(p T) { tb.record(event, p) })
}

func (tb *Bus) record(event eventbus.Event, payload any) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.events = append(tb.events, RecordedEvent{Event: event, Payload: payload})
	close(tb.changed)
	tb.changed = make(chan struct{})
}

// Events returns a copy of everything recorded so far.
func (tb *Bus) Events() []RecordedEvent {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	out := make([]RecordedEvent, len(tb.events))
	copy(out, tb.events)
	return out
}

// Payloads returns the recorded payloads of type T in dispatch order.
func Payloads[T any](tb *Bus) []T {
	var out []T
	for _, e := range tb.Events() {
		if p, ok := e.Payload.(T); ok {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many events of the given type were recorded.
func (tb *Bus) Count(event eventbus.Event) int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.countLocked(event)
}

func (tb *Bus) countLocked(event eventbus.Event) int {
	n := 0
	for _, e := range tb.events {
		if e.Event == event {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (tb *Bus) Reset() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.events = nil
}

// WaitFor blocks until an event of the given type has been recorded or the
// timeout expires.
func (tb *Bus) WaitFor(event eventbus.Event, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		tb.mu.Lock()
		found := tb.countLocked(event) > 0
		changed := tb.changed
		tb.mu.Unlock()

		if found {
			return true
		}

		select {
		case <-changed:
		case <-deadline.C:
			return false
		}
	}
}

// AssertPublished fails the test unless the event is recorded within
// DefaultWait.
func (tb *Bus) AssertPublished(t *testing.T, event eventbus.Event) {
	t.Helper()
	if !tb.WaitFor(event, DefaultWait) {
		t.Errorf("expected event %q to be published, but it was not", event)
	}
}

// AssertNotPublished fails the test if the event is recorded within wait.
func (tb *Bus) AssertNotPublished(t *testing.T, event eventbus.Event, wait time.Duration) {
	t.Helper()
	if tb.WaitFor(event, wait) {
		t.Errorf("expected event %q to NOT be published, but it was", event)
	}
}
