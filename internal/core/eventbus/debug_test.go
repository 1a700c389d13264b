package eventbus_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/lightbox/internal/core/eventbus"
	"github.com/colonyops/lightbox/internal/core/eventbus/testbus"
)

// syncBuffer guards a buffer written from the publishing goroutine and read
// by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRegisterDebugLogger(t *testing.T) {
	tb := testbus.New(t)
	var out syncBuffer

	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.New(&out).Level(zerolog.DebugLevel))

	tb.PublishViewerOpened(eventbus.ViewerOpenedPayload{Index: 0, Count: 3, Ref: "a.png"})
	tb.PublishViewerNavigated(eventbus.ViewerNavigatedPayload{From: 0, To: 1, Ref: "b.png"})
	tb.PublishViewerClosed(eventbus.ViewerClosedPayload{Index: 1})

	tb.AssertPublished(t, eventbus.EventViewerClosed)

	logs := out.String()
	assert.Contains(t, logs, `"event":"viewer.opened","index":0,"count":3,"ref":"a.png"`)
	assert.Contains(t, logs, `"event":"viewer.navigated","from":0,"to":1,"ref":"b.png"`)
	assert.Contains(t, logs, `"event":"viewer.closed","index":1`)
}

func TestRegisterDebugLogger_SkipsAboveDebug(t *testing.T) {
	tb := testbus.New(t)
	var out syncBuffer

	eventbus.RegisterDebugLogger(tb.EventBus, zerolog.New(&out).Level(zerolog.InfoLevel))

	tb.PublishGalleryActivated(eventbus.GalleryActivatedPayload{Section: "hero", Index: 2})
	tb.AssertPublished(t, eventbus.EventGalleryActivated)

	assert.Empty(t, out.String())
}
