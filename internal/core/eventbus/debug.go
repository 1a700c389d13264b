package eventbus

import (
	"fmt"

	"github.com/rs/zerolog"
)

// RegisterDebugLogger logs every published event with its payload fields at
// debug level. Dropped events are logged as warnings and subscriber panics as
// errors.
func RegisterDebugLogger(bus *EventBus, logger zerolog.Logger) {
	bus.OnPublish(func(event Event, payload any) {
		e := logger.Debug().Str("event", string(event))
		if !e.Enabled() {
			return
		}
		payloadFields(e, payload).Msg("event published")
	})

	bus.OnDrop(func(event Event, _ any) {
		logger.Warn().Str("event", string(event)).Msg("event dropped: buffer full")
	})

	bus.OnPanic(func(event Event, _ any, recovered any) {
		logger.Error().
			Str("event", string(event)).
			Str("panic", fmt.Sprint(recovered)).
			Msg("subscriber panicked")
	})
}

func payloadFields(e *zerolog.Event, payload any) *zerolog.Event {
	switch p := payload.(type) {
	case GalleryActivatedPayload:
		return e.Str("section", p.Section).Int("index", p.Index).Str("ref", p.Ref)
	case GalleryReloadedPayload:
		e = e.Str("source", p.Source)
		if p.Err != nil {
			return e.AnErr("reload_err", p.Err)
		}
		if p.Gallery != nil {
			e = e.Int("images", p.Gallery.Len())
		}
		return e
	case StatusPublishedPayload:
		return e.Int("level", int(p.Level)).Str("message", p.Message)
	case ViewerOpenedPayload:
		return e.Int("index", p.Index).Int("count", p.Count).Str("ref", p.Ref)
	case ViewerNavigatedPayload:
		return e.Int("from", p.From).Int("to", p.To).Str("ref", p.Ref)
	case ViewerClosedPayload:
		return e.Int("index", p.Index)
	default:
		return e
	}
}
