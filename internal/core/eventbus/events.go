// Package eventbus provides a typed publish/subscribe event bus for
// cross-component communication within lightbox.
package eventbus

import "github.com/colonyops/lightbox/internal/core/gallery"

// Events defines all event types and their payload structs.
var Events = map[string]any{
	// Keep list sorted A-Z
	"gallery.activated": GalleryActivatedPayload{},
	"gallery.reloaded":  GalleryReloadedPayload{},
	"status.published":  StatusPublishedPayload{},
	"viewer.closed":     ViewerClosedPayload{},
	"viewer.navigated":  ViewerNavigatedPayload{},
	"viewer.opened":     ViewerOpenedPayload{},
}

// GalleryActivatedPayload is emitted when a grid tile is activated.
type GalleryActivatedPayload struct {
	Section string
	Index   int
	Ref     string
}

// GalleryReloadedPayload is emitted when the gallery source changed on disk
// and was loaded again. Err is set when the reload failed; Gallery is nil then.
type GalleryReloadedPayload struct {
	Source  string
	Gallery *gallery.Gallery
	Err     error
}

// StatusLevel is the severity of a status line message.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarning
	StatusError
)

// StatusPublishedPayload carries a user-facing status line message.
type StatusPublishedPayload struct {
	Level   StatusLevel
	Message string
}

// ViewerOpenedPayload is emitted when the viewer opens.
type ViewerOpenedPayload struct {
	Index int
	Count int
	Ref   string
}

// ViewerNavigatedPayload is emitted when the viewer moves to another image.
type ViewerNavigatedPayload struct {
	From int
	To   int
	Ref  string
}

// ViewerClosedPayload is emitted when the viewer closes.
type ViewerClosedPayload struct {
	Index int
}
