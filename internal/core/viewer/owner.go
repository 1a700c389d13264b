package viewer

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/lightbox/internal/core/gallery"
)

// State is the viewer state held by the page. When Open is true, Index
// addresses an element of Images.
type State struct {
	Open   bool
	Index  int
	Images gallery.ImageList
}

// EventKind classifies a viewer state transition.
type EventKind int

const (
	EventOpened EventKind = iota
	EventNavigated
	EventClosed
)

// Event describes a state transition reported to the observer.
type Event struct {
	Kind  EventKind
	From  int
	To    int
	Count int
	Ref   string
}

// Owner holds ViewerState and the mounted viewer. It is the only place that
// mutates the state, in response to open requests and the viewer's
// navigate and close intents.
type Owner struct {
	host    Host
	keys    Keymap
	logger  zerolog.Logger
	observe func(Event)

	state State
	view  *Viewer
}

// NewOwner creates an owner with a closed viewer.
func NewOwner(host Host, keys Keymap, logger zerolog.Logger) *Owner {
	return &Owner{
		host:   host,
		keys:   keys,
		logger: logger,
	}
}

// Observe sets the function notified after every transition.
func (o *Owner) Observe(fn func(Event)) {
	o.observe = fn
}

// State returns a copy of the current state.
func (o *Owner) State() State {
	return o.state
}

// Viewer returns the mounted viewer, or nil when closed.
func (o *Owner) Viewer() *Viewer {
	return o.view
}

// IsOpen reports whether the viewer is shown.
func (o *Owner) IsOpen() bool {
	return o.state.Open
}

// Open shows images starting at start. The list is copied, so later changes
// to the caller's slice do not reach the open viewer. An empty list or an
// out-of-range start is rejected; an already open viewer is replaced.
func (o *Owner) Open(images gallery.ImageList, start int) error {
	images = images.Clone()

	v, err := New(Props{
		Images:     images,
		Index:      start,
		OnClose:    o.Close,
		OnNavigate: o.Navigate,
	}, o.keys)
	if err != nil {
		o.logger.Warn().Err(err).Int("index", start).Int("count", len(images)).Msg("rejected viewer open")
		return err
	}

	if o.view != nil {
		o.view.Unmount()
	}

	o.state = State{Open: true, Index: start, Images: images}
	o.view = v
	v.Mount(o.host)

	o.logger.Debug().Int("index", start).Int("count", len(images)).Msg("viewer opened")
	o.emit(Event{Kind: EventOpened, From: start, To: start, Count: len(images), Ref: images[start]})
	return nil
}

// Navigate moves to next. Requests while closed or outside the list are
// ignored.
func (o *Owner) Navigate(next int) {
	if !o.state.Open || next < 0 || next >= len(o.state.Images) {
		return
	}

	from := o.state.Index
	o.state.Index = next

	p := o.view.Props()
	p.Index = next
	// validated above; SetProps cannot fail here
	_ = o.view.SetProps(p)

	o.emit(Event{Kind: EventNavigated, From: from, To: next, Count: len(o.state.Images), Ref: o.state.Images[next]})
}

// Close hides the viewer and releases its binding. The index resets to 0.
func (o *Owner) Close() {
	if !o.state.Open {
		return
	}

	from := o.state.Index
	count := len(o.state.Images)

	if o.view != nil {
		o.view.Unmount()
		o.view = nil
	}
	o.state.Open = false
	o.state.Index = 0

	o.logger.Debug().Int("index", from).Msg("viewer closed")
	o.emit(Event{Kind: EventClosed, From: from, To: from, Count: count})
}

// Reset is the teardown path used when the page goes away: it closes the
// viewer if needed and discards the state entirely.
func (o *Owner) Reset() {
	o.Close()
	o.state = State{}
}

func (o *Owner) emit(e Event) {
	if o.observe != nil {
		o.observe(e)
	}
}
