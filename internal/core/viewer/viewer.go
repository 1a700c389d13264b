// Package viewer implements the modal image viewer: its per-mount keyboard
// and scroll-lock binding, the key and click mappings, and the owner that
// holds viewer state for the page.
package viewer

import (
	"errors"
	"fmt"

	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/input"
)

var (
	// ErrEmptyImages is returned when a viewer is requested for no images.
	ErrEmptyImages = errors.New("viewer: image list is empty")
	// ErrIndexOutOfRange is returned when the start index is outside the list.
	ErrIndexOutOfRange = errors.New("viewer: index out of range")
)

// Host is the page-side mechanism the viewer binds to while mounted.
type Host interface {
	SubscribeKeys(fn input.KeyHandler) (unsubscribe func())
	LockScroll() (release func())
}

// Props are the inputs of a viewer. Images must be non-empty and Index must
// address one of them.
type Props struct {
	Images     gallery.ImageList
	Index      int
	OnClose    func()
	OnNavigate func(next int)
}

func (p Props) validate() error {
	if len(p.Images) == 0 {
		return ErrEmptyImages
	}
	if p.Index < 0 || p.Index >= len(p.Images) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, p.Index, len(p.Images))
	}
	return nil
}

// binding is the keyboard listener and scroll lock held while mounted. Both
// are acquired together and released together, once.
type binding struct {
	unsubscribe func()
	unlock      func()
	released    bool
}

func (b *binding) release() {
	if b.released {
		return
	}
	b.released = true
	b.unsubscribe()
	b.unlock()
}

// Viewer presents one image of a list with navigation and close intents.
type Viewer struct {
	props   Props
	keys    Keymap
	binding *binding
}

// New creates an unmounted viewer.
func New(p Props, keys Keymap) (*Viewer, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Viewer{props: p, keys: keys}, nil
}

// Mount registers the keyboard listener and takes the scroll lock. Mounting
// an already mounted viewer does nothing.
func (v *Viewer) Mount(h Host) {
	if v.binding != nil {
		return
	}
	v.binding = &binding{
		unsubscribe: h.SubscribeKeys(v.HandleKey),
		unlock:      h.LockScroll(),
	}
}

// Unmount releases the keyboard listener and the scroll lock. It is safe to
// call on every exit path, any number of times.
func (v *Viewer) Unmount() {
	if v.binding == nil {
		return
	}
	b := v.binding
	v.binding = nil
	b.release()
}

// Mounted reports whether the viewer currently holds its binding.
func (v *Viewer) Mounted() bool {
	return v.binding != nil
}

// Props returns the current props.
func (v *Viewer) Props() Props {
	return v.props
}

// SetProps replaces the props in place. The registered listener reads props
// at key time, so it observes the update without being re-registered.
func (v *Viewer) SetProps(p Props) error {
	if err := p.validate(); err != nil {
		return err
	}
	v.props = p
	return nil
}

// Current returns the displayed image reference.
func (v *Viewer) Current() string {
	return v.props.Images[v.props.Index]
}

// HasPrev reports whether the previous control is shown.
func (v *Viewer) HasPrev() bool {
	return v.props.Index > 0
}

// HasNext reports whether the next control is shown.
func (v *Viewer) HasNext() bool {
	return v.props.Index < len(v.props.Images)-1
}

// Indicator returns the 1-based position text. It is omitted for a single
// image.
func (v *Viewer) Indicator() (string, bool) {
	if len(v.props.Images) <= 1 {
		return "", false
	}
	return fmt.Sprintf("%d / %d", v.props.Index+1, len(v.props.Images)), true
}

// HandleKey applies the keyboard mapping. It reports whether the key belongs
// to the viewer; bound keys are consumed even when they are a no-op at a
// bound of the list.
func (v *Viewer) HandleKey(key string) bool {
	switch v.keys.Action(key) {
	case ActionClose:
		v.close()
	case ActionNext:
		if v.HasNext() {
			v.navigate(v.props.Index + 1)
		}
	case ActionPrev:
		if v.HasPrev() {
			v.navigate(v.props.Index - 1)
		}
	default:
		return false
	}
	return true
}

// Target identifies what a click landed on.
type Target int

const (
	TargetBackdrop Target = iota
	TargetImage
	TargetClose
	TargetPrev
	TargetNext
)

func (t Target) String() string {
	switch t {
	case TargetImage:
		return "image"
	case TargetClose:
		return "close"
	case TargetPrev:
		return "prev"
	case TargetNext:
		return "next"
	default:
		return "backdrop"
	}
}

// Click dispatches a click on target. Clicks bubble to the backdrop, which
// closes the viewer, unless the target contains them. A click on a control
// that is not shown lands on the backdrop.
func (v *Viewer) Click(target Target) {
	contained := false

	switch target {
	case TargetImage:
		contained = true
	case TargetClose:
		v.close()
		contained = true
	case TargetPrev:
		if v.HasPrev() {
			v.navigate(v.props.Index - 1)
			contained = true
		}
	case TargetNext:
		if v.HasNext() {
			v.navigate(v.props.Index + 1)
			contained = true
		}
	}

	if !contained {
		v.close()
	}
}

func (v *Viewer) close() {
	if v.props.OnClose != nil {
		v.props.OnClose()
	}
}

func (v *Viewer) navigate(next int) {
	if v.props.OnNavigate != nil {
		v.props.OnNavigate(next)
	}
}
