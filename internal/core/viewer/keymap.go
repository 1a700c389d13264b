package viewer

import "slices"

// Action is a keyboard intent understood by the viewer.
type Action int

const (
	ActionNone Action = iota
	ActionClose
	ActionNext
	ActionPrev
)

// Keymap maps normalized key strings to viewer actions.
type Keymap struct {
	Close []string
	Next  []string
	Prev  []string
}

// DefaultKeymap binds Escape and the horizontal arrow keys.
func DefaultKeymap() Keymap {
	return Keymap{
		Close: []string{"esc"},
		Next:  []string{"right"},
		Prev:  []string{"left"},
	}
}

// Action resolves key to an action; unknown keys map to ActionNone.
func (k Keymap) Action(key string) Action {
	switch {
	case slices.Contains(k.Close, key):
		return ActionClose
	case slices.Contains(k.Next, key):
		return ActionNext
	case slices.Contains(k.Prev, key):
		return ActionPrev
	default:
		return ActionNone
	}
}
