package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/lightbox/internal/core/config"
	"github.com/colonyops/lightbox/internal/tui/components"
)

const keyCtrlC = "ctrl+c"

// keyMap holds the page bindings. The viewer's close/next/prev keys are
// handled by the viewer's own listener and appear here for help text only.
type keyMap struct {
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Copy     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Close key.Binding
	Next  key.Binding
	Prev  key.Binding
}

func newKeyMap(k config.KeysConfig) keyMap {
	binding := func(keys []string, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	return keyMap{
		Open:     binding(k.Open, "open viewer"),
		Help:     binding(k.Help, "toggle help"),
		Quit:     binding(k.Quit, "quit"),
		Copy:     binding(k.Copy, "copy image reference"),
		Up:       binding([]string{"up", "k"}, "move up"),
		Down:     binding([]string{"down", "j"}, "move down"),
		Left:     binding([]string{"left", "h"}, "move left"),
		Right:    binding([]string{"right", "l"}, "move right"),
		PageUp:   binding([]string{"pgup"}, "scroll up"),
		PageDown: binding([]string{"pgdown"}, "scroll down"),
		Close:    binding(k.Close, "close viewer"),
		Next:     binding(k.Next, "next image"),
		Prev:     binding(k.Prev, "previous image"),
	}
}

func helpEntries(bindings ...key.Binding) []components.HelpEntry {
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// helpSections lists the gallery and viewer bindings for the help dialog.
func (k keyMap) helpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{
			Title:   "Gallery",
			Entries: helpEntries(k.Up, k.Down, k.Left, k.Right, k.Open, k.PageUp, k.PageDown, k.Help, k.Quit),
		},
		{
			Title: "Viewer",
			Entries: append(
				helpEntries(k.Prev, k.Next, k.Close, k.Copy),
				components.HelpEntry{Key: "click", Desc: "outside the image to close"},
			),
		},
	}
}
