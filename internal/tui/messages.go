package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/internal/core/eventbus"
	"github.com/colonyops/lightbox/internal/core/gallery"
)

// galleryChangedMsg is sent when the watcher reports a change on disk.
type galleryChangedMsg struct {
	change catalog.Change
}

// galleryLoadedMsg carries the result of a reload.
type galleryLoadedMsg struct {
	gallery gallery.Gallery
	err     error
}

// statusMsg carries a status line published on the event bus.
type statusMsg struct {
	payload eventbus.StatusPublishedPayload
}

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	ref string
	err error
}

// listenForChange returns a command that waits for the next watcher change.
func listenForChange(ch <-chan catalog.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			// Watcher closed, stop listening
			return nil
		}
		return galleryChangedMsg{change: c}
	}
}

// listenForStatus returns a command that waits for the next status line.
func listenForStatus(ch <-chan eventbus.StatusPublishedPayload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return statusMsg{payload: p}
	}
}
