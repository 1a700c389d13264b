// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/lightbox/internal/core/styles"
)

const (
	keyGap     = 2 // between the key column and descriptions
	sectionGap = 4 // between side-by-side sections
	frameWidth = 6 // modal border and padding
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays the key bindings of the current screen. Sections are
// laid out side by side when the screen is wide enough and stacked otherwise.
type HelpDialog struct {
	title    string
	footer   string
	sections []HelpDialogSection
}

// NewHelpDialog creates a help dialog. footer names the keys that dismiss it.
func NewHelpDialog(title, footer string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		footer:   footer,
		sections: sections,
	}
}

// Sections returns the dialog sections.
func (h *HelpDialog) Sections() []HelpDialogSection {
	return h.sections
}

// View renders the dialog with sections stacked.
func (h *HelpDialog) View() string {
	return h.render(0)
}

// render lays out the dialog for a screen maxWidth cells wide. Zero means
// no limit is known and sections are stacked.
func (h *HelpDialog) render(maxWidth int) string {
	keyW := h.keyWidth()

	blocks := make([]string, 0, len(h.sections))
	for _, sec := range h.sections {
		blocks = append(blocks, renderSection(sec, keyW))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, interleave(blocks, "")...)
	if maxWidth > 0 && len(blocks) > 1 {
		wide := lipgloss.JoinHorizontal(lipgloss.Top, interleave(blocks, strings.Repeat(" ", sectionGap))...)
		if lipgloss.Width(wide)+frameWidth <= maxWidth {
			body = wide
		}
	}

	parts := []string{styles.TextForegroundBoldStyle.Render(h.title), "", body}
	if h.footer != "" {
		parts = append(parts, "", styles.ModalHelpStyle.Render(h.footer))
	}

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Overlay renders the help dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.render(width)

	x := max(0, (width-lipgloss.Width(modal))/2)
	y := max(0, (height-lipgloss.Height(modal))/2)

	return lipgloss.NewCompositor(
		lipgloss.NewLayer(background),
		lipgloss.NewLayer(modal).X(x).Y(y).Z(1),
	).Render()
}

// keyWidth is the widest key in any section plus the gap before descriptions.
func (h *HelpDialog) keyWidth() int {
	w := 0
	for _, sec := range h.sections {
		for _, e := range sec.Entries {
			w = max(w, lipgloss.Width(e.Key))
		}
	}
	return w + keyGap
}

func renderSection(sec HelpDialogSection, keyW int) string {
	lines := make([]string, 0, len(sec.Entries)+2)
	for _, e := range sec.Entries {
		lines = append(lines, keyLine(e, keyW))
	}

	if sec.Title == "" {
		return strings.Join(lines, "\n")
	}

	rule := strings.Repeat("─", max(lipgloss.Width(strings.Join(lines, "\n")), lipgloss.Width(sec.Title)))
	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{styles.HelpDialogSectionStyle.Render(sec.Title), styles.TextMutedStyle.Render(rule)}, lines...)...)
}

func keyLine(e HelpEntry, keyW int) string {
	return styles.TextPrimaryBoldStyle.Width(keyW).Render(e.Key) + styles.TextForegroundStyle.Render(e.Desc)
}

func interleave(blocks []string, sep string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
