package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDialog() *HelpDialog {
	return NewHelpDialog(
		"Keyboard Shortcuts",
		"esc/? close",
		[]HelpDialogSection{
			{Title: "Gallery", Entries: []HelpEntry{{Key: "enter", Desc: "open viewer"}}},
			{Title: "Viewer", Entries: []HelpEntry{{Key: "esc", Desc: "close"}, {Key: "←/h", Desc: "previous"}}},
		},
	)
}

func lineWith(t *testing.T, out, s string) string {
	t.Helper()
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, s) {
			return l
		}
	}
	require.Failf(t, "line not found", "%q not in output", s)
	return ""
}

func TestHelpDialog_Overlay(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	out := ansi.Strip(testDialog().Overlay(bg, 80, 24))

	for _, want := range []string{"Keyboard Shortcuts", "Gallery", "open viewer", "previous", "esc/? close"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "....", "background stays visible around the dialog")
}

func TestHelpDialog_SideBySideWhenWide(t *testing.T) {
	out := ansi.Strip(testDialog().render(120))

	header := lineWith(t, out, "Gallery")
	assert.Contains(t, header, "Viewer", "sections share a row")
}

func TestHelpDialog_StackedWhenNarrow(t *testing.T) {
	out := ansi.Strip(testDialog().render(20))

	assert.NotContains(t, lineWith(t, out, "Gallery"), "Viewer")
	assert.Less(t, strings.Index(out, "Gallery"), strings.Index(out, "Viewer"))
}

func TestHelpDialog_NoFooter(t *testing.T) {
	d := NewHelpDialog("Keys", "", []HelpDialogSection{{Entries: []HelpEntry{{Key: "q", Desc: "quit"}}}})

	out := ansi.Strip(d.View())
	assert.Contains(t, out, "quit")
	assert.NotContains(t, out, "close")
	assert.Len(t, d.Sections(), 1)
}

func TestHelpDialog_AlignsDescriptions(t *testing.T) {
	out := ansi.Strip(testDialog().View())

	open := lineWith(t, out, "open viewer")
	prev := lineWith(t, out, "previous")
	assert.Equal(t,
		ansi.StringWidth(open[:strings.Index(open, "open viewer")]),
		ansi.StringWidth(prev[:strings.Index(prev, "previous")]),
	)
}
