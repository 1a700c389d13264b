package tui

import (
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/internal/core/eventbus"
	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/styles"
	"github.com/colonyops/lightbox/internal/core/viewer"
)

const (
	tintIdle    = 0.12
	tintHovered = 0.35
)

// refresh re-lays the page for the current hover and width and loads it into
// the viewport. The viewport offset is kept.
func (m *Model) refresh() {
	content, tiles := m.renderPage()
	m.tiles = tiles

	offset := m.viewport.YOffset()
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(offset)
}

// renderPage renders every section and returns the tile positions in page
// coordinates.
func (m Model) renderPage() (string, []tileBox) {
	var (
		blocks []string
		tiles  []tileBox
		y      int
	)

	for s, grid := range m.grids {
		if s > 0 {
			blocks = append(blocks, "")
			y++
		}

		header := m.renderSectionHeader(grid.Section())
		blocks = append(blocks, header)
		y += lipgloss.Height(header)

		if grid.Len() == 0 {
			blocks = append(blocks, styles.TextMutedStyle.Render("  no images"))
			y++
			continue
		}

		hovered, ok := grid.Hovered()
		first := 0
		for r, weights := range grid.Weights() {
			boxes := layoutRow(s, first, weights, hovered, ok, y, m.width, m.geom)
			blocks = append(blocks, m.renderRow(grid.Section().Rows[r], boxes))
			tiles = append(tiles, boxes...)
			first += len(weights)
			y += m.geom.rowHeight()
		}
	}

	if len(m.grids) == 0 {
		blocks = append(blocks, styles.TextMutedStyle.Render("  gallery is empty"))
	}

	return strings.Join(blocks, "\n"), tiles
}

func (m Model) renderSectionHeader(sec gallery.Section) string {
	count := humanize.Comma(int64(sec.Len()))
	name := styles.SectionNameStyle.Render(styles.IconGallery+" "+sec.Name) +
		styles.TextMutedStyle.Render(count)

	desc := m.markdown.Render(sec.Description, m.width-2)
	if desc == "" {
		return name
	}
	return lipgloss.JoinVertical(lipgloss.Left, name, desc)
}

// renderRow renders tiles side by side, bottom-aligned so the hovered tile
// rises above its neighbours.
func (m Model) renderRow(row gallery.Row, boxes []tileBox) string {
	parts := make([]string, 0, 2*len(boxes))
	gap := strings.Repeat(" ", m.geom.gap)

	for col, box := range boxes {
		if col > 0 && gap != "" {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderTile(row.Entries[col], box))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
	return lipgloss.PlaceVertical(m.geom.rowHeight(), lipgloss.Bottom, line)
}

func (m Model) item(section, index int) catalog.Item {
	if section < len(m.items) && index < len(m.items[section]) {
		return m.items[section][index]
	}
	return catalog.Item{}
}

func (m Model) renderTile(e gallery.Entry, box tileBox) string {
	h := m.geom.tileHeight
	style, tint := styles.TileStyle, tintIdle
	if box.Hovered {
		h += m.geom.hoverLift
		style, tint = styles.TileHoveredStyle, tintHovered
	}

	// The border takes one cell on each side.
	iw, ih := max(box.Rect.W-2, 1), max(h-2, 1)

	lines := []string{
		styles.IconForRef(e.Ref),
		styles.TileLabelStyle.Render(ansi.Truncate(entryLabel(e), iw, "…")),
	}
	it := m.item(box.Section, box.Index)
	switch {
	case it.Missing:
		lines = append(lines, styles.TileMissingStyle.Render(styles.IconMissing+" missing"))
	case it.Size > 0 && ih > 2:
		lines = append(lines, humanize.Bytes(uint64(it.Size)))
	}

	body := lipgloss.NewStyle().
		Width(iw).
		Height(ih).
		MaxWidth(iw).
		MaxHeight(ih).
		Align(lipgloss.Center, lipgloss.Center).
		Background(styles.Tint(e.Ref, tint)).
		Render(strings.Join(lines, "\n"))

	return style.Render(body)
}

func entryLabel(e gallery.Entry) string {
	if e.Label != "" {
		return e.Label
	}
	return filepath.Base(e.Ref)
}

func (m Model) renderHeader() string {
	title := m.gallery.Title
	if title == "" {
		title = filepath.Base(m.source.Dir)
	}

	left := styles.TitleStyle.Render(styles.IconGallery + " " + title)
	right := styles.TextMutedStyle.Render(humanize.Comma(int64(m.gallery.Len())) + " images ")
	space := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", space) + right
}

func (m Model) renderFooter() string {
	if m.loading {
		return styles.StatusBarStyle.Render(m.spinner.View() + " reloading gallery")
	}

	text := m.status.text
	if text == "" {
		return styles.StatusBarStyle.Render(m.keys.Help.Help().Key + " help")
	}

	text = ansi.Truncate(text, max(m.width-2, 1), "…")
	switch {
	case m.status.copied:
		return styles.StatusCopiedStyle.Render(styles.IconCopy + " " + text)
	case m.status.level == eventbus.StatusError, m.status.level == eventbus.StatusWarning:
		return styles.StatusErrorStyle.Render(text)
	default:
		return styles.StatusBarStyle.Render(text)
	}
}

// target maps a screen cell to what a click there lands on. Controls take
// precedence over the image; anything else is the backdrop.
func (b viewerBoxes) target(x, y int) viewer.Target {
	switch {
	case b.Close.Contains(x, y):
		return viewer.TargetClose
	case b.Prev.Contains(x, y):
		return viewer.TargetPrev
	case b.Next.Contains(x, y):
		return viewer.TargetNext
	case b.Image.Contains(x, y):
		return viewer.TargetImage
	default:
		return viewer.TargetBackdrop
	}
}

func blankBlock(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	return strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n")
}

// renderViewer layers the backdrop, the panel, the image placeholder and the
// controls over background. Layers are placed at the same rects the click
// hit test uses.
func renderViewer(background string, width, height int, v *viewer.Viewer) string {
	b := layoutViewer(width, height)
	ref := v.Current()

	image := styles.ViewerImageStyle.
		Width(b.Image.W).
		Height(b.Image.H).
		MaxWidth(b.Image.W).
		MaxHeight(b.Image.H).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.IconForRef(ref) + "\n" + ansi.Truncate(filepath.Base(ref), b.Image.W, "…"))

	caption := lipgloss.PlaceHorizontal(b.Caption.W, lipgloss.Center,
		styles.ViewerCaptionStyle.Render(ansi.Truncate(ref, max(b.Caption.W, 1), "…")))

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(background),
		lipgloss.NewLayer(styles.ViewerBackdropStyle.Render(blankBlock(width, height))).Z(1),
		lipgloss.NewLayer(styles.ViewerPanelStyle.Render(blankBlock(b.Panel.W-2, b.Panel.H-2))).
			X(b.Panel.X).Y(b.Panel.Y).Z(2),
		lipgloss.NewLayer(image).X(b.Image.X).Y(b.Image.Y).Z(3),
		lipgloss.NewLayer(caption).X(b.Caption.X).Y(b.Caption.Y).Z(3),
		lipgloss.NewLayer(styles.ViewerControlStyle.Render(styles.IconClose)).X(b.Close.X).Y(b.Close.Y).Z(4),
	}

	if v.HasPrev() {
		layers = append(layers, lipgloss.NewLayer(styles.ViewerControlStyle.Render(styles.IconPrev)).
			X(b.Prev.X).Y(b.Prev.Y).Z(4))
	}
	if v.HasNext() {
		layers = append(layers, lipgloss.NewLayer(styles.ViewerControlStyle.Render(styles.IconNext)).
			X(b.Next.X).Y(b.Next.Y).Z(4))
	}
	if text, ok := v.Indicator(); ok {
		indicator := lipgloss.PlaceHorizontal(b.Indicator.W, lipgloss.Center, styles.ViewerIndicatorStyle.Render(text))
		layers = append(layers, lipgloss.NewLayer(indicator).X(b.Indicator.X).Y(b.Indicator.Y).Z(3))
	}

	return lipgloss.NewCompositor(layers...).Render()
}

// View renders the model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render composes the page and the active overlay.
func (m Model) render() string {
	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.PlaceVertical(m.pageHeight(), lipgloss.Top, m.viewport.View()),
		m.renderFooter(),
	)

	switch {
	case m.owner.IsOpen():
		return renderViewer(mainView, w, h, m.owner.Viewer())
	case m.state == stateShowingHelp && m.help != nil:
		return m.help.Overlay(mainView, w, h)
	default:
		return mainView
	}
}
