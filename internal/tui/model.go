// Package tui implements the lightbox terminal UI: a hover-reactive gallery
// page and the modal image viewer layered over it.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/colonyops/lightbox/internal/core/catalog"
	"github.com/colonyops/lightbox/internal/core/config"
	"github.com/colonyops/lightbox/internal/core/eventbus"
	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/input"
	"github.com/colonyops/lightbox/internal/core/viewer"
	"github.com/colonyops/lightbox/internal/tui/components"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
)

const (
	headerHeight = 1
	footerHeight = 1

	defaultWidth  = 80
	defaultHeight = 24

	wheelStep = 3
)

// Deps are the collaborators the TUI needs.
type Deps struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Bus     *eventbus.EventBus // optional
	Source  catalog.Source
	Gallery gallery.Gallery

	// Changes delivers watcher notifications; nil disables reloading.
	Changes <-chan catalog.Change
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
}

// Opts configures the TUI behavior.
type Opts struct {
	Warnings []string // shown in the status line on start
}

type status struct {
	level  eventbus.StatusLevel
	text   string
	copied bool
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg    *config.Config
	keys   keyMap
	geom   geometry
	log    zerolog.Logger
	bus    *eventbus.EventBus
	source catalog.Source

	gallery gallery.Gallery
	grids   []*gallery.Grid
	items   [][]catalog.Item
	tiles   []tileBox

	host  *input.Host
	owner *viewer.Owner

	viewport viewport.Model
	markdown *markdownCache
	spinner  spinner.Model
	loading  bool

	state    UIState
	help     *components.HelpDialog
	status   status
	statusCh chan eventbus.StatusPublishedPayload
	changes  <-chan catalog.Change
	copy     func(string) error

	width    int
	height   int
	quitting bool
}

// New creates the TUI model for a loaded gallery.
func New(deps Deps, opts Opts) Model {
	cfg := deps.Config
	host := input.NewHost()

	copyFn := deps.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		cfg:      cfg,
		keys:     newKeyMap(cfg.Keys),
		geom:     newGeometry(cfg.Layout),
		log:      deps.Logger,
		bus:      deps.Bus,
		source:   deps.Source,
		host:     host,
		owner:    viewer.NewOwner(host, cfg.ViewerKeymap(), deps.Logger.With().Str("cmp", "viewer").Logger()),
		markdown: newMarkdownCache(deps.Logger),
		spinner:  s,
		changes:  deps.Changes,
		copy:     copyFn,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.viewport = viewport.New(
		viewport.WithWidth(m.width),
		viewport.WithHeight(m.pageHeight()),
	)

	if m.bus != nil {
		bus := m.bus
		m.owner.Observe(func(e viewer.Event) {
			switch e.Kind {
			case viewer.EventOpened:
				bus.PublishViewerOpened(eventbus.ViewerOpenedPayload{Index: e.To, Count: e.Count, Ref: e.Ref})
			case viewer.EventNavigated:
				bus.PublishViewerNavigated(eventbus.ViewerNavigatedPayload{From: e.From, To: e.To, Ref: e.Ref})
			case viewer.EventClosed:
				bus.PublishViewerClosed(eventbus.ViewerClosedPayload{Index: e.From})
			}
		})

		statusCh := make(chan eventbus.StatusPublishedPayload, 8)
		bus.SubscribeStatusPublished(func(p eventbus.StatusPublishedPayload) {
			select {
			case statusCh <- p:
			default:
				// A newer status will replace it anyway.
			}
		})
		m.statusCh = statusCh
	}

	if len(opts.Warnings) > 0 {
		m.status = status{level: eventbus.StatusWarning, text: opts.Warnings[0]}
	}

	m.setGallery(deps.Gallery)
	return m
}

// setGallery rebuilds the grids for g. Hover state starts empty; an open
// viewer keeps its own copy of the image list.
func (m *Model) setGallery(g gallery.Gallery) {
	m.gallery = g
	m.grids = make([]*gallery.Grid, len(g.Sections))
	for i, sec := range g.Sections {
		m.grids[i] = gallery.NewGrid(sec, m.cfg.Policy(), m.activator(sec.Name))
	}

	m.items = make([][]catalog.Item, len(g.Sections))
	pos := 0
	inventory := catalog.Inventory(g)
	for i, sec := range g.Sections {
		n := sec.Len()
		m.items[i] = inventory[pos : pos+n]
		pos += n
	}

	m.refresh()
}

// activator returns the grid activation handler for a section.
func (m *Model) activator(section string) gallery.ActivateFunc {
	owner, bus, logger := m.owner, m.bus, m.log
	return func(images gallery.ImageList, index int) {
		if err := owner.Open(images, index); err != nil {
			logger.Error().Err(err).Str("section", section).Int("index", index).Msg("open viewer")
			return
		}
		if bus != nil {
			bus.PublishGalleryActivated(eventbus.GalleryActivatedPayload{
				Section: section,
				Index:   index,
				Ref:     images[index],
			})
		}
	}
}

// Owner returns the viewer owner.
func (m Model) Owner() *viewer.Owner {
	return m.owner
}

// Host returns the page input host the viewer binds to.
func (m Model) Host() *input.Host {
	return m.host
}

// Gallery returns the gallery currently shown.
func (m Model) Gallery() gallery.Gallery {
	return m.gallery
}

// Hovered returns the hovered tile as a section and entry index.
func (m Model) Hovered() (section, index int, ok bool) {
	for s, g := range m.grids {
		if i, ok := g.Hovered(); ok {
			return s, i, true
		}
	}
	return 0, 0, false
}

func (m Model) pageHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.owner.Reset()
	return m, tea.Quit
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listenForChange(m.changes),
		listenForStatus(m.statusCh),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// Window
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	// Input
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseMotionMsg:
		return m.handleMotion(msg.Mouse())
	case tea.MouseClickMsg:
		return m.handleClick(msg.Mouse())
	case tea.MouseWheelMsg:
		return m.handleWheel(msg.Mouse())

	// Reload
	case galleryChangedMsg:
		m.log.Debug().Str("path", msg.change.Path).Msg("gallery changed on disk")
		m.loading = true
		return m, tea.Batch(m.reload(), listenForChange(m.changes), m.spinner.Tick)
	case galleryLoadedMsg:
		return m.handleGalleryLoaded(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	// Status
	case statusMsg:
		m.status = status{level: msg.payload.Level, text: msg.payload.Message}
		return m, listenForStatus(m.statusCh)
	case copiedMsg:
		return m.handleCopied(msg)
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	offset := m.viewport.YOffset()
	m.viewport = viewport.New(
		viewport.WithWidth(m.width),
		viewport.WithHeight(m.pageHeight()),
	)
	m.refresh()
	m.viewport.SetYOffset(offset)
	return m, nil
}

// handleKey processes key presses. Listeners registered on the host (the
// open viewer) see every key first.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == keyCtrlC {
		return m.quit()
	}

	if m.host.Keys.Dispatch(keyStr) {
		m.refresh()
		return m, nil
	}

	if m.state == stateShowingHelp {
		return m.handleHelpDialogKey(msg)
	}

	if m.owner.IsOpen() {
		return m.handleViewerKey(msg)
	}

	return m.handleNormalKey(msg)
}

func (m Model) handleHelpDialogKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help), msg.String() == "esc":
		m.state = stateNormal
		m.help = nil
	}
	return m, nil
}

// handleViewerKey handles keys the viewer did not consume. The viewer is
// modal, so anything else is swallowed.
func (m Model) handleViewerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Copy) {
		ref := m.owner.Viewer().Current()
		copyFn := m.copy
		return m, func() tea.Msg {
			return copiedMsg{ref: ref, err: copyFn(ref)}
		}
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		return m.showHelpDialog()
	case key.Matches(msg, m.keys.Open):
		if s, i, ok := m.Hovered(); ok {
			m.grids[s].Activate(i)
		}
	case key.Matches(msg, m.keys.Left):
		m.moveHover(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveHover(0, 1)
	case key.Matches(msg, m.keys.Up):
		m.moveHover(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveHover(1, 0)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.viewport.VisibleLineCount())
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.viewport.VisibleLineCount())
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// showHelpDialog creates and displays the help dialog.
func (m Model) showHelpDialog() (tea.Model, tea.Cmd) {
	footer := fmt.Sprintf("esc/%s close", m.keys.Help.Help().Key)
	m.help = components.NewHelpDialog("Keyboard Shortcuts", footer, m.keys.helpSections())
	m.state = stateShowingHelp
	return m, nil
}

// scroll moves the page unless an overlay holds the scroll lock.
func (m *Model) scroll(lines int) {
	if m.host.Scroll.Locked() {
		return
	}
	if lines < 0 {
		m.viewport.ScrollUp(-lines)
	} else {
		m.viewport.ScrollDown(lines)
	}
}

// setHover moves the hover to (s, i), leaving the previously hovered tile.
func (m *Model) setHover(s, i int) {
	if ps, pi, ok := m.Hovered(); ok {
		if ps == s && pi == i {
			return
		}
		m.grids[ps].PointerLeave(pi)
	}
	m.grids[s].PointerEnter(i)
}

// clearHover leaves the hovered tile, if any.
func (m *Model) clearHover() {
	if s, i, ok := m.Hovered(); ok {
		m.grids[s].PointerLeave(i)
	}
}

// moveHover moves the keyboard hover cursor by rows or columns. Moves stop at
// the edges; vertical moves cross section boundaries.
func (m *Model) moveHover(drow, dcol int) {
	s, i, ok := m.Hovered()
	if !ok {
		for si, g := range m.grids {
			if g.Len() > 0 {
				m.setHover(si, 0)
				m.ensureVisible()
				return
			}
		}
		return
	}

	sec := m.grids[s].Section()
	if dcol != 0 {
		next := i + dcol
		if next >= 0 && next < sec.Len() {
			m.setHover(s, next)
		}
		m.ensureVisible()
		return
	}

	row, col, _ := sec.Locate(i)
	ns, nrow := s, row+drow
	for {
		rows := m.grids[ns].Section().Rows
		if nrow >= 0 && nrow < len(rows) && len(rows[nrow].Entries) > 0 {
			break
		}
		if nrow < 0 {
			ns--
			if ns < 0 {
				return
			}
			nrow = len(m.grids[ns].Section().Rows) - 1
			continue
		}
		if nrow >= len(rows) {
			ns++
			if ns >= len(m.grids) {
				return
			}
			nrow = 0
			continue
		}
		nrow += drow
	}

	target := m.grids[ns].Section()
	ncol := min(col, len(target.Rows[nrow].Entries)-1)
	m.setHover(ns, target.Index(nrow, ncol))
	m.ensureVisible()
}

// ensureVisible scrolls so the hovered tile is inside the viewport.
func (m *Model) ensureVisible() {
	m.refresh()
	for _, t := range m.tiles {
		if !t.Hovered {
			continue
		}
		top := m.viewport.YOffset()
		bottom := top + m.viewport.VisibleLineCount()
		switch {
		case t.Rect.Y < top:
			m.viewport.SetYOffset(t.Rect.Y)
		case t.Rect.Y+t.Rect.H > bottom:
			m.viewport.SetYOffset(t.Rect.Y + t.Rect.H - m.viewport.VisibleLineCount())
		}
		return
	}
}

// pagePoint converts a screen cell to page coordinates.
func (m Model) pagePoint(x, y int) (int, int, bool) {
	if y < headerHeight || y >= headerHeight+m.pageHeight() {
		return 0, 0, false
	}
	return x, y - headerHeight + m.viewport.YOffset(), true
}

func (m Model) tileAt(x, y int) (tileBox, bool) {
	px, py, ok := m.pagePoint(x, y)
	if !ok {
		return tileBox{}, false
	}
	return hitTile(m.tiles, px, py)
}

// handleMotion tracks the tile under the pointer. The open viewer covers the
// page, so motion is ignored while it is shown.
func (m Model) handleMotion(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if m.owner.IsOpen() || m.state != stateNormal {
		return m, nil
	}

	if t, ok := m.tileAt(mouse.X, mouse.Y); ok {
		m.setHover(t.Section, t.Index)
	} else {
		m.clearHover()
	}
	m.refresh()
	return m, nil
}

func (m Model) handleClick(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	if mouse.Button != tea.MouseLeft || m.state != stateNormal {
		return m, nil
	}

	if m.owner.IsOpen() {
		boxes := layoutViewer(m.width, m.height)
		m.owner.Viewer().Click(boxes.target(mouse.X, mouse.Y))
		m.refresh()
		return m, nil
	}

	if t, ok := m.tileAt(mouse.X, mouse.Y); ok {
		m.setHover(t.Section, t.Index)
		m.grids[t.Section].Activate(t.Index)
		m.refresh()
	}
	return m, nil
}

func (m Model) handleWheel(mouse tea.Mouse) (tea.Model, tea.Cmd) {
	switch mouse.Button {
	case tea.MouseWheelUp:
		m.scroll(-wheelStep)
	case tea.MouseWheelDown:
		m.scroll(wheelStep)
	}
	return m, nil
}

// reload returns a command that loads the gallery source again.
func (m Model) reload() tea.Cmd {
	src, cfg := m.source, m.cfg
	return func() tea.Msg {
		g, err := catalog.Load(src, cfg)
		return galleryLoadedMsg{gallery: g, err: err}
	}
}

func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.loading {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) handleGalleryLoaded(msg galleryLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("source", m.source.Path).Msg("reload gallery")
	} else {
		m.setGallery(msg.gallery)
		m.log.Info().Int("images", msg.gallery.Len()).Msg("gallery reloaded")
	}

	if m.bus != nil {
		payload := eventbus.GalleryReloadedPayload{Source: m.source.Path, Err: msg.err}
		if msg.err == nil {
			g := msg.gallery
			payload.Gallery = &g
		}
		m.bus.PublishGalleryReloaded(payload)
		return m, nil
	}

	if msg.err != nil {
		m.status = status{level: eventbus.StatusError, text: "reload failed: " + msg.err.Error()}
	} else {
		m.status = status{level: eventbus.StatusInfo, text: fmt.Sprintf("reloaded %d images", msg.gallery.Len())}
	}
	return m, nil
}

func (m Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msg("copy to clipboard")
		m.status = status{level: eventbus.StatusError, text: "copy failed: " + msg.err.Error()}
		return m, nil
	}
	m.status = status{level: eventbus.StatusInfo, text: "copied " + msg.ref, copied: true}
	return m, nil
}

// Teardown discards viewer state and releases its binding. The quit keys do
// this already; the command calls it for every other exit path.
func (m Model) Teardown() {
	m.owner.Reset()
}
