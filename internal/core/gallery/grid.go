package gallery

// HoverState tracks which entry, if any, is under the pointer. At most one
// entry is hovered at a time.
type HoverState struct {
	index int
	set   bool
}

// Enter marks i as hovered, replacing any previously hovered entry.
func (h *HoverState) Enter(i int) {
	h.index = i
	h.set = true
}

// Leave clears the hover if i is the hovered entry. A leave for an entry that
// is no longer hovered is ignored and reported as false.
func (h *HoverState) Leave(i int) bool {
	if !h.set || h.index != i {
		return false
	}
	h.Clear()
	return true
}

// Clear drops the hover unconditionally.
func (h *HoverState) Clear() {
	h.index = 0
	h.set = false
}

// Index returns the hovered entry.
func (h HoverState) Index() (int, bool) {
	return h.index, h.set
}

// Is reports whether i is the hovered entry.
func (h HoverState) Is(i int) bool {
	return h.set && h.index == i
}

// ActivateFunc receives the flattened image list of a section and the index
// the viewer should start at.
type ActivateFunc func(images ImageList, index int)

// Grid drives one section of the gallery: it owns the hover state and raises
// activation for clicked entries.
type Grid struct {
	section    Section
	policy     Policy
	hover      HoverState
	onActivate ActivateFunc
}

// NewGrid creates a grid over section. def is the weighting applied to rows
// that set no policy of their own.
func NewGrid(section Section, def Policy, onActivate ActivateFunc) *Grid {
	return &Grid{
		section:    section,
		policy:     def.OrDefault(DefaultPolicy()),
		onActivate: onActivate,
	}
}

// Section returns the section the grid renders.
func (g *Grid) Section() Section {
	return g.section
}

// Len returns the number of entries in the grid.
func (g *Grid) Len() int {
	return g.section.Len()
}

// PointerEnter marks entry i as hovered. Out-of-range indices are ignored.
func (g *Grid) PointerEnter(i int) {
	if i < 0 || i >= g.section.Len() {
		return
	}
	g.hover.Enter(i)
}

// PointerLeave clears the hover when i is the hovered entry.
func (g *Grid) PointerLeave(i int) {
	g.hover.Leave(i)
}

// ClearHover drops any hover, e.g. when the pointer leaves the grid entirely.
func (g *Grid) ClearHover() {
	g.hover.Clear()
}

// Hovered returns the hovered entry index.
func (g *Grid) Hovered() (int, bool) {
	return g.hover.Index()
}

// IsHovered reports whether entry i is hovered.
func (g *Grid) IsHovered(i int) bool {
	return g.hover.Is(i)
}

// Weights returns the current layout weights, row by row.
func (g *Grid) Weights() [][]float64 {
	i, ok := g.hover.Index()
	return Weights(g.section, i, ok, g.policy)
}

// Activate raises the activation event for entry i with the section's full
// image list. It reports false for an empty grid or an out-of-range index.
func (g *Grid) Activate(i int) bool {
	if i < 0 || i >= g.section.Len() {
		return false
	}
	if g.onActivate != nil {
		g.onActivate(g.section.Images(), i)
	}
	return true
}
