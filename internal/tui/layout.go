package tui

import (
	"math"

	"github.com/colonyops/lightbox/internal/core/config"
)

// Rect is a cell-addressed rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// geometry holds the tile dimensions taken from the layout config.
type geometry struct {
	tileHeight int
	hoverLift  int
	gap        int
}

func newGeometry(l config.LayoutConfig) geometry {
	return geometry{
		tileHeight: max(l.TileHeight, 3),
		hoverLift:  max(l.HoverLift, 0),
		gap:        max(l.Gap, 0),
	}
}

// rowHeight is constant per row so hovering never shifts the rows below.
func (g geometry) rowHeight() int {
	return g.tileHeight + g.hoverLift
}

// tileBox places one tile in page coordinates. Rect spans the full row band
// of the tile's column, which keeps the hit area stable while the tile lifts.
type tileBox struct {
	Section int
	Index   int
	Hovered bool
	Rect    Rect
}

const minTileWidth = 3

// splitWidths divides total columns between tiles in proportion to weights,
// leaving gap columns between neighbours. Rounding leftovers go to the tiles
// with the largest fractional share, earlier tiles first on ties.
func splitWidths(weights []float64, total, gap int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}

	avail := total - gap*(n-1)
	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	widths := make([]int, n)
	if sum <= 0 || avail <= n*minTileWidth {
		for i := range widths {
			widths[i] = max(minTileWidth, avail/n)
		}
		return widths
	}

	type frac struct {
		i int
		f float64
	}
	fracs := make([]frac, n)
	used := 0
	for i, w := range weights {
		exact := float64(avail) * w / sum
		widths[i] = int(math.Floor(exact))
		fracs[i] = frac{i: i, f: exact - float64(widths[i])}
		used += widths[i]
	}

	for rest := avail - used; rest > 0; rest-- {
		best := 0
		for j := 1; j < n; j++ {
			if fracs[j].f > fracs[best].f {
				best = j
			}
		}
		widths[fracs[best].i]++
		fracs[best].f = -1
	}

	// Borrow from the widest tiles so none drops below the minimum.
	for i := range widths {
		for widths[i] < minTileWidth {
			widest := 0
			for j := range widths {
				if widths[j] > widths[widest] {
					widest = j
				}
			}
			if widths[widest] <= minTileWidth {
				break
			}
			widths[widest]--
			widths[i]++
		}
	}

	return widths
}

// layoutRow positions the tiles of one row starting at page line y.
func layoutRow(section, first int, weights []float64, hovered int, ok bool, y, width int, g geometry) []tileBox {
	widths := splitWidths(weights, width, g.gap)
	boxes := make([]tileBox, len(widths))

	x := 0
	for col, w := range widths {
		idx := first + col
		boxes[col] = tileBox{
			Section: section,
			Index:   idx,
			Hovered: ok && hovered == idx,
			Rect:    Rect{X: x, Y: y, W: w, H: g.rowHeight()},
		}
		x += w + g.gap
	}
	return boxes
}

// hitTile returns the tile containing the page cell (x, y).
func hitTile(tiles []tileBox, x, y int) (tileBox, bool) {
	for _, t := range tiles {
		if t.Rect.Contains(x, y) {
			return t, true
		}
	}
	return tileBox{}, false
}

// viewerBoxes are the screen regions of the open viewer.
type viewerBoxes struct {
	Panel     Rect
	Image     Rect
	Close     Rect
	Prev      Rect
	Next      Rect
	Caption   Rect
	Indicator Rect
}

const (
	controlWidth   = 3
	minPanelWidth  = 24
	minPanelHeight = 9
)

// layoutViewer centers the viewer panel on a width x height screen. The
// image area sits between the prev and next controls, the close control
// takes the top-right corner, and the caption and indicator take the last
// two lines.
func layoutViewer(width, height int) viewerBoxes {
	pw := min(max(width*4/5, minPanelWidth), width)
	ph := min(max(height*4/5, minPanelHeight), height)

	panel := Rect{X: (width - pw) / 2, Y: (height - ph) / 2, W: pw, H: ph}
	inner := Rect{X: panel.X + 1, Y: panel.Y + 1, W: max(pw-2, 0), H: max(ph-2, 0)}

	imgTop := inner.Y + 1
	imgH := max(inner.H-3, 1)
	mid := imgTop + imgH/2

	return viewerBoxes{
		Panel:     panel,
		Image:     Rect{X: inner.X + controlWidth + 1, Y: imgTop, W: max(inner.W-2*(controlWidth+1), 1), H: imgH},
		Close:     Rect{X: inner.X + inner.W - controlWidth, Y: inner.Y, W: controlWidth, H: 1},
		Prev:      Rect{X: inner.X, Y: mid, W: controlWidth, H: 1},
		Next:      Rect{X: inner.X + inner.W - controlWidth, Y: mid, W: controlWidth, H: 1},
		Caption:   Rect{X: inner.X, Y: imgTop + imgH, W: inner.W, H: 1},
		Indicator: Rect{X: inner.X, Y: imgTop + imgH + 1, W: inner.W, H: 1},
	}
}
