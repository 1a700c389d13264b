package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lightbox/internal/core/config"
	"github.com/colonyops/lightbox/internal/core/viewer"
)

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4), "right edge is exclusive")
	assert.False(t, r.Contains(2, 5), "bottom edge is exclusive")
	assert.False(t, Rect{}.Contains(0, 0))
}

func TestSplitWidths(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		total   int
		gap     int
		want    []int
	}{
		{"equal", []float64{1, 1}, 22, 2, []int{10, 10}},
		{"proportional", []float64{2, 1}, 32, 2, []int{20, 10}},
		{"remainder to largest fraction", []float64{1, 1, 1}, 10, 0, []int{4, 3, 3}},
		{"single", []float64{1}, 40, 2, []int{40}},
		{"cramped", []float64{1, 1, 1}, 8, 1, []int{3, 3, 3}},
		{"empty", nil, 40, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitWidths(tt.weights, tt.total, tt.gap))
		})
	}
}

func TestSplitWidths_FillsRow(t *testing.T) {
	weights := []float64{1.6, 0.7, 0.7, 1}
	widths := splitWidths(weights, 97, 2)

	require.Len(t, widths, 4)
	assert.Equal(t, 97-3*2, sum(widths))
	assert.Greater(t, widths[0], widths[3])
	assert.Greater(t, widths[3], widths[1])
}

func TestSplitWidths_KeepsMinimum(t *testing.T) {
	widths := splitWidths([]float64{100, 0.01}, 20, 0)
	assert.Equal(t, 20, sum(widths))
	assert.GreaterOrEqual(t, widths[1], minTileWidth)
}

func TestLayoutRow(t *testing.T) {
	g := newGeometry(config.DefaultConfig().Layout)
	boxes := layoutRow(1, 4, []float64{1, 1}, 5, true, 10, 22, g)

	require.Len(t, boxes, 2)
	assert.Equal(t, tileBox{Section: 1, Index: 4, Rect: Rect{X: 0, Y: 10, W: 10, H: 6}}, boxes[0])
	assert.Equal(t, tileBox{Section: 1, Index: 5, Hovered: true, Rect: Rect{X: 12, Y: 10, W: 10, H: 6}}, boxes[1])

	_, ok := hitTile(boxes, 11, 12)
	assert.False(t, ok, "gap between tiles is not a tile")

	hit, ok := hitTile(boxes, 12, 10)
	require.True(t, ok)
	assert.Equal(t, 5, hit.Index)
}

func TestNewGeometry_Clamps(t *testing.T) {
	g := newGeometry(config.LayoutConfig{TileHeight: 1, HoverLift: -2, Gap: -1})
	assert.Equal(t, geometry{tileHeight: 3}, g)
	assert.Equal(t, 3, g.rowHeight())
}

func TestLayoutViewer(t *testing.T) {
	b := layoutViewer(100, 40)

	assert.Equal(t, Rect{X: 10, Y: 4, W: 80, H: 32}, b.Panel)

	for name, r := range map[string]Rect{
		"image": b.Image, "close": b.Close, "prev": b.Prev, "next": b.Next,
		"caption": b.Caption, "indicator": b.Indicator,
	} {
		assert.True(t, b.Panel.Contains(r.X, r.Y), name)
		assert.True(t, b.Panel.Contains(r.X+r.W-1, r.Y+r.H-1), name)
	}

	assert.Less(t, b.Prev.X+b.Prev.W, b.Image.X)
	assert.Greater(t, b.Next.X, b.Image.X+b.Image.W-1)
	assert.Less(t, b.Close.Y, b.Image.Y)
	assert.Equal(t, b.Image.Y+b.Image.H, b.Caption.Y)
	assert.Equal(t, b.Caption.Y+1, b.Indicator.Y)
}

func TestLayoutViewer_SmallScreen(t *testing.T) {
	b := layoutViewer(20, 6)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 20, H: 6}, b.Panel)
	assert.GreaterOrEqual(t, b.Image.W, 1)
	assert.GreaterOrEqual(t, b.Image.H, 1)
}

func TestViewerBoxes_Target(t *testing.T) {
	b := layoutViewer(100, 40)

	assert.Equal(t, viewer.TargetClose, b.target(b.Close.X+1, b.Close.Y))
	assert.Equal(t, viewer.TargetPrev, b.target(b.Prev.X, b.Prev.Y))
	assert.Equal(t, viewer.TargetNext, b.target(b.Next.X+2, b.Next.Y))
	assert.Equal(t, viewer.TargetImage, b.target(b.Image.X, b.Image.Y))
	assert.Equal(t, viewer.TargetImage, b.target(b.Image.X+b.Image.W-1, b.Image.Y+b.Image.H-1))
	assert.Equal(t, viewer.TargetBackdrop, b.target(0, 0))
	assert.Equal(t, viewer.TargetBackdrop, b.target(b.Caption.X, b.Caption.Y), "caption is outside the image")
}
