package styles

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotNil(t, p.Accent)

	_, ok = GetPalette("neon")
	assert.False(t, ok)
}

func TestSetTheme_RebuildsColors(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("gruvbox")
	SetTheme(p)

	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Accent, ColorAccent)
	assert.Equal(t, p.Tiles, ColorPool)
}

func TestColorForString_Deterministic(t *testing.T) {
	assert.Equal(t, ColorForString("gallery-01.png"), ColorForString("gallery-01.png"))
	for _, in := range []string{"", "a", "hero-main.png"} {
		assert.Contains(t, ColorPool, ColorForString(in))
	}
}

func TestTint(t *testing.T) {
	surface, ok := colorful.MakeColor(ColorSurface)
	require.True(t, ok)

	zero, ok := colorful.MakeColor(Tint("a.png", 0))
	require.True(t, ok)
	assert.Equal(t, surface.Hex(), zero.Hex())

	clamped, _ := colorful.MakeColor(Tint("a.png", 5))
	full, _ := colorful.MakeColor(Tint("a.png", 1))
	assert.Equal(t, full.Hex(), clamped.Hex())
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()

	muted, _ := colorful.MakeColor(ColorMuted)
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, muted.Hex(), *cfg.Document.Color)

	fg, _ := colorful.MakeColor(ColorForeground)
	require.NotNil(t, cfg.Strong.Color)
	assert.Equal(t, fg.Hex(), *cfg.Strong.Color)
	assert.Nil(t, cfg.H1.BackgroundColor)
}

func TestIconForRef(t *testing.T) {
	assert.Equal(t, IconFileGIF, IconForRef("spin.GIF"))
	assert.Equal(t, IconFileRaw, IconForRef("shot.tiff"))
	assert.Equal(t, IconFileImage, IconForRef("a.png"))
}
