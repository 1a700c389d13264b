// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
	ColorAccent     color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	WarningStyle       lipgloss.Style

	// Gallery page.
	TitleStyle        lipgloss.Style
	SectionNameStyle  lipgloss.Style
	StatusBarStyle    lipgloss.Style
	StatusErrorStyle  lipgloss.Style
	StatusCopiedStyle lipgloss.Style

	// Tiles.
	TileStyle        lipgloss.Style
	TileHoveredStyle lipgloss.Style
	TileLabelStyle   lipgloss.Style
	TileMissingStyle lipgloss.Style

	// Viewer overlay.
	ViewerBackdropStyle  lipgloss.Style
	ViewerPanelStyle     lipgloss.Style
	ViewerImageStyle     lipgloss.Style
	ViewerCaptionStyle   lipgloss.Style
	ViewerControlStyle   lipgloss.Style
	ViewerIndicatorStyle lipgloss.Style

	// Help dialog.
	ModalStyle              lipgloss.Style
	ModalTitleStyle         lipgloss.Style
	ModalHelpStyle          lipgloss.Style
	HelpDialogSectionStyle  lipgloss.Style
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextMutedStyle          lipgloss.Style
)

// ColorPool is used for deterministic tile tints.
var ColorPool []color.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorAccent = p.Accent

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	SectionNameStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		Padding(0, 1)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	StatusErrorStyle = StatusBarStyle.
		Foreground(ColorError)
	StatusCopiedStyle = StatusBarStyle.
		Foreground(ColorSuccess)

	TileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Foreground(ColorMuted)
	TileHoveredStyle = TileStyle.
		BorderForeground(ColorPrimary).
		Foreground(ColorForeground)
	TileLabelStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TileMissingStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	ViewerBackdropStyle = lipgloss.NewStyle().
		Background(ColorBackground).
		Foreground(ColorMuted)
	ViewerPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBackground)
	ViewerImageStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface)
	ViewerCaptionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	ViewerControlStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface).
		Bold(true).
		Padding(0, 1)
	ViewerIndicatorStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ColorPool = p.Tiles
	if len(ColorPool) == 0 {
		ColorPool = []color.Color{ColorPrimary, ColorSecondary, ColorAccent, ColorSuccess, ColorWarning, ColorError}
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) color.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// Tint blends the deterministic color for s into the surface color. amount
// is clamped to [0, 1]; 0 yields the surface color.
func Tint(s string, amount float64) color.Color {
	amount = min(max(amount, 0), 1)

	base, ok := colorful.MakeColor(ColorSurface)
	if !ok {
		return ColorSurface
	}
	accent, ok := colorful.MakeColor(ColorForString(s))
	if !ok {
		return ColorSurface
	}
	return base.BlendLab(accent, amount).Clamped()
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
