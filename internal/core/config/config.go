// Package config handles configuration loading and validation for lightbox.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/styles"
	"github.com/colonyops/lightbox/internal/core/viewer"
)

// Sort keys for directory scans.
const (
	SortName  = "name"
	SortMtime = "mtime"
	SortSize  = "size"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Config holds the application configuration.
type Config struct {
	Theme  string       `yaml:"theme"`
	Keys   KeysConfig   `yaml:"keys"`
	Layout LayoutConfig `yaml:"layout"`
	Scan   ScanConfig   `yaml:"scan"`
	Watch  bool         `yaml:"watch"`
}

// KeysConfig holds key bindings. Each action accepts several keys, written the
// way Bubble Tea names them ("esc", "right", "ctrl+c").
type KeysConfig struct {
	Close []string `yaml:"close"` // close the viewer
	Next  []string `yaml:"next"`  // next image
	Prev  []string `yaml:"prev"`  // previous image
	Copy  []string `yaml:"copy"`  // copy the current reference to the clipboard
	Open  []string `yaml:"open"`  // open the viewer on the hovered tile
	Help  []string `yaml:"help"`
	Quit  []string `yaml:"quit"`
}

// LayoutConfig controls tile geometry and the hover weighting policy.
type LayoutConfig struct {
	TileHeight int     `yaml:"tile_height"` // lines per idle tile
	HoverLift  int     `yaml:"hover_lift"`  // extra lines for the hovered tile
	Gap        int     `yaml:"gap"`         // columns between tiles
	Boost      float64 `yaml:"boost"`
	Shrink     float64 `yaml:"shrink"`
	MinWeight  float64 `yaml:"min_weight"`
	RowSize    int     `yaml:"row_size"` // entries per row for scanned directories
}

// ScanConfig controls which files a directory scan turns into entries.
type ScanConfig struct {
	Include []string `yaml:"include"` // doublestar globs, relative to the scanned dir
	Exclude []string `yaml:"exclude"`
	Sort    string   `yaml:"sort"`
	Order   string   `yaml:"order"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Keys: KeysConfig{
			Close: []string{"esc"},
			Next:  []string{"right", "l"},
			Prev:  []string{"left", "h"},
			Copy:  []string{"y"},
			Open:  []string{"enter"},
			Help:  []string{"?"},
			Quit:  []string{"q", "ctrl+c"},
		},
		Layout: LayoutConfig{
			TileHeight: 5,
			HoverLift:  1,
			Gap:        2,
			Boost:      gallery.DefaultBoost,
			Shrink:     gallery.DefaultShrink,
			MinWeight:  gallery.DefaultMinWeight,
			RowSize:    3,
		},
		Scan: ScanConfig{
			Include: []string{"**/*.{png,jpg,jpeg,gif,webp,bmp,tif,tiff,avif,heic}"},
			Sort:    SortName,
			Order:   OrderAsc,
		},
		Watch: true,
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Theme == "" {
		c.Theme = defaults.Theme
	}

	fillKeys(&c.Keys.Close, defaults.Keys.Close)
	fillKeys(&c.Keys.Next, defaults.Keys.Next)
	fillKeys(&c.Keys.Prev, defaults.Keys.Prev)
	fillKeys(&c.Keys.Copy, defaults.Keys.Copy)
	fillKeys(&c.Keys.Open, defaults.Keys.Open)
	fillKeys(&c.Keys.Help, defaults.Keys.Help)
	fillKeys(&c.Keys.Quit, defaults.Keys.Quit)

	if c.Layout.TileHeight == 0 {
		c.Layout.TileHeight = defaults.Layout.TileHeight
	}
	if c.Layout.Gap == 0 {
		c.Layout.Gap = defaults.Layout.Gap
	}
	if c.Layout.RowSize == 0 {
		c.Layout.RowSize = defaults.Layout.RowSize
	}
	if c.Layout.Boost == 0 && c.Layout.Shrink == 0 && c.Layout.MinWeight == 0 {
		c.Layout.Boost = defaults.Layout.Boost
		c.Layout.Shrink = defaults.Layout.Shrink
		c.Layout.MinWeight = defaults.Layout.MinWeight
	}

	if len(c.Scan.Include) == 0 {
		c.Scan.Include = defaults.Scan.Include
	}
	if c.Scan.Sort == "" {
		c.Scan.Sort = defaults.Scan.Sort
	}
	if c.Scan.Order == "" {
		c.Scan.Order = defaults.Scan.Order
	}
}

func fillKeys(dst *[]string, def []string) {
	if len(*dst) == 0 {
		*dst = def
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.Layout.TileHeight < 3 {
		return fmt.Errorf("layout.tile_height must be at least 3")
	}
	if c.Layout.HoverLift < 0 {
		return fmt.Errorf("layout.hover_lift cannot be negative")
	}
	if c.Layout.Gap < 0 {
		return fmt.Errorf("layout.gap cannot be negative")
	}
	if c.Layout.RowSize < 1 {
		return fmt.Errorf("layout.row_size must be at least 1")
	}
	if c.Layout.MinWeight <= 0 {
		return fmt.Errorf("layout.min_weight must be positive")
	}

	if !isValidSort(c.Scan.Sort) {
		return fmt.Errorf("scan.sort %q must be one of name, mtime, size", c.Scan.Sort)
	}
	if c.Scan.Order != OrderAsc && c.Scan.Order != OrderDesc {
		return fmt.Errorf("scan.order %q must be asc or desc", c.Scan.Order)
	}

	return nil
}

// Policy returns the default hover weighting policy.
func (c *Config) Policy() gallery.Policy {
	return gallery.Policy{
		Boost:     c.Layout.Boost,
		Shrink:    c.Layout.Shrink,
		MinWeight: c.Layout.MinWeight,
	}
}

// ViewerKeymap returns the viewer key bindings.
func (c *Config) ViewerKeymap() viewer.Keymap {
	return viewer.Keymap{
		Close: c.Keys.Close,
		Next:  c.Keys.Next,
		Prev:  c.Keys.Prev,
	}
}

func isValidSort(s string) bool {
	switch s {
	case SortName, SortMtime, SortSize:
		return true
	default:
		return false
	}
}
