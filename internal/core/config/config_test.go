package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/lightbox/internal/core/gallery"
	"github.com/colonyops/lightbox/internal/core/viewer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Theme, cfg.Theme)
	assert.Equal(t, def.Layout, cfg.Layout)
	assert.Equal(t, gallery.DefaultPolicy(), cfg.Policy())
	assert.True(t, cfg.Watch)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SortName, cfg.Scan.Sort)
}

func TestLoad_OverridesAndFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
keys:
  close: [esc, q]
layout:
  tile_height: 7
  boost: 1
  shrink: 0.2
  min_weight: 0.4
scan:
  sort: mtime
  order: desc
watch: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, []string{"esc", "q"}, cfg.Keys.Close)
	assert.Equal(t, []string{"right", "l"}, cfg.Keys.Next, "unset keys keep defaults")
	assert.Equal(t, 7, cfg.Layout.TileHeight)
	assert.Equal(t, 2, cfg.Layout.Gap)
	assert.Equal(t, gallery.Policy{Boost: 1, Shrink: 0.2, MinWeight: 0.4}, cfg.Policy())
	assert.Equal(t, SortMtime, cfg.Scan.Sort)
	assert.Equal(t, OrderDesc, cfg.Scan.Order)
	assert.False(t, cfg.Watch)
	assert.NotEmpty(t, cfg.Scan.Include)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, "unknown theme"},
		{"short tiles", func(c *Config) { c.Layout.TileHeight = 2 }, "tile_height"},
		{"negative lift", func(c *Config) { c.Layout.HoverLift = -1 }, "hover_lift"},
		{"negative gap", func(c *Config) { c.Layout.Gap = -1 }, "gap"},
		{"row size", func(c *Config) { c.Layout.RowSize = 0 }, "row_size"},
		{"min weight", func(c *Config) { c.Layout.MinWeight = 0 }, "min_weight"},
		{"sort", func(c *Config) { c.Scan.Sort = "color" }, "scan.sort"},
		{"order", func(c *Config) { c.Scan.Order = "random" }, "scan.order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestViewerKeymap(t *testing.T) {
	cfg := DefaultConfig()
	km := cfg.ViewerKeymap()

	assert.Equal(t, viewer.ActionClose, km.Action("esc"))
	assert.Equal(t, viewer.ActionNext, km.Action("l"))
	assert.Equal(t, viewer.ActionPrev, km.Action("left"))
	assert.Equal(t, viewer.ActionNone, km.Action("y"))
}
