package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureGlobal points the global logger at a buffer for the test.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestComponent(t *testing.T) {
	buf := captureGlobal(t)

	logger := Component("viewer")
	logger.Info().Msg("opened")

	entry := decode(t, buf)
	assert.Equal(t, "viewer", entry["cmp"])
	assert.Equal(t, "opened", entry["message"])
}

func TestComponentCtx(t *testing.T) {
	buf := captureGlobal(t)
	ctx := WithSection(WithSource(context.Background(), "/srv/gallery.yaml"), "hero")

	logger := ComponentCtx(ctx, "watcher")
	logger.Info().Msg("changed")

	entry := decode(t, buf)
	assert.Equal(t, "watcher", entry["cmp"])
	assert.Equal(t, "/srv/gallery.yaml", entry["source"])
	assert.Equal(t, "hero", entry["section"])
}

func TestComponentCtx_EmptyContext(t *testing.T) {
	buf := captureGlobal(t)

	logger := ComponentCtx(context.Background(), "tui")
	logger.Info().Msg("start")

	entry := decode(t, buf)
	assert.NotContains(t, entry, "source")
	assert.NotContains(t, entry, "section")
}
