package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, src Source) *Watcher {
	t.Helper()
	w, err := NewWatcher(src, nil, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func waitChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c, ok := <-w.Changes():
		require.True(t, ok, "changes channel closed")
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
		return Change{}
	}
}

func TestWatcher_ManifestChange(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, sampleManifest)

	src, err := Resolve(dir)
	require.NoError(t, err)
	w := newTestWatcher(t, src)

	require.NoError(t, os.WriteFile(path, []byte(sampleManifest+"\n"), 0o644))

	c := waitChange(t, w)
	assert.Equal(t, path, c.Path)
}

func TestWatcher_NestedDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "sub/a.png", 1, time.Time{})

	src, err := Resolve(dir)
	require.NoError(t, err)
	w := newTestWatcher(t, src)

	added := filepath.Join(dir, "sub", "b.png")
	require.NoError(t, os.WriteFile(added, []byte{1}, 0o644))

	c := waitChange(t, w)
	assert.Equal(t, added, c.Path)
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	src, err := Resolve(dir)
	require.NoError(t, err)
	w := newTestWatcher(t, src)

	for i := range 5 {
		touch(t, dir, "f"+string(rune('a'+i))+".png", 1, time.Time{})
	}

	waitChange(t, w)
	select {
	case <-w.Changes():
		t.Fatal("burst produced more than one change")
	case <-time.After(3 * debounceDelay):
	}
}

func TestWatcher_IgnoresSwapFiles(t *testing.T) {
	dir := t.TempDir()
	src, err := Resolve(dir)
	require.NoError(t, err)
	w := newTestWatcher(t, src)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gallery.yaml.swp"), []byte{1}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft.tmp"), []byte{1}, 0o644))

	select {
	case <-w.Changes():
		t.Fatal("ignored files produced a change")
	case <-time.After(3 * debounceDelay):
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	src, err := Resolve(t.TempDir())
	require.NoError(t, err)
	w, err := NewWatcher(src, nil, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	assert.False(t, ok)
}

func TestIgnoredFile(t *testing.T) {
	for _, name := range []string{".hidden", "a.png~", "x.tmp", "y.swp", "z.lock"} {
		assert.True(t, ignoredFile(name), name)
	}
	assert.False(t, ignoredFile("gallery.yaml"))
}
