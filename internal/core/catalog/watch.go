package catalog

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const debounceDelay = 150 * time.Millisecond

// Change reports that the gallery source was modified on disk.
type Change struct {
	Path string // last path that triggered the change
	At   time.Time
}

// Watcher watches a gallery source using fsnotify and coalesces bursts of
// filesystem events into single Change notifications.
type Watcher struct {
	src     Source
	exclude []string
	watcher *fsnotify.Watcher
	log     zerolog.Logger
	changes chan Change

	mu       sync.Mutex
	debounce *time.Timer
	last     string
	closed   bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher starts watching src. Directory sources are watched recursively,
// skipping hidden and excluded directories.
func NewWatcher(src Source, exclude []string, logger zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		src:     src,
		exclude: exclude,
		watcher: fw,
		log:     logger,
		changes: make(chan Change, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	if err := w.addDirs(src.Dir); err != nil {
		cancel()
		_ = fw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Changes returns the channel change notifications are delivered on. At most
// one notification is pending at a time.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops watching and closes the Changes channel. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.debounce != nil {
		w.debounce.Stop()
	}
	close(w.changes)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) addDirs(root string) error {
	if w.src.Kind == SourceManifest {
		return w.watcher.Add(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.src.Dir && w.skipDir(path, d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) skipDir(path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	rel, err := filepath.Rel(w.src.Dir, path)
	if err != nil {
		return false
	}
	return matchAny(w.exclude, filepath.ToSlash(rel))
}

// run processes filesystem events from fsnotify.
func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	if ignoredFile(filepath.Base(event.Name)) {
		return
	}

	// New directories inside a scanned tree need their own watch.
	if event.Has(fsnotify.Create) && w.src.Kind == SourceDirectory {
		if err := w.addDirs(event.Name); err != nil {
			w.log.Debug().Err(err).Str("path", event.Name).Msg("watch new directory")
		}
	}

	w.mu.Lock()
	w.last = event.Name
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.notify)
	w.mu.Unlock()
}

func (w *Watcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	select {
	case w.changes <- Change{Path: w.last, At: time.Now()}:
	default:
		// A change is already pending.
	}
}

// ignoredFile filters editor swap files, temp files and hidden files.
func ignoredFile(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".tmp") ||
		strings.HasSuffix(name, ".swp") ||
		strings.HasSuffix(name, ".lock")
}
