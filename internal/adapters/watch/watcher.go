// Package watch triggers reconciliation when watched files change on disk.
// It is a backstop for state edited outside the running overlay (another
// client writing the flags file, a host export landing); the reconciliation
// pipeline itself is idempotent, so spurious triggers are harmless.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher debounces filesystem events per path and invokes a single refresh
// callback once a burst settles.
type Watcher struct {
	mu       sync.Mutex
	paths    []string
	debounce time.Duration
	refresh  func(ctx context.Context)
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	pending map[string]*time.Timer
	stopCh  chan struct{}
	running bool
}

func NewWatcher(paths []string, debounce time.Duration, refresh func(ctx context.Context), logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		paths:    paths,
		debounce: debounce,
		refresh:  refresh,
		logger:   logger,
		pending:  map[string]*time.Timer{},
	}
}

// Start begins watching. Watched files are typically replaced by rename, so
// the parent directories are watched and events filtered by name.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}

	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	for _, path := range w.paths {
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			w.logger.Warn("watch path", "path", path, "error", err)
		}
	}

	go w.loop(ctx)

	w.logger.Debug("file watcher started", "paths", w.paths)
	return nil
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	_ = w.watcher.Close()

	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.schedule(ctx, event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	for _, path := range w.paths {
		if filepath.Clean(event.Name) == filepath.Clean(path) {
			return true
		}
	}
	return false
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}

	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		running := w.running
		w.mu.Unlock()

		if !running {
			return
		}
		w.logger.Debug("watched file settled", "path", path)
		w.refresh(ctx)
	})
}
