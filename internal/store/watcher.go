package store

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a FileStorage document and reloads it when another
// process rewrites it. The callback fires only when the revision changed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	storage  *FileStorage
	onChange func()
	logger   *slog.Logger
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for storage. onChange runs on the watcher's
// goroutine after the storage has been reloaded.
func NewWatcher(storage *FileStorage, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		storage:  storage,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	// Writes replace the file by rename, so watch the directory.
	dir := filepath.Dir(w.storage.Path())
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.running = true
	go w.watch()
	return nil
}

func (w *Watcher) watch() {
	filename := filepath.Base(w.storage.Path())

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("storage watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	before := w.storage.Revision()
	if err := w.storage.Reload(); err != nil {
		w.logger.Warn("failed to reload storage", "path", w.storage.Path(), "error", err)
		return
	}
	if w.storage.Revision() == before {
		return
	}

	w.logger.Debug("storage changed", "path", w.storage.Path(), "revision", w.storage.Revision())
	if w.onChange != nil {
		w.onChange()
	}
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
