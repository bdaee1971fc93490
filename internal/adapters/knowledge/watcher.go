package knowledge

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/chartwell/andy/internal/pkg/logger"
)

// Watcher hot-reloads a knowledge config file. It watches the file's
// directory (editors often replace files instead of writing in place, so
// watching the path itself would miss renames) and invokes the callback
// with each successfully parsed config.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	log     *logger.Logger
}

// NewWatcher creates a watcher for the given config path.
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher: w, path: filepath.Clean(path), log: log}, nil
}

// Watch starts monitoring until ctx is cancelled. A reload that fails to
// parse is logged and skipped; the previous tables stay active.
func (w *Watcher) Watch(ctx context.Context, onReload func(*Config)) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(w.path)
				if err != nil {
					w.log.Warn("knowledge config reload failed", "path", w.path, "error", err)
					continue
				}
				w.log.Info("knowledge config reloaded", "path", w.path)
				onReload(cfg)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("knowledge config watcher error", "error", err)
			}
		}
	}()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
