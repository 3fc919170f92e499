package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/crossword-cli/internal/core/ports/driven"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ConfigWatcher = (*Watcher)(nil)

// Watcher reloads a ConfigStore when its file changes on disk.
//
// The parent directory is watched rather than the file itself because
// editors commonly save by writing a temporary file and renaming it.
type Watcher struct {
	store *ConfigStore
}

// NewWatcher creates a watcher for the given store.
func NewWatcher(store *ConfigStore) *Watcher {
	return &Watcher{store: store}
}

// Watch blocks until ctx is cancelled, reloading the store and calling
// onChange after every write to the config file.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	path := filepath.Clean(w.store.Path())
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isConfigChange(event, path) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("reloading %s: %v", path, err)
				continue
			}
			logger.Debug("config reloaded after %s", event.Op)
			onChange()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// isConfigChange reports whether event rewrote the config file.
func isConfigChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
