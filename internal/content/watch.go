package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the content file at path whenever it is written or replaced
// and passes each successfully loaded Site to onReload. A file that fails to
// load is logged and skipped so the last good content stays live. Watch
// blocks until ctx is done.
func Watch(ctx context.Context, path string, onReload func(*Site)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Editors often save by renaming over the file, so watch the directory.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			site, err := Load(target)
			if err != nil {
				slog.Warn("content reload failed", "path", target, "err", err)
				continue
			}
			slog.Info("content reloaded", "path", target)
			onReload(site)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("content watcher error", "err", err)
		}
	}
}
