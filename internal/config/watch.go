package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jask/toolstrip/internal/toolbar"
)

// watchDebounce collapses the burst of events editors produce on save.
var watchDebounce = 150 * time.Millisecond

// WatchToolbar reloads the toolbar file whenever it changes and hands the
// result to fn. The directory is watched rather than the file so that
// editors which replace the file on save keep being seen. fn runs on the
// watcher goroutine. Watching stops when ctx is done.
func WatchToolbar(ctx context.Context, path string, fn func([]toolbar.Spec, error)) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	slog.Debug("[config] watching toolbar", "path", path)

	go func() {
		defer w.Close()
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					timer.Reset(watchDebounce)
				}
				fire = timer.C
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("[config] toolbar watcher error", "path", path, "error", err)
			case <-fire:
				fire = nil
				specs, err := LoadToolbar(path)
				if err != nil {
					slog.Warn("[config] toolbar reload failed", "path", path, "error", err)
				}
				fn(specs, err)
			}
		}
	}()
	return nil
}
