package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driving"
	"github.com/khangai-labs/khuvaari-cli/internal/logger"
)

// debounceDelay coalesces the burst of events an editor or exporter
// produces while rewriting a file.
const debounceDelay = 500 * time.Millisecond

// Watcher rebuilds the timetable snapshot when an export file changes
// on disk. The rebuild is wholesale: the full pipeline runs again and
// the snapshot is swapped atomically.
type Watcher struct {
	svc      driving.TimetableService
	paths    map[string]bool
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher watches the directories containing the given export
// files. Events for other files in those directories are ignored.
func NewWatcher(svc driving.TimetableService, paths []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		svc:      svc,
		paths:    make(map[string]bool, len(paths)),
		fsw:      fsw,
		debounce: debounceDelay,
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolving %s: %w", path, err)
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run blocks until the context is cancelled, reloading the snapshot
// on writes to the watched files. A failed reload keeps the previous
// snapshot and is logged, not fatal.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.paths[abs] {
				continue
			}
			logger.Debug("export changed: %s", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			if err := w.svc.Reload(ctx); err != nil {
				logger.Warn("reload failed, keeping previous snapshot: %v", err)
			} else {
				logger.Info("snapshot reloaded")
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
