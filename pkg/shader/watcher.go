package shader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a fixed set of shader files. Parent directories
// are watched so editors that save by rename are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	logger   *slog.Logger
}

func NewWatcher(logger *slog.Logger, paths ...string) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]struct{}, len(paths)),
		debounce: defaultDebounce,
		logger:   logger,
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("shader watcher: %w", err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("shader watcher: watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// SetDebounce changes how long Run waits for writes to settle.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Run blocks until ctx is done, calling onChange with the last changed path once
// a burst of writes has settled. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	pending := ""
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher error", "err", err)
		case <-fire:
			fire = nil
			w.logger.Debug("shader source changed", "path", pending)
			onChange(pending)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
