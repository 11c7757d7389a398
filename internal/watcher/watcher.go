package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is used when fsnotify is unavailable.
const DefaultPollInterval = 2 * time.Second

// ErrFileRemoved is reported when the watched file disappears.
var ErrFileRemoved = errors.New("watched file was removed")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithPollInterval sets the polling interval for fallback mode.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) { w.pollInterval = d }
}

// WithForcePoll skips fsnotify and always polls.
func WithForcePoll(force bool) Option {
	return func(w *Watcher) { w.forcePoll = force }
}

// WithOnError sets the callback for non-fatal watch errors.
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// Watcher calls onChange whenever the watched file is written, created or
// replaced. Bursts of events are debounced.
type Watcher struct {
	path         string
	onChange     func()
	onError      func(error)
	debounce     time.Duration
	pollInterval time.Duration
	forcePoll    bool
}

// New creates a watcher for path.
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	w := &Watcher{
		path:         abs,
		onChange:     onChange,
		onError:      func(err error) { slog.Warn("dataset watch error", "component", "watcher", "error", err) },
		debounce:     250 * time.Millisecond,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute watched path.
func (w *Watcher) Path() string { return w.path }

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	deb := NewDebouncer(w.debounce)
	defer deb.Cancel()

	if !w.forcePoll {
		fsw, err := fsnotify.NewWatcher()
		if err == nil {
			// The parent directory survives editors that replace the file.
			if err := fsw.Add(filepath.Dir(w.path)); err == nil {
				defer fsw.Close()
				slog.Debug("watching dataset", "component", "watcher", "path", w.path)
				return w.runNotify(ctx, fsw, deb)
			}
			fsw.Close()
		}
		slog.Debug("fsnotify unavailable, polling", "component", "watcher", "path", w.path)
	}
	return w.runPoll(ctx, deb)
}

func (w *Watcher) runNotify(ctx context.Context, fsw *fsnotify.Watcher, deb *Debouncer) error {
	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			switch {
			case ev.Has(fsnotify.Remove):
				w.onError(ErrFileRemoved)
			case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create), ev.Has(fsnotify.Rename):
				deb.Trigger(w.onChange)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) runPoll(ctx context.Context, deb *Debouncer) error {
	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(w.path); err == nil {
		lastMod, lastSize = info.ModTime(), info.Size()
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				if os.IsNotExist(err) {
					if !lastMod.IsZero() {
						w.onError(ErrFileRemoved)
						lastMod, lastSize = time.Time{}, 0
					}
				} else {
					w.onError(err)
				}
				continue
			}
			if info.ModTime().After(lastMod) || info.Size() != lastSize {
				lastMod, lastSize = info.ModTime(), info.Size()
				deb.Trigger(w.onChange)
			}
		}
	}
}
