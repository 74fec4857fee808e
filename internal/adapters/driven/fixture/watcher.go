package fixture

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/relay/internal/logger"
)

// DefaultMinInterval is the shortest gap between two reported changes.
const DefaultMinInterval = 250 * time.Millisecond

// Watcher reports when a fixture file is written or replaced.
// It watches the parent directory because editors commonly save by
// renaming a temporary file over the original.
//
// A single save often produces several events. Reports are throttled to
// one per minimum interval and events that arrive while waiting are folded
// into the pending report.
type Watcher struct {
	path    string
	limiter *rate.Limiter

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the fixture at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving fixture path: %w", err)
	}
	return &Watcher{
		path:    abs,
		limiter: rate.NewLimiter(rate.Every(DefaultMinInterval), 1),
	}, nil
}

// SetMinInterval changes the throttle interval. Zero disables throttling.
// Call it before Watch.
func (w *Watcher) SetMinInterval(d time.Duration) {
	if d <= 0 {
		w.limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	w.limiter = rate.NewLimiter(rate.Every(d), 1)
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel that receives the file path
// each time it changes. The channel is closed when ctx is cancelled or the
// watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}

	w.mu.Lock()
	w.watcher = fsw
	w.mu.Unlock()

	changes := make(chan string)
	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if !w.relevant(event) {
					continue
				}
				logger.Debug("fixture changed: %s (%s)", event.Name, event.Op)
				if err := w.limiter.Wait(ctx); err != nil {
					return
				}
				w.drain(fsw)
				select {
				case changes <- w.path:
				case <-ctx.Done():
					return
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("fixture watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// drain discards events already queued so they share the pending report.
func (w *Watcher) drain(fsw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				logger.Debug("fixture changed: %s (%s), coalesced", event.Name, event.Op)
			}
		default:
			return
		}
	}
}

// relevant reports whether event means the fixture has new content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
