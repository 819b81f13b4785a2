package library

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent signals that the set of exported files changed.
type ChangeEvent struct {
	Time time.Time
}

// Watcher monitors the export directory for .mq5 file changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
}

// NewWatcher creates a watcher on dir, creating the directory first if it
// does not exist yet so the watch can be established.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating library directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch directory %s: %w", dir, err)
	}

	return &Watcher{
		watcher:  fsw,
		dir:      dir,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Watch starts watching and returns a channel of change events.
// Cancelling the context stops watching; the channel is closed when the
// context is cancelled or the watcher hits a fatal error. Rapid bursts of
// filesystem events are coalesced into a single change per debounce window.
func (w *Watcher) Watch(ctx context.Context) <-chan ChangeEvent {
	out := make(chan ChangeEvent, 16)

	go func() {
		defer close(out)

		var debounceTimer *time.Timer
		var timerC <-chan time.Time
		pending := false

		resetDebounce := func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			timerC = debounceTimer.C
			pending = true
		}

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(strings.ToLower(ev.Name), ".mq5") {
					continue
				}
				resetDebounce()

			case <-timerC:
				if !pending {
					continue
				}
				pending = false
				select {
				case out <- ChangeEvent{Time: time.Now()}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
