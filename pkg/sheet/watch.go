package sheet

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch streams a change event whenever row files are written, until ctx is
// cancelled. Bursts of filesystem activity are coalesced so consumers
// refresh once per burst. The channel closes once ctx is done or the
// watcher fails.
func (s *diskSheet) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure base path: %v", ErrUnavailable, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("sheet: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "sheet: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("sheet: watch %s: %w", s.basePath, err)
	}
	// Create the row directory up front so the first append is already
	// watched; waiting for its Create event loses writes that land before
	// the event is processed.
	rowDir := s.basePath + string(os.PathSeparator) + rowPrefix
	if err := os.MkdirAll(rowDir, 0o755); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("%w: ensure row dir: %v", ErrUnavailable, err)
	}
	if err := watcher.Add(rowDir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("sheet: watch %s: %w", rowDir, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is not ready; the next refresh
				// picks up the rows anyway and the watcher never stalls.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "sheet: watcher: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
					continue
				}
				throttle.Enqueue(Event{Path: evt.Name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so the UI redraws once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending []Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending = append(t.pending, ev)
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.timer = nil
	t.mu.Unlock()

	if len(pending) == 0 {
		return
	}
	// One event per burst is enough; consumers reload everything.
	send(pending[len(pending)-1])
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
