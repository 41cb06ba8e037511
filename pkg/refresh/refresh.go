// Package refresh provides the optional periodic re-render capability as an
// injected Scheduler: a real ticker when auto-refresh is wanted, a no-op
// otherwise.
package refresh

import (
	"context"
	"time"
)

// DefaultInterval matches the dashboard's auto-refresh cadence.
const DefaultInterval = 9 * time.Second

// Scheduler runs fn on some cadence until ctx is done. Implementations
// never overlap invocations; fn runs on the caller's goroutine.
type Scheduler interface {
	Start(ctx context.Context, fn func())
}

// Ticker re-runs fn every Interval.
type Ticker struct {
	Interval time.Duration
}

func (t Ticker) Start(ctx context.Context, fn func()) {
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			fn()
		}
	}
}

// Nop never fires; used when periodic refresh is unavailable or unwanted.
type Nop struct{}

func (Nop) Start(ctx context.Context, fn func()) {}
