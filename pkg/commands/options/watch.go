package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/refresh"
)

// WatchOptions toggles periodic re-rendering.
type WatchOptions struct {
	Watch    bool
	Interval time.Duration
}

func AddWatchArgs(cmd *cobra.Command, o *WatchOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep re-rendering on an interval until interrupted.")
	cmd.Flags().DurationVar(&o.Interval, "interval", refresh.DefaultInterval,
		"Refresh interval used with --watch.")
}

// Scheduler returns the configured scheduler, or nil when watching is off.
func (o *WatchOptions) Scheduler() refresh.Scheduler {
	if !o.Watch {
		return nil
	}
	return refresh.Ticker{Interval: o.Interval}
}
