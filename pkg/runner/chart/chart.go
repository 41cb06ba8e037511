// Package chart renders the mood count bar chart for a scope.
package chart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodq/pkg/cache"
	"tableflip.dev/moodq/pkg/printers"
	"tableflip.dev/moodq/pkg/query"
	"tableflip.dev/moodq/pkg/refresh"
	"tableflip.dev/moodq/pkg/scope"
	"tableflip.dev/moodq/pkg/store"
)

type Chart struct {
	Scope scope.Scope

	Persistence store.Persistence
	Cache       *cache.Cache
	Zone        *time.Location

	JSON bool

	// Scheduler, when set, re-renders on its cadence until ctx is done.
	Scheduler refresh.Scheduler
}

func (n *Chart) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not chart, no persistence")
	}

	if err := n.render(ctx); err != nil {
		return err
	}

	if n.Scheduler != nil {
		n.Scheduler.Start(ctx, func() {
			if err := n.render(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "chart: refresh: %v\n", err)
			}
		})
	}
	return nil
}

func (n *Chart) render(ctx context.Context) error {
	load, err := n.load(ctx)
	if err != nil {
		return err
	}
	filtered := query.FilterByScope(load.Records, n.Scope)
	summary := query.Aggregate(filtered)

	if n.JSON {
		return printJSON(summary)
	}

	pp := printers.PrettyPrint{Zone: n.zone()}
	pp.NewLine()
	if n.Scope.Degenerate() {
		pp.Warning("start date is after end date, nothing to show")
	}
	pp.TitleWithCount(n.Scope.String(), len(filtered))
	pp.Chart(summary)
	pp.Skipped(load.Skipped)
	return nil
}

func (n *Chart) load(ctx context.Context) (store.Load, error) {
	if n.Cache != nil {
		return n.Cache.Get(ctx)
	}
	return n.Persistence.LoadAll(ctx)
}

func (n *Chart) zone() *time.Location {
	if n.Zone == nil {
		return time.Local
	}
	return n.Zone
}

type jsonCount struct {
	Mood  string `json:"mood"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func printJSON(s query.Summary) error {
	out := make([]jsonCount, 0, len(s))
	for _, c := range s {
		out = append(out, jsonCount{
			Mood:  c.Mood.String(),
			Label: c.Mood.Label(),
			Count: c.N,
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
