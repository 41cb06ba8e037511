// Package log appends one mood record and echoes the day's chart.
package log

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodq/pkg/cache"
	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/printers"
	"tableflip.dev/moodq/pkg/query"
	"tableflip.dev/moodq/pkg/record"
	"tableflip.dev/moodq/pkg/scope"
	"tableflip.dev/moodq/pkg/store"
)

// ErrNoMoodSelected blocks a submit without a mood. Recoverable; the caller
// surfaces it as a warning.
var ErrNoMoodSelected = errors.New("pick a mood first")

type Log struct {
	Mood *mood.Mood
	Note string

	Persistence store.Persistence
	Cache       *cache.Cache
	Zone        *time.Location
}

func (n *Log) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not log, no persistence")
	}
	if n.Mood == nil {
		return ErrNoMoodSelected
	}

	if err := n.Persistence.Append(ctx, *n.Mood, record.TrimNote(n.Note)); err != nil {
		return err
	}
	// The writer must see their own record on the next read.
	if n.Cache != nil {
		n.Cache.Invalidate()
	}

	load, err := n.load(ctx)
	if err != nil {
		return err
	}
	today := scope.ForDay(time.Now().In(n.zone()), n.zone())
	filtered := query.FilterByScope(load.Records, today)

	pp := printers.PrettyPrint{Zone: n.zone()}
	pp.NewLine()
	pp.TitleWithCount(today.String(), len(filtered))
	pp.Chart(query.Aggregate(filtered))
	pp.Skipped(load.Skipped)

	return nil
}

func (n *Log) load(ctx context.Context) (store.Load, error) {
	if n.Cache != nil {
		return n.Cache.Get(ctx)
	}
	return n.Persistence.LoadAll(ctx)
}

func (n *Log) zone() *time.Location {
	if n.Zone == nil {
		return time.Local
	}
	return n.Zone
}
