// Package get lists the logged records inside a scope.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodq/pkg/cache"
	"tableflip.dev/moodq/pkg/printers"
	"tableflip.dev/moodq/pkg/query"
	"tableflip.dev/moodq/pkg/record"
	"tableflip.dev/moodq/pkg/scope"
	"tableflip.dev/moodq/pkg/store"
)

type Get struct {
	Scope scope.Scope

	Persistence store.Persistence
	Cache       *cache.Cache
	Zone        *time.Location

	JSON bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	load, err := n.load(ctx)
	if err != nil {
		return err
	}
	filtered := query.FilterByScope(load.Records, n.Scope)

	if n.JSON {
		return printJSON(filtered)
	}

	pp := printers.PrettyPrint{Zone: n.zone()}
	pp.NewLine()
	if n.Scope.Degenerate() {
		pp.Warning("start date is after end date, nothing to show")
	}
	pp.TitleWithCount(n.Scope.String(), len(filtered))
	pp.Records(filtered...)
	pp.Skipped(load.Skipped)
	return nil
}

func (n *Get) load(ctx context.Context) (store.Load, error) {
	if n.Cache != nil {
		return n.Cache.Get(ctx)
	}
	return n.Persistence.LoadAll(ctx)
}

func (n *Get) zone() *time.Location {
	if n.Zone == nil {
		return time.Local
	}
	return n.Zone
}

type jsonRecord struct {
	Timestamp string `json:"timestamp"`
	Mood      string `json:"mood"`
	Note      string `json:"note"`
}

func printJSON(records []*record.Record) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		ts, m, note := r.Row()
		out = append(out, jsonRecord{Timestamp: ts, Mood: m, Note: note})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
