// Package store adapts the raw sheet rows into typed mood records.
package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/record"
	"tableflip.dev/moodq/pkg/sheet"
)

// Load is the result of reading the whole sheet. Malformed rows are skipped
// and counted, never fatal; the count lets UIs surface how many were
// dropped.
type Load struct {
	Records []*record.Record
	Skipped int
}

// Persistence is the record store contract: read everything, append one.
type Persistence interface {
	LoadAll(ctx context.Context) (Load, error)
	Append(ctx context.Context, m mood.Mood, note string) error
	Watch(ctx context.Context) (<-chan sheet.Event, error)
}

// Open creates a Persistence over the disk sheet named by cfg. A nil cfg
// loads the default config.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	s, err := sheet.Open(cfg.SheetPath())
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// New wraps any sheet implementation.
func New(s sheet.Sheet) Persistence {
	return &persistence{sheet: s, now: time.Now}
}

type persistence struct {
	sheet sheet.Sheet
	now   func() time.Time
}

func (p *persistence) LoadAll(ctx context.Context) (Load, error) {
	rows, err := p.sheet.Rows(ctx)
	if err != nil {
		return Load{}, err
	}
	out := Load{Records: make([]*record.Record, 0, len(rows))}
	if len(rows) == 0 {
		return out, nil
	}
	// The first physical row is the header.
	for i, row := range rows[1:] {
		r, err := parseRow(row)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: row %d skipped: %v\n", i+2, err)
			out.Skipped++
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out, nil
}

func (p *persistence) Append(ctx context.Context, m mood.Mood, note string) error {
	r := record.NewAt(p.now(), m, note)
	return p.sheet.Append(ctx, r.RowSlice())
}

func (p *persistence) Watch(ctx context.Context) (<-chan sheet.Event, error) {
	return p.sheet.Watch(ctx)
}

func parseRow(row []string) (*record.Record, error) {
	// The note column may be absent entirely when it was never filled in.
	if len(row) < 2 {
		return nil, fmt.Errorf("expected at least timestamp and mood, got %d fields", len(row))
	}
	t, err := record.ParseTime(row[0])
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q: %v", row[0], err)
	}
	m, ok := mood.ForSymbol(row[1])
	if !ok {
		return nil, fmt.Errorf("unknown mood %q", row[1])
	}
	note := ""
	if len(row) > 2 {
		note = row[2]
	}
	return &record.Record{
		Created: record.Timestamp{Time: t},
		Mood:    m,
		Note:    note,
	}, nil
}
