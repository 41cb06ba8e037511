// Package sheet abstracts the shared three-column sheet the mood log lives
// in: rows of timestamp, mood symbol, and note, with a header as the first
// physical row.
package sheet

import (
	"context"
	"errors"
)

// Header is the first physical row of every sheet. Readers skip it.
var Header = []string{"timestamp", "mood", "note"}

// ErrUnavailable wraps failures reaching the backing store. Callers treat
// it as a non-fatal, per-interaction condition.
var ErrUnavailable = errors.New("sheet: store unavailable")

// Event signals that the sheet changed underneath a watcher.
type Event struct {
	Path string
}

// Sheet is the append-only row store. Rows returns every physical row in
// append order, header first; rows that cannot be decoded come back as nil
// so callers can count them without losing position. Append durably adds
// exactly one row.
type Sheet interface {
	Rows(ctx context.Context) ([][]string, error)
	Append(ctx context.Context, row []string) error
	Watch(ctx context.Context) (<-chan Event, error)
}
