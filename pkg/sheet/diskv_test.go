package sheet

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestAppendWritesHeaderFirst(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	if err := s.Append(ctx, []string{"2024-01-15T12:00:00Z", "😠", "slow"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	rows, err := s.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], Header) {
		t.Fatalf("expected header row first, got %v", rows[0])
	}
	if rows[1][1] != "😠" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestRowsKeepAppendOrder(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()

	notes := []string{"first", "second", "third"}
	for _, note := range notes {
		if err := s.Append(ctx, []string{"2024-01-15T12:00:00Z", "🙂", note}); err != nil {
			t.Fatalf("append %s: %v", note, err)
		}
	}
	rows, err := s.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != len(notes)+1 {
		t.Fatalf("expected %d rows, got %d", len(notes)+1, len(rows))
	}
	for i, note := range notes {
		if rows[i+1][2] != note {
			t.Fatalf("position %d: expected %q, got %q", i+1, note, rows[i+1][2])
		}
	}
}

func TestRowsEmptyStore(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rows, err := s.Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows before first append, got %d", len(rows))
	}
}

func TestRowsKeepPositionForCorruptRow(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Append(ctx, []string{"2024-01-15T12:00:00Z", "🙂", "fine"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Corrupt the next row file directly, as a stray edit would.
	bad := filepath.Join(dir, "rows", "00000002")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt row: %v", err)
	}

	rows, err := s.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows including the corrupt one, got %d", len(rows))
	}
	if rows[2] != nil {
		t.Fatalf("expected nil placeholder for corrupt row, got %v", rows[2])
	}
	if rows[1][2] != "fine" {
		t.Fatalf("good row misplaced: %v", rows[1])
	}
}

func TestSequencePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Append(ctx, []string{"2024-01-15T12:00:00Z", "😄", ""}); err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := reopened.Append(ctx, []string{"2024-01-15T13:00:00Z", "😐", ""}); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	rows, err := reopened.Rows(ctx)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	if rows[1][1] != "😄" || rows[2][1] != "😐" {
		t.Fatalf("rows out of order: %v", rows)
	}
}

func TestWatchSeesAppends(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	events, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// The very first append on a fresh store creates the row directory;
	// the watcher must already cover it.
	if err := s.Append(ctx, []string{"2024-01-15T12:00:00Z", "😕", ""}); err != nil {
		t.Fatalf("append: %v", err)
	}
	waitEvent(t, events, "first append")

	if err := s.Append(ctx, []string{"2024-01-15T13:00:00Z", "🙂", ""}); err != nil {
		t.Fatalf("second append: %v", err)
	}
	waitEvent(t, events, "second append")
}

func waitEvent(t *testing.T, events <-chan Event, when string) {
	t.Helper()
	select {
	case _, ok := <-events:
		if !ok {
			t.Fatalf("%s: watch channel closed early", when)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("%s: expected a change event", when)
	}
}
