package query

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/record"
	"tableflip.dev/moodq/pkg/scope"
)

func mustZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func at(t *testing.T, v string) time.Time {
	t.Helper()
	ts, err := record.ParseTime(v)
	if err != nil {
		t.Fatalf("parse %q: %v", v, err)
	}
	return ts
}

func TestFilterByScopeAllIsIdentity(t *testing.T) {
	records := []*record.Record{
		record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Angry, "slow"),
		record.NewAt(at(t, "2023-06-01T00:00:00Z"), mood.Delighted, ""),
		record.NewAt(at(t, "2025-12-31T23:59:59Z"), mood.Neutral, ""),
	}
	got := FilterByScope(records, scope.AllTime())
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("expected identity, got %v", got)
	}
}

func TestFilterByScopeDoesNotMutateInput(t *testing.T) {
	records := []*record.Record{
		record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Angry, "slow"),
		record.NewAt(at(t, "2024-01-16T12:00:00Z"), mood.Satisfied, ""),
	}
	snapshot := append([]*record.Record(nil), records...)
	day := scope.ForDay(at(t, "2024-01-15T00:00:00Z"), mustZone(t))
	_ = FilterByScope(records, day)
	if !reflect.DeepEqual(records, snapshot) {
		t.Fatalf("input was mutated")
	}
}

func TestFilterByScopeDay(t *testing.T) {
	loc := mustZone(t)
	inside := record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Angry, "slow")
	// 03:00 UTC on Jan 16 is Jan 15 evening in New York.
	lateLocal := record.NewAt(at(t, "2024-01-16T03:00:00Z"), mood.Neutral, "")
	nextDay := record.NewAt(at(t, "2024-01-16T12:00:00Z"), mood.Satisfied, "")

	day := scope.ForDay(at(t, "2024-01-15T00:00:00Z"), loc)
	got := FilterByScope([]*record.Record{nextDay, inside, lateLocal}, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	other := scope.ForDay(at(t, "2024-01-16T00:00:00Z"), loc)
	got = FilterByScope([]*record.Record{inside}, other)
	if len(got) != 0 {
		t.Fatalf("expected record excluded on the next day, got %d", len(got))
	}
}

func TestFilterByScopeRangeBoundaries(t *testing.T) {
	loc := mustZone(t)
	last := record.NewAt(time.Date(2024, time.January, 12, 23, 59, 59, 0, loc), mood.Neutral, "")
	after := record.NewAt(time.Date(2024, time.January, 13, 0, 0, 1, 0, loc), mood.Neutral, "")

	rng := scope.ForRange(
		at(t, "2024-01-10T00:00:00Z"),
		at(t, "2024-01-12T00:00:00Z"),
		loc,
	)
	got := FilterByScope([]*record.Record{last, after}, rng)
	if len(got) != 1 || got[0] != last {
		t.Fatalf("expected only the end-of-range record, got %d", len(got))
	}
}

func TestFilterByScopeDegenerateRange(t *testing.T) {
	loc := mustZone(t)
	records := []*record.Record{
		record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Angry, ""),
	}
	rng := scope.ForRange(
		at(t, "2024-01-20T00:00:00Z"),
		at(t, "2024-01-10T00:00:00Z"),
		loc,
	)
	if got := FilterByScope(records, rng); len(got) != 0 {
		t.Fatalf("expected empty result for inverted range, got %d", len(got))
	}
}

func TestFilterByScopeEmptyInput(t *testing.T) {
	if got := FilterByScope(nil, scope.AllTime()); len(got) != 0 {
		t.Fatalf("expected empty output for empty input")
	}
}

func TestAggregateCoversEveryMood(t *testing.T) {
	s := Aggregate(nil)
	if len(s) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(s))
	}
	for i, m := range mood.All() {
		if s[i].Mood != m {
			t.Fatalf("position %d: expected %v, got %v", i, m, s[i].Mood)
		}
		if s[i].N != 0 {
			t.Fatalf("expected zero count for %v, got %d", m, s[i].N)
		}
	}
}

func TestAggregateCounts(t *testing.T) {
	records := []*record.Record{
		record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Angry, ""),
		record.NewAt(at(t, "2024-01-15T13:00:00Z"), mood.Angry, ""),
		record.NewAt(at(t, "2024-01-15T14:00:00Z"), mood.Delighted, ""),
	}
	s := Aggregate(records)
	if s.Total() != len(records) {
		t.Fatalf("expected total %d, got %d", len(records), s.Total())
	}
	if s[mood.Angry].N != 2 {
		t.Fatalf("expected 2 angry, got %d", s[mood.Angry].N)
	}
	if s[mood.Delighted].N != 1 {
		t.Fatalf("expected 1 delighted, got %d", s[mood.Delighted].N)
	}
	if s.Max() != 2 {
		t.Fatalf("expected max 2, got %d", s.Max())
	}
}

func TestAggregateSkipsUnrecognizedMood(t *testing.T) {
	records := []*record.Record{
		record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Mood(42), "bogus"),
		record.NewAt(at(t, "2024-01-15T13:00:00Z"), mood.Neutral, ""),
	}
	s := Aggregate(records)
	if len(s) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(s))
	}
	if s.Total() != 1 {
		t.Fatalf("expected unrecognized mood excluded, total %d", s.Total())
	}
}

func TestAggregateIdempotent(t *testing.T) {
	records := []*record.Record{
		record.NewAt(at(t, "2024-01-15T12:00:00Z"), mood.Frustrated, ""),
		record.NewAt(at(t, "2024-01-16T12:00:00Z"), mood.Frustrated, ""),
	}
	first := Aggregate(records)
	second := Aggregate(records)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical summaries, got %v and %v", first, second)
	}
}
