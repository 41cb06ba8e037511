package scope

import (
	"testing"
	"time"
)

func mustZone(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestForDayBounds(t *testing.T) {
	loc := mustZone(t)
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	s := ForDay(day, loc)

	start, end, ok := s.Bounds()
	if !ok {
		t.Fatalf("expected bounds for a day scope")
	}
	if got := start.In(loc).Format("2006-01-02 15:04"); got != "2024-01-15 00:00" {
		t.Fatalf("unexpected start: %s", got)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("expected 24h window, got %v", end.Sub(start))
	}

	// Noon UTC on Jan 15 is 07:00 in New York, inside the day.
	if !s.Contains(time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected noon UTC to be contained")
	}
	// 03:00 UTC on Jan 15 is still Jan 14 locally.
	if s.Contains(time.Date(2024, time.January, 15, 3, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected early UTC morning to fall on the prior local day")
	}
}

func TestForRangeEndInclusive(t *testing.T) {
	loc := mustZone(t)
	s := ForRange(
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		loc,
	)
	last := time.Date(2024, time.January, 12, 23, 59, 59, 0, loc)
	if !s.Contains(last) {
		t.Fatalf("expected end date to be inclusive")
	}
	next := time.Date(2024, time.January, 13, 0, 0, 1, 0, loc)
	if s.Contains(next) {
		t.Fatalf("expected day after range to be excluded")
	}
}

func TestForRangeDegenerate(t *testing.T) {
	loc := mustZone(t)
	s := ForRange(
		time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		loc,
	)
	if !s.Degenerate() {
		t.Fatalf("expected degenerate range")
	}
	if s.Contains(time.Date(2024, time.March, 1, 12, 0, 0, 0, loc)) {
		t.Fatalf("degenerate range must contain nothing")
	}
}

func TestSingleDayRangeEqualsDay(t *testing.T) {
	loc := mustZone(t)
	d := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	day := ForDay(d, loc)
	rng := ForRange(d, d, loc)

	for _, probe := range []time.Time{
		time.Date(2024, time.February, 29, 0, 0, 0, 0, loc),
		time.Date(2024, time.February, 29, 23, 59, 59, 0, loc),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, loc),
		time.Date(2024, time.February, 28, 23, 59, 59, 0, loc),
	} {
		if day.Contains(probe) != rng.Contains(probe) {
			t.Fatalf("day and single-day range disagree at %v", probe)
		}
	}
}

func TestAllTimeContainsEverything(t *testing.T) {
	s := AllTime()
	if !s.Contains(time.Unix(0, 0)) || !s.Contains(time.Now().Add(100*time.Hour)) {
		t.Fatalf("all-time scope must contain every instant")
	}
	if _, _, ok := s.Bounds(); ok {
		t.Fatalf("all-time scope has no bounds")
	}
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	d, err := ParseDate("2024-1-15", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Month() != time.January || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}

	d, err = ParseDate("3/4", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 4 {
		t.Fatalf("unexpected short-form date: %v", d)
	}

	if _, err := ParseDate("not-a-date", now); err == nil {
		t.Fatalf("expected parse error")
	}
}
