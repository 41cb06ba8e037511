// Package scope selects the time window a query runs over: a single day, a
// closed date range, or everything.
package scope

import (
	"fmt"
	"time"
)

type Kind int

const (
	All Kind = iota
	Day
	Range
)

// Scope is a time-window selector. Day boundaries are computed in the
// reference zone at construction; Contains then compares instants only.
type Scope struct {
	Kind Kind

	// start inclusive, end exclusive. Zero for All.
	start time.Time
	end   time.Time
}

// AllTime matches every record.
func AllTime() Scope {
	return Scope{Kind: All}
}

// ForDay covers [midnight(d), midnight(d)+1day) in loc. The calendar date
// of d in its own location is used, so parsed dates keep the day they name;
// callers selecting "today" should pass time.Now().In(loc).
func ForDay(d time.Time, loc *time.Location) Scope {
	start := midnight(d, loc)
	return Scope{
		Kind:  Day,
		start: start,
		end:   start.AddDate(0, 0, 1),
	}
}

// ForRange covers [midnight(s), midnight(e)+1day) in loc, end date
// inclusive. A start after the end is a defined degenerate case that
// contains nothing.
func ForRange(s, e time.Time, loc *time.Location) Scope {
	return Scope{
		Kind:  Range,
		start: midnight(s, loc),
		end:   midnight(e, loc).AddDate(0, 0, 1),
	}
}

func midnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Degenerate reports a range whose start date is after its end date.
func (s Scope) Degenerate() bool {
	return s.Kind == Range && !s.start.Before(s.end)
}

// Contains reports whether the instant falls inside the window.
func (s Scope) Contains(t time.Time) bool {
	if s.Kind == All {
		return true
	}
	return !t.Before(s.start) && t.Before(s.end)
}

// Bounds exposes the computed window for display. ok is false for All.
func (s Scope) Bounds() (start, end time.Time, ok bool) {
	if s.Kind == All {
		return time.Time{}, time.Time{}, false
	}
	return s.start, s.end, true
}

func (s Scope) String() string {
	switch s.Kind {
	case All:
		return "all time"
	case Day:
		return s.start.Format(layoutUS)
	default:
		return fmt.Sprintf("%s through %s",
			s.start.Format(layoutUS),
			s.end.AddDate(0, 0, -1).Format(layoutUS))
	}
}

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutUS       = "January 2, 2006"
)

// ParseDate accepts "2006-1-2" or the short "1/2" form; the short form
// assumes the year of now.
func ParseDate(v string, now time.Time) (time.Time, error) {
	t, err := time.Parse(layoutISO, v)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(layoutISOShort, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse date %q", v)
	}
	return t.AddDate(now.Year(), 0, 0), nil
}
