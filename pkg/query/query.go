// Package query turns the raw record sequence into scope-filtered views and
// fixed-order mood counts.
package query

import (
	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/record"
	"tableflip.dev/moodq/pkg/scope"
)

// Count is one summary entry: a canonical mood and how many records hit it.
type Count struct {
	Mood mood.Mood `json:"mood"`
	N    int       `json:"count"`
}

// Summary holds one Count per canonical mood, in canonical order, zero
// filled. Derived, never stored.
type Summary []Count

func (s Summary) Total() int {
	total := 0
	for _, c := range s {
		total += c.N
	}
	return total
}

func (s Summary) Max() int {
	max := 0
	for _, c := range s {
		if c.N > max {
			max = c.N
		}
	}
	return max
}

// FilterByScope keeps records whose timestamp falls inside the scope. The
// input is never mutated and may arrive in any order.
func FilterByScope(records []*record.Record, sc scope.Scope) []*record.Record {
	kept := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if sc.Contains(r.Created.Time) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Aggregate counts records per mood. Every canonical mood appears exactly
// once; moods outside the canonical table are dropped rather than failing.
func Aggregate(records []*record.Record) Summary {
	byMood := make(map[mood.Mood]int, len(mood.All()))
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := mood.ForSymbol(r.Mood.String()); !ok {
			continue
		}
		byMood[r.Mood]++
	}

	s := make(Summary, 0, len(mood.All()))
	for _, m := range mood.All() {
		s = append(s, Count{Mood: m, N: byMood[m]})
	}
	return s
}
