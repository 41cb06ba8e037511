// Package record defines the logged mood event and its wire form.
package record

import (
	"strings"
	"time"

	"tableflip.dev/moodq/pkg/mood"
)

// MaxNoteLen caps the free-text note, measured in runes.
const MaxNoteLen = 120

// Record is one logged ticket-mood event. Records are immutable once
// created; there is no update or delete path.
type Record struct {
	Created Timestamp `json:"timestamp"`
	Mood    mood.Mood `json:"mood"`
	Note    string    `json:"note,omitempty"`
}

// New stamps a record with the current UTC instant.
func New(m mood.Mood, note string) *Record {
	return NewAt(time.Now(), m, note)
}

// NewAt builds a record for a known instant. The note is trimmed and
// truncated to MaxNoteLen.
func NewAt(t time.Time, m mood.Mood, note string) *Record {
	return &Record{
		Created: Timestamp{Time: t.UTC()},
		Mood:    m,
		Note:    TrimNote(note),
	}
}

// TrimNote normalizes a note to its stored form.
func TrimNote(note string) string {
	note = strings.TrimSpace(note)
	if r := []rune(note); len(r) > MaxNoteLen {
		return string(r[:MaxNoteLen])
	}
	return note
}

// Row returns the three sheet fields: timestamp, mood symbol, note.
func (r *Record) Row() (string, string, string) {
	return r.Created.String(), r.Mood.String(), r.Note
}

// RowSlice is Row in the shape the sheet append takes.
func (r *Record) RowSlice() []string {
	ts, m, note := r.Row()
	return []string{ts, m, note}
}
