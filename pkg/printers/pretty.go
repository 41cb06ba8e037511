// Package printers renders records and mood summaries for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodq/pkg/query"
	"tableflip.dev/moodq/pkg/record"
)

const (
	maxBarWidth  = 40
	barGlyph     = "█"
	layoutPretty = "2006-01-02 15:04"
)

type PrettyPrint struct {
	// Zone is the display timezone for record timestamps.
	Zone *time.Location
}

func (pp *PrettyPrint) zone() *time.Location {
	if pp.Zone == nil {
		return time.Local
	}
	return pp.Zone
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" mood")
	default:
		_, _ = c.Println(" moods")
	}
}

// Records prints one row per record: local time, mood, note.
func (pp *PrettyPrint) Records(records ...*record.Record) {
	if len(records) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range records {
		if r == nil {
			continue
		}
		when := r.Created.In(pp.zone()).Format(layoutPretty)
		tbl.AddRow(when, fmt.Sprintf("%s %s", r.Mood.String(), r.Mood.Label()), r.Note)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Chart prints a horizontal bar per canonical mood, scaled to the largest
// count.
func (pp *PrettyPrint) Chart(s query.Summary) {
	if s.Total() == 0 {
		pp.none()
		return
	}

	max := s.Max()
	bar := color.New(color.FgHiCyan)
	count := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range s {
		width := 0
		if max > 0 {
			width = c.N * maxBarWidth / max
		}
		if c.N > 0 && width == 0 {
			width = 1
		}
		tbl.AddRow(
			fmt.Sprintf("%s %-10s", c.Mood.String(), c.Mood.Label()),
			bar.Sprint(strings.Repeat(barGlyph, width)),
			count.Sprint(c.N),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Skipped warns about rows that could not be parsed during the read.
func (pp *PrettyPrint) Skipped(n int) {
	if n == 0 {
		return
	}
	w := color.New(color.FgYellow)
	switch n {
	case 1:
		_, _ = w.Fprintln(color.Output, "1 malformed row skipped")
	default:
		_, _ = w.Fprintf(color.Output, "%d malformed rows skipped\n", n)
	}
}

// Warning prints a soft, non-fatal notice.
func (pp *PrettyPrint) Warning(msg string) {
	w := color.New(color.FgYellow)
	_, _ = w.Fprintln(color.Output, msg)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
