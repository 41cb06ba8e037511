// Package mood defines the fixed set of ticket moods and their display order.
package mood

import (
	"fmt"
	"strings"
)

// Info describes one mood: the emoji written to the sheet, the human label
// shown in legends, and the aliases accepted on the command line.
type Info struct {
	Symbol  string
	Label   string
	Aliases []string
}

// Mood indexes the canonical mood table.
type Mood int

const (
	Delighted Mood = iota
	Satisfied
	Neutral
	Frustrated
	Angry
)

// Defaults returns the canonical mood table. Order here is display order.
func Defaults() []Info {
	return []Info{{
		Symbol:  "😄",
		Label:   "Delighted",
		Aliases: []string{"delighted", "great", "happy"},
	}, {
		Symbol:  "🙂",
		Label:   "Satisfied",
		Aliases: []string{"satisfied", "good", "fine"},
	}, {
		Symbol:  "😐",
		Label:   "Neutral",
		Aliases: []string{"neutral", "meh", "ok"},
	}, {
		Symbol:  "😕",
		Label:   "Frustrated",
		Aliases: []string{"frustrated", "confused"},
	}, {
		Symbol:  "😠",
		Label:   "Angry",
		Aliases: []string{"angry", "mad"},
	}}
}

// All returns every mood in canonical order.
func All() []Mood {
	return []Mood{Delighted, Satisfied, Neutral, Frustrated, Angry}
}

func (m Mood) valid() bool {
	return m >= Delighted && m <= Angry
}

func (m Mood) Info() Info {
	if !m.valid() {
		return Info{}
	}
	return Defaults()[m]
}

// String returns the emoji symbol, the form stored on the sheet.
func (m Mood) String() string {
	return m.Info().Symbol
}

func (m Mood) Label() string {
	return m.Info().Label
}

// ForAlias resolves an emoji, label, or alias into a Mood.
func ForAlias(alias string) (Mood, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, m := range All() {
		info := m.Info()
		if needle == info.Symbol || needle == strings.ToLower(info.Label) {
			return m, nil
		}
		for _, a := range info.Aliases {
			if needle == a {
				return m, nil
			}
		}
	}
	return Neutral, fmt.Errorf("unknown mood %q", alias)
}

// ForSymbol resolves the exact emoji symbol as read back from the sheet.
func ForSymbol(symbol string) (Mood, bool) {
	for _, m := range All() {
		if m.Info().Symbol == symbol {
			return m, true
		}
	}
	return Neutral, false
}
