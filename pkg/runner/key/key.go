// Package key prints the mood legend.
package key

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/printers"
)

// Key renders the mood legend describing symbols and aliases.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Moods")

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Label"), bold.Sprint("Aliases"))
	for _, m := range mood.All() {
		info := m.Info()
		tbl.AddRow(info.Symbol, info.Label, strings.Join(info.Aliases, ", "))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}
