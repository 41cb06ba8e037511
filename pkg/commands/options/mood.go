// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// MoodOptions captures the note attached to a logged mood.
type MoodOptions struct {
	Note string
}

// AddMoodArgs wires mood-related flags on the provided command.
func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Optional note (120 chars max).")
}
