package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/commands/options"
	"tableflip.dev/moodq/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive mood dashboard",
		Example: `
moodq ui
moodq ui --interval 30s
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, c, zone, err := open()
			if err != nil {
				return err
			}
			return tui.Run(p, c, zone, wo.Interval)
		},
	}

	cmd.Flags().DurationVar(&wo.Interval, "interval", 0,
		"Auto-refresh interval (default 9s).")

	topLevel.AddCommand(cmd)
}
