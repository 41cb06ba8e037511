package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/commands/options"
	"tableflip.dev/moodq/pkg/runner/chart"
)

func addChart(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "chart mood counts for a day, range, or all time",
		Example: `
moodq chart
moodq chart --on 2024-1-15
moodq chart --from 2024-1-10 --to 2024-1-12
moodq chart --all --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, c, zone, err := open()
			if err != nil {
				return err
			}
			sc, err := so.GetScope(zone)
			if err != nil {
				return err
			}
			s := chart.Chart{
				Scope:       sc,
				Persistence: p,
				Cache:       c,
				Zone:        zone,
				JSON:        oo.JSON,
				Scheduler:   wo.Scheduler(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddScopeArgs(cmd, so)
	options.AddWatchArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
