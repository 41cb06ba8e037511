package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/commands/options"
	"tableflip.dev/moodq/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	so := &options.ScopeOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "list the raw mood records for a day, range, or all time",
		Example: `
moodq get
moodq get --on 2024-1-15
moodq get --all --json
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
			s := get.Get{
				Scope:       sc,
				Persistence: p,
				Cache:       c,
				Zone:        zone,
				JSON:        oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddScopeArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
