package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/commands/options"
	"tableflip.dev/moodq/pkg/mood"
	"tableflip.dev/moodq/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}

	long := strings.Builder{}
	long.WriteString("Log the mood of one ticket.\n\n")
	long.WriteString("Mood and aliases:\n")

	validArgs := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		info := m.Info()
		long.WriteString(info.Symbol + ": " + strings.Join(info.Aliases, ", ") + "\n")
		validArgs = append(validArgs, info.Aliases[0])
	}

	var picked *mood.Mood

	cmd := &cobra.Command{
		Use:   "log [mood]",
		Short: "log a ticket's mood",
		Long:  long.String(),
		Example: `
moodq log angry --note "slow ticket tool"
moodq log 🙂
moodq log delighted
`,
		ValidArgs: validArgs,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				// Leave picked nil; the runner surfaces the warning.
				return nil
			}
			if len(args) > 1 {
				return errors.New("one mood per ticket")
			}
			m, err := mood.ForAlias(args[0])
			if err != nil {
				return err
			}
			picked = &m
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, c, zone, err := open()
			if err != nil {
				return err
			}
			s := log.Log{
				Mood:        picked,
				Note:        mo.Note,
				Persistence: p,
				Cache:       c,
				Zone:        zone,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
