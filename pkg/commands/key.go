package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "display the mood legend",
		Example: `
moodq key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := key.Key{}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
