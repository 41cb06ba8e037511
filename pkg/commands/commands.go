package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/cache"
	"tableflip.dev/moodq/pkg/commands/options"
	"tableflip.dev/moodq/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodq",
		Short: "Track the mood of the support queue from the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addChart(topLevel)
	addGet(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// open wires config, persistence, and the read cache for one invocation.
func open() (store.Persistence, *cache.Cache, *time.Location, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	c := cache.New(p.LoadAll, cache.DefaultTTL)
	return p, c, cfg.Timezone(), nil
}
