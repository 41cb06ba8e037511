package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodq/pkg/scope"
)

// ScopeOptions selects the time window a query runs over: a single day, an
// inclusive date range, or all data.
type ScopeOptions struct {
	OnString   string
	FromString string
	ToString   string
	All        bool
}

// AddScopeArgs wires the scope flags on the provided command.
func AddScopeArgs(cmd *cobra.Command, o *ScopeOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Chart a single day, example: --on="2024-2-28" or --on="2/28".`)
	cmd.Flags().StringVar(&o.FromString, "from", "",
		"Start date of an inclusive range; requires --to.")
	cmd.Flags().StringVar(&o.ToString, "to", "",
		"End date of an inclusive range; requires --from.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Use all data.")
}

// GetScope resolves the flags into a scope in loc. Defaults to today.
func (o *ScopeOptions) GetScope(loc *time.Location) (scope.Scope, error) {
	now := time.Now()

	switch {
	case o.All:
		return scope.AllTime(), nil

	case o.FromString != "" || o.ToString != "":
		if o.FromString == "" || o.ToString == "" {
			return scope.Scope{}, errors.New("a range needs both --from and --to")
		}
		from, err := scope.ParseDate(o.FromString, now)
		if err != nil {
			return scope.Scope{}, err
		}
		to, err := scope.ParseDate(o.ToString, now)
		if err != nil {
			return scope.Scope{}, err
		}
		return scope.ForRange(from, to, loc), nil

	case o.OnString != "":
		on, err := scope.ParseDate(o.OnString, now)
		if err != nil {
			return scope.Scope{}, err
		}
		return scope.ForDay(on, loc), nil

	default:
		return scope.ForDay(now.In(loc), loc), nil
	}
}
