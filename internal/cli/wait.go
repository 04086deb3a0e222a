package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/clusterconf/internal/app/poll"
	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
)

func newWaitCmd(rt *runtime) *cobra.Command {
	var (
		section  string
		value    string
		unset    bool
		exact    bool
		attempts int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait NAME",
		Short: "Wait until an override is visible to queries",
		Long: `Poll the option until the given section reports the expected value, or
until the section no longer has an override when --unset is given. With
--exact the option's whole override list must be that single entry.

Exits 0 on convergence, 2 when the option does not exist and 3 when the
attempts run out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !unset && !cmd.Flags().Changed("value") {
				return errors.New("one of --value or --unset is required")
			}

			policy := rt.policy
			if cmd.Flags().Changed("attempts") {
				policy.MaxAttempts = attempts
			}
			if cmd.Flags().Changed("interval") {
				policy.Interval = interval
			}

			var match func(*option.Option) bool
			switch {
			case unset:
				match = poll.Unset(section)
			case exact:
				match = poll.HasExactly([]option.Value{{Section: section, Value: value}})
			default:
				match = poll.HasValue(section, value)
			}

			name := args[0]
			res, err := poll.Until(cmd.Context(), policy,
				func(ctx context.Context) (*option.Option, error) {
					return rt.client.GetOption(ctx, name)
				},
				match,
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s converged on %s after %d attempt(s)\n",
				name, section, res.Attempts)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&section, "section", "global", "section whose value to wait for")
	f.StringVar(&value, "value", "", "expected value")
	f.BoolVar(&unset, "unset", false, "wait for the override to disappear")
	f.BoolVar(&exact, "exact", false, "require the value to be the option's only override")
	f.IntVar(&attempts, "attempts", poll.DefaultMaxAttempts, "maximum number of polls")
	f.DurationVar(&interval, "interval", poll.DefaultInterval, "delay between polls")
	cmd.MarkFlagsMutuallyExclusive("value", "unset")
	cmd.MarkFlagsMutuallyExclusive("exact", "unset")

	return cmd
}
