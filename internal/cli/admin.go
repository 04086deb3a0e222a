package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Change stored overrides through the admin API",
	}
	cmd.AddCommand(newConfigSetCmd(rt), newConfigRmCmd(rt), newConfigDumpCmd(rt))
	return cmd
}

func newConfigSetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set WHO NAME VALUE",
		Short: "Set an override for a section",
		Long: `Set an override for a section. WHO is "global", a daemon type such as
"mon", or an instance such as "osd.3". The value is validated against the
option schema and stored in canonical form.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := rt.client.SetOption(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if rt.output == outputJSON {
				return renderOverrides(cmd.OutOrStdout(), rt.output, []override.Override{*o})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s/%s = %s\n", o.Section, o.Name, o.Value)
			return err
		},
	}
}

func newConfigRmCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "rm WHO NAME",
		Short: "Remove an override from a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.client.RemoveOption(cmd.Context(), args[0], args[1])
		},
	}
}

func newConfigDumpCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Show every stored override",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := rt.client.Dump(cmd.Context())
			if err != nil {
				return err
			}
			return renderOverrides(cmd.OutOrStdout(), rt.output, list)
		},
	}
}
