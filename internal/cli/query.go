package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List every configuration option",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := rt.client.ListOptions(cmd.Context())
			if err != nil {
				return err
			}
			return renderOptions(cmd.OutOrStdout(), rt.output, opts)
		},
	}
}

func newGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show one configuration option",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := rt.client.GetOption(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderOption(cmd.OutOrStdout(), rt.output, opt)
		},
	}
}

func newFilterCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "filter NAME...",
		Short: "Show the named options, skipping unknown names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rt.client.FilterOptions(cmd.Context(), args)
			if err != nil {
				return err
			}
			return renderOptions(cmd.OutOrStdout(), rt.output, opts)
		},
	}
}
