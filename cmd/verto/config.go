package main

import (
	"github.com/lerenn/verto/cmd/verto/internal/cli"
	"github.com/spf13/cobra"
)

func createConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration as YAML, once the Vertofile and the VERTO_* environment
variables have been applied.

Examples:
  verto config
  VERTO_VERSION_PREFIX=v verto config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cli.NewLoadedVerto(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = v.Close() }()

			data, err := v.ConfigYAML()
			if err != nil {
				return cli.Report(v.ErrorOutput(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
