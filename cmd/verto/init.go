package main

import (
	"github.com/lerenn/verto/cmd/verto/internal/cli"
	"github.com/lerenn/verto/pkg/verto"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var path string

	initCmd := &cobra.Command{
		Use:   "init [--path <directory>]",
		Short: "Create a Vertofile",
		Long: `Create a Vertofile template in the project path, or in the given directory.

Examples:
  verto init
  verto init --path ./my-project`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cli.NewVerto(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = v.Close() }()

			return cli.Report(v.ErrorOutput(), v.Init(cmd.Context(), verto.InitOpts{Path: path}))
		},
	}

	// Add flags
	initCmd.Flags().StringVarP(&path, "path", "p", "", "Directory receiving the Vertofile")

	return initCmd
}
