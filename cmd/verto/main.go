// Package main provides the command-line interface for verto.
package main

import (
	"os"

	"github.com/lerenn/verto/cmd/verto/internal/cli"
	"github.com/lerenn/verto/cmd/verto/tag"
	"github.com/lerenn/verto/pkg/verto"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "verto",
		Short: "Verto - semantic version tags for git repositories",
		Long: `Verto creates semantic version tags in git repositories.

A Vertofile in the project path configures verto and runs hooks around the
tag creation, eg: to update a CHANGELOG or push the new tag.`,
		Version:       verto.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(
		tag.CreateTagCmd(),
		createInitCmd(),
		createConfigCmd(),
		createVersionCmd(),
	)

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.HandleError(rootCmd.ErrOrStderr(), err))
	}
}
