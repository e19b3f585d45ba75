package main

import (
	"fmt"

	"github.com/lerenn/verto/pkg/verto"
	"github.com/spf13/cobra"
)

func createVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the verto version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), verto.Version)
			return err
		},
	}
}
