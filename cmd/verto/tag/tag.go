// Package tag provides the tag commands for the verto CLI.
package tag

import (
	"github.com/spf13/cobra"
)

// CreateTagCmd creates the tag command with all its subcommands.
func CreateTagCmd() *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag management commands",
		Long:  `Commands for creating semantic version tags.`,
	}

	tagCmd.AddCommand(createUpCmd(), createInitCmd())

	return tagCmd
}
