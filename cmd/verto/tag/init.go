package tag

import (
	"github.com/lerenn/verto/cmd/verto/internal/cli"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the first version tag",
		Long: `Create the 0.1.0 tag, with the configured version prefix, in a repository without tags.

Examples:
  verto tag init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cli.NewLoadedVerto(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = v.Close() }()

			return cli.Report(v.ErrorOutput(), v.TagInit(cmd.Context()))
		},
	}
}
