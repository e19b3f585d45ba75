package tag

import (
	"strings"

	"github.com/lerenn/verto/cmd/verto/internal/cli"
	"github.com/lerenn/verto/pkg/verto"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names of tag up, underscore spellings are accepted too.
const (
	flagMajor         = "major"
	flagMinor         = "minor"
	flagPatch         = "patch"
	flagPreRelease    = "pre-release"
	flagRelease       = "release"
	flagFilter        = "filter"
	flagVersionPrefix = "version-prefix"
)

func createUpCmd() *cobra.Command {
	upCmd := &cobra.Command{
		Use:   "up [--major|--minor|--patch] [--pre-release[=<identifier>]] [--release]",
		Short: "Create a new tag for the next version",
		Long: `Create a new tag from the latest version tag of the repository.

The Vertofile hooks run around the tag creation and may add options.

Examples:
  verto tag up --patch
  verto tag up --minor --pre-release=rc
  verto tag up --pre-release
  verto tag up --release
  verto tag up --patch --filter=release_only
  verto tag up --patch --version-prefix=v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cli.NewLoadedVerto(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = v.Close() }()

			return cli.Report(v.ErrorOutput(), v.TagUp(cmd.Context(), upOpts(cmd.Flags())))
		},
	}

	flags := upCmd.Flags()
	flags.SetNormalizeFunc(underscoreToDash)
	flags.Bool(flagMajor, false, "Increase the major version")
	flags.Bool(flagMinor, false, "Increase the minor version")
	flags.Bool(flagPatch, false, "Increase the patch version")
	flags.String(flagPreRelease, "",
		"Add or increase a pre-release identifier, keeps the current one when no value is given")
	flags.Lookup(flagPreRelease).NoOptDefVal = verto.KeepPreReleaseName
	flags.Bool(flagRelease, false, "Remove the pre-release identifier")
	flags.String(flagFilter, "", "Filter the latest tag: release_only, pre_release_only, all or a regex")
	flags.String(flagVersionPrefix, "", "Prefix of the new tag, eg: v")

	return upCmd
}

// upOpts reads the tag up flags. Flags left unset stay nil so that the
// Vertofile and the configuration provide them.
func upOpts(flags *pflag.FlagSet) verto.TagUpOpts {
	boolFlag := func(name string) bool {
		value, _ := flags.GetBool(name)
		return value
	}
	optionalFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}

	opts := verto.TagUpOpts{
		Major:         boolFlag(flagMajor),
		Minor:         boolFlag(flagMinor),
		Patch:         boolFlag(flagPatch),
		Release:       boolFlag(flagRelease),
		PreRelease:    optionalFlag(flagPreRelease),
		VersionPrefix: optionalFlag(flagVersionPrefix),
	}
	opts.Filter, _ = flags.GetString(flagFilter)
	return opts
}

func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
