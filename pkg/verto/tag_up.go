package verto

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/verto/pkg/changelog"
	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/runtime"
	"github.com/lerenn/verto/pkg/semver"
	"github.com/lerenn/verto/pkg/tagfilter"
)

// Option names of tag up.
const (
	OptionMajor         = "major"
	OptionMinor         = "minor"
	OptionPatch         = "patch"
	OptionPreRelease    = "pre_release"
	OptionRelease       = "release"
	OptionFilter        = "filter"
	OptionVersionPrefix = "version_prefix"
)

// KeepPreReleaseName is the bare --pre-release value: keep the name of the
// latest version, or use the configured default identifier.
const KeepPreReleaseName = "pre_release"

// TagUpOpts contains the command line options of TagUp. Nil pointers are
// options that were not given.
type TagUpOpts struct {
	Major         bool
	Minor         bool
	Patch         bool
	Release       bool
	PreRelease    *string
	Filter        string
	VersionPrefix *string
}

// Options returns the flags as command options.
func (o TagUpOpts) Options() *runtime.Options {
	opts := runtime.NewOptions(map[string]any{
		OptionMajor:   o.Major,
		OptionMinor:   o.Minor,
		OptionPatch:   o.Patch,
		OptionRelease: o.Release,
	})
	if o.PreRelease != nil {
		opts.Set(OptionPreRelease, *o.PreRelease)
	}
	if o.Filter != "" {
		opts.Set(OptionFilter, o.Filter)
	}
	if o.VersionPrefix != nil {
		opts.Set(OptionVersionPrefix, *o.VersionPrefix)
	}
	return opts
}

// TagUp creates the tag of the next version. Canceling the changelog stops
// the command without error.
func (v *realVerto) TagUp(ctx context.Context, opts TagUpOpts) error {
	err := v.tagUp(ctx, opts.Options())
	if errors.Is(err, changelog.ErrCanceled) {
		v.VerbosePrint("Tag up canceled")
		return nil
	}
	return err
}

func (v *realVerto) tagUp(ctx context.Context, flags *runtime.Options) error {
	if err := v.installHooks(CommandTagUp); err != nil {
		return err
	}

	attrs := hooks.Attributes{"command_options": v.state.Options}
	if err := v.state.Hooks.FireAll(ctx, []hooks.Moment{hooks.MomentBefore, hooks.MomentBeforeTagUp}, attrs); err != nil {
		return err
	}

	// Values set by the Vertofile win over the command line.
	options := flags.Merge(v.state.Options)
	if !hasVersionOption(options) {
		return newMissingVersionOptionError()
	}

	cfg, err := v.state.Config.Config()
	if err != nil {
		return err
	}
	prefix := versionPrefix(options, cfg)

	filter, err := tagfilter.Load(options.String(OptionFilter))
	if err != nil {
		return err
	}

	latestTag, found, err := v.state.Tags.Latest(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to find the latest tag: %w", err)
	}
	if !found {
		return newNoPreviousTagError(prefix)
	}

	latest, err := semver.Parse(latestTag)
	if err != nil {
		return err
	}
	v.VerbosePrint("Latest version: %s", latest)

	newVersion, err := computeNewVersion(latest, options, cfg.PreRelease)
	if err != nil {
		return err
	}
	if cfg.Version.Validations.NewVersionMustBeBigger && newVersion.LessOrEqual(latest) {
		return newVersionNotBiggerError(newVersion, latest)
	}

	if err := v.state.Hooks.Fire(ctx, hooks.MomentBeforeTagCreation, hooks.Attributes{"new_version": newVersion}); err != nil {
		return err
	}

	if err := v.createTag(ctx, prefix+newVersion.String()); err != nil {
		return err
	}

	if err := v.state.Hooks.Fire(ctx, hooks.MomentAfterTagUp, hooks.Attributes{"new_version": newVersion}); err != nil {
		return err
	}
	return v.state.Hooks.Fire(ctx, hooks.MomentAfter, nil)
}

func hasVersionOption(options *runtime.Options) bool {
	for _, key := range []string{OptionMajor, OptionMinor, OptionPatch, OptionRelease} {
		if options.Bool(key) {
			return true
		}
	}
	return hasPreRelease(options)
}

func hasPreRelease(options *runtime.Options) bool {
	value, ok := options.Get(OptionPreRelease)
	if !ok || value == nil {
		return false
	}
	b, isBool := value.(bool)
	return !isBool || b
}

func versionPrefix(options *runtime.Options, cfg config.Config) string {
	if value, ok := options.Get(OptionVersionPrefix); ok && value != nil {
		return options.String(OptionVersionPrefix)
	}
	return cfg.Version.Prefix
}

// computeNewVersion applies the requested increments to latest.
func computeNewVersion(latest semver.Version, options *runtime.Options, cfg config.PreReleaseConfig) (semver.Version, error) {
	versioner := semver.NewVersioner(cfg.InitialNumber)

	kind := semver.KindNone
	for _, k := range []semver.Kind{semver.KindMajor, semver.KindMinor, semver.KindPatch} {
		if options.Bool(k.String()) {
			kind = k
			break
		}
	}

	newVersion, err := versioner.Up(latest, kind)
	if err != nil {
		return semver.Version{}, err
	}

	if hasPreRelease(options) {
		identifier := options.String(OptionPreRelease)
		if identifier == KeepPreReleaseName {
			identifier = latest.PreRelease.Name
			if identifier == "" {
				identifier = cfg.DefaultIdentifier
			}
		}

		newVersion = versioner.WithPreRelease(newVersion, identifier)
		if newVersion.PreRelease.Name == latest.PreRelease.Name && newVersion.Equal(latest) {
			if newVersion, err = versioner.Up(newVersion, semver.KindPreRelease); err != nil {
				return semver.Version{}, err
			}
		}
	}

	if options.Bool(OptionRelease) {
		newVersion = newVersion.ReleaseVersion()
	}
	return newVersion, nil
}
