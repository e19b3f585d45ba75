package verto

import (
	"context"
	"fmt"

	"github.com/lerenn/verto/pkg/hooks"
)

// InitialVersion is the version of the first tag.
const InitialVersion = "0.1.0"

// TagInit creates the first tag of a repository.
func (v *realVerto) TagInit(ctx context.Context) error {
	if err := v.installHooks(CommandTagInit); err != nil {
		return err
	}

	tagged, err := v.state.Tags.Any(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}
	if tagged {
		return newAlreadyTaggedError()
	}

	cfg, err := v.state.Config.Config()
	if err != nil {
		return err
	}
	return v.createTag(ctx, cfg.Version.Prefix+InitialVersion)
}

// installHooks adds the built-in git hooks and selects the running command.
func (v *realVerto) installHooks(command string) error {
	gitCfg, err := v.state.GitConfig()
	if err != nil {
		return err
	}
	if err := hooks.InstallBuiltIns(v.state.Hooks, gitCfg, v.state.Git); err != nil {
		return fmt.Errorf("failed to install built-in hooks: %w", err)
	}

	v.state.Hooks.SetCommand(command)
	return nil
}

func (v *realVerto) createTag(ctx context.Context, name string) error {
	v.Errorln("Creating Tag %s...", name)
	if err := v.state.Tags.Create(ctx, name); err != nil {
		return err
	}
	v.Errorln("Tag %s Created!", name)
	return nil
}
