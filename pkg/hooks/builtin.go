package hooks

import (
	"context"
	"errors"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/git"
)

// Names of the built-in hooks.
const (
	GitPullCurrentBranchName        = "git_pull_current_branch"
	GitFetchName                    = "git_fetch"
	GitPushTagsName                 = "git_push_tags"
	GitPushCurrentBranchCommitsName = "git_push_current_branch_commits"
	GitPushCurrentBranchName        = "git_push_current_branch"
)

// GitPullCurrentBranch pulls the current branch from origin before the command.
func GitPullCurrentBranch(g git.Git) Hook {
	return Hook{
		Name:   GitPullCurrentBranchName,
		Moment: MomentBefore,
		Callback: func(ctx context.Context, _ Attributes) error {
			branch, err := g.GetCurrentBranch(ctx)
			if err != nil {
				return gitExitError(err)
			}
			return gitExitError(g.Pull(ctx, git.DefaultRemote, branch))
		},
	}
}

// GitFetch fetches the default remote before the command.
func GitFetch(g git.Git) Hook {
	return Hook{
		Name:   GitFetchName,
		Moment: MomentBefore,
		Callback: func(ctx context.Context, _ Attributes) error {
			return gitExitError(g.Fetch(ctx))
		},
	}
}

// GitPushTags pushes every tag after the command.
func GitPushTags(g git.Git) Hook {
	return Hook{
		Name:   GitPushTagsName,
		Moment: MomentAfter,
		Callback: func(ctx context.Context, _ Attributes) error {
			return gitExitError(g.PushTags(ctx))
		},
	}
}

// GitPushCurrentBranchCommits pushes the current branch to origin after the command.
func GitPushCurrentBranchCommits(g git.Git) Hook {
	return Hook{
		Name:   GitPushCurrentBranchCommitsName,
		Moment: MomentAfter,
		Callback: func(ctx context.Context, _ Attributes) error {
			branch, err := g.GetCurrentBranch(ctx)
			if err != nil {
				return gitExitError(err)
			}
			return gitExitError(g.Push(ctx, git.DefaultRemote, branch))
		},
	}
}

// GitPushCurrentBranch pushes the tags, then the current branch commits.
func GitPushCurrentBranch(g git.Git) Hook {
	tags, commits := GitPushTags(g), GitPushCurrentBranchCommits(g)
	return Hook{
		Name:   GitPushCurrentBranchName,
		Moment: MomentAfter,
		Callback: func(ctx context.Context, attrs Attributes) error {
			if err := tags.Callback(ctx, attrs); err != nil {
				return err
			}
			return commits.Callback(ctx, attrs)
		},
	}
}

// InstallBuiltIns registers the git hooks enabled in cfg. Pull and fetch run
// before any script hook, push runs after them. Installing twice on the same
// manager has no effect.
func InstallBuiltIns(m Manager, cfg config.GitConfig, g git.Git) error {
	if cfg.PullBeforeTagCreation && !m.Has(GitPullCurrentBranchName) {
		if err := m.Prepend(GitPullCurrentBranch(g)); err != nil {
			return err
		}
	}

	if cfg.FetchBeforeTagCreation && !m.Has(GitFetchName) {
		if err := m.Prepend(GitFetch(g)); err != nil {
			return err
		}
	}

	if cfg.PushAfterTagCreation && !m.Has(GitPushCurrentBranchName) {
		if err := m.Register(GitPushCurrentBranch(g)); err != nil {
			return err
		}
	}

	return nil
}

// gitExitError turns a failed git command into an ExitError carrying the command line.
func gitExitError(err error) error {
	if err == nil {
		return nil
	}

	var cmdErr *git.CommandError
	if errors.As(err, &cmdErr) {
		return base.NewExitError("%s", cmdErr.Command)
	}
	return base.WrapExit(err, err.Error())
}
