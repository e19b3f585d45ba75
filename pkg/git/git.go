package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/lerenn/verto/pkg/executor"
	"mvdan.cc/sh/v3/syntax"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// DefaultRemote is the remote used by pull and push operations.
const DefaultRemote = "origin"

// Git interface provides the git operations used for tagging and changelogs.
type Git interface {
	// GetCurrentBranch executes `git rev-parse --abbrev-ref HEAD`.
	GetCurrentBranch(ctx context.Context) (string, error)

	// ListTags executes `git tag` and returns one name per entry.
	ListTags(ctx context.Context) ([]string, error)

	// CreateTag creates a lightweight tag on HEAD.
	CreateTag(ctx context.Context, name string) error

	// DecoratedLog executes `git log --oneline --decorate`.
	DecoratedLog(ctx context.Context) ([]string, error)

	// CommitBodies returns the body lines of the given commits.
	CommitBodies(ctx context.Context, hashes []string) ([]string, error)

	// CommitSubjects returns non-merge commit subjects reachable from HEAD but
	// not from since. An empty since covers the whole history.
	CommitSubjects(ctx context.Context, since string) ([]string, error)

	// Pull executes `git pull <remote> <branch>`.
	Pull(ctx context.Context, remote, branch string) error

	// Push executes `git push <remote> <branch>`.
	Push(ctx context.Context, remote, branch string) error

	// PushTags executes `git push --tags`.
	PushTags(ctx context.Context) error

	// Fetch executes `git fetch`.
	Fetch(ctx context.Context) error
}

type realGit struct {
	exec executor.Executor
}

// NewGit creates a new Git instance running commands through exec.
// Queries never echo their output; mutations echo as exec is configured.
func NewGit(exec executor.Executor) Git {
	return &realGit{exec: exec}
}

// command renders a git invocation with every argument shell-quoted.
func command(args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, "git")
	for _, arg := range args {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = arg
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}

// query runs a silent git command and returns its stdout.
func (g *realGit) query(ctx context.Context, args ...string) (string, error) {
	return g.run(ctx, g.exec.WithOutput(nil, nil), args...)
}

// mutate runs a git command echoing output as configured.
func (g *realGit) mutate(ctx context.Context, args ...string) error {
	_, err := g.run(ctx, g.exec, args...)
	return err
}

func (g *realGit) run(ctx context.Context, exec executor.Executor, args ...string) (string, error) {
	cmd := command(args...)

	result, err := exec.Run(ctx, cmd)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd, err)
	}
	if !result.Success() {
		return "", &CommandError{
			Command:    cmd,
			ExitStatus: result.ExitStatus,
			Stderr:     strings.TrimSpace(result.Error),
		}
	}

	return result.Output, nil
}

// splitLines splits output into trimmed, non-empty lines.
func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
