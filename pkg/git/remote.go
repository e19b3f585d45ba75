package git

import "context"

// Pull executes `git pull <remote> <branch>`.
func (g *realGit) Pull(ctx context.Context, remote, branch string) error {
	return g.mutate(ctx, "pull", remote, branch)
}

// Push executes `git push <remote> <branch>`.
func (g *realGit) Push(ctx context.Context, remote, branch string) error {
	return g.mutate(ctx, "push", remote, branch)
}

// PushTags executes `git push --tags`.
func (g *realGit) PushTags(ctx context.Context) error {
	return g.mutate(ctx, "push", "--tags")
}

// Fetch executes `git fetch`.
func (g *realGit) Fetch(ctx context.Context) error {
	return g.mutate(ctx, "fetch")
}
