//go:build integration

package git

import (
	"context"
	"testing"

	"github.com/lerenn/verto/pkg/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGit_Integration(t *testing.T) {
	dir := SetupTestRepo(t)
	g := NewGit(executor.NewExecutor(dir, nil))
	ctx := context.Background()

	branch, err := g.GetCurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	require.NoError(t, g.CreateTag(ctx, "0.1.0"))
	assert.Error(t, g.CreateTag(ctx, "0.1.0"))

	tags, err := g.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.1.0"}, tags)

	CommitFile(t, dir, "a.txt", "a\n", "[FEAT] Add a")
	MergePullRequest(t, dir, 1, "fix-b", "[FIX] A simple fix")

	subjects, err := g.CommitSubjects(ctx, "0.1.0")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Work on fix-b", "[FEAT] Add a"}, subjects)

	log, err := g.DecoratedLog(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, log)
	assert.Contains(t, log[0], "Merge pull request #1")

	hash := log[0][:7]
	bodies, err := g.CommitBodies(ctx, []string{hash})
	require.NoError(t, err)
	assert.Equal(t, []string{"[FIX] A simple fix"}, bodies)
}

func TestGit_Integration_NotARepository(t *testing.T) {
	g := NewGit(executor.NewExecutor(t.TempDir(), nil))

	_, err := g.GetCurrentBranch(context.Background())
	assert.ErrorIs(t, err, ErrCommandFailed)
}
