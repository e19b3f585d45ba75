//go:build integration

package verto

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const integrationVertofile = `verto_version '0.11.0'

config {
  version.prefix = 'v'
}

context(branch('main')) {
  before_command_tag_up {
    command_options.add(filter: 'release_only')
  }

  before_tag_creation {
    update_changelog(with: :merged_pull_requests_with_bracketed_labels,
                     confirmation: false,
                     filename: 'CHANGELOG.md')
    git!('add CHANGELOG.md')
    git!('commit -m "Updates CHANGELOG"')
  }

  after_command_tag_up {
    puts "Released #{new_version}"
  }
}
`

func newIntegrationVerto(t *testing.T, dir string) (Verto, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv(VertofilePathEnv, "")

	cfg, err := config.NewManager()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("project.path", dir))

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	v, err := NewVerto(NewVertoParams{
		Dependencies: dependencies.New().WithConfig(cfg).WithOutput(stdout, stderr),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v, stdout, stderr
}

func TestTagInit_Integration(t *testing.T) {
	dir := git.SetupTestRepo(t)
	v, _, _ := newIntegrationVerto(t, dir)
	ctx := context.Background()

	require.NoError(t, v.TagInit(ctx))
	assert.Equal(t, "0.1.0", strings.TrimSpace(git.RunGit(t, dir, "tag")))

	assert.ErrorIs(t, v.TagInit(ctx), ErrAlreadyTagged)
}

func TestTagUp_Integration(t *testing.T) {
	dir := git.SetupTestRepo(t)
	git.CommitFile(t, dir, "CHANGELOG.md", "", "Add CHANGELOG")
	git.RunGit(t, dir, "tag", "v0.1.0")
	git.RunGit(t, dir, "tag", "v0.1.1-rc.1")
	git.MergePullRequest(t, dir, 1, "feature-a", "[FEATURE] Add a")
	git.MergePullRequest(t, dir, 2, "chore-b", "Bump dependencies")
	require.NoError(t, os.WriteFile(filepath.Join(dir, VertofileName), []byte(integrationVertofile), 0o644))

	v, stdout, _ := newIntegrationVerto(t, dir)
	ctx := context.Background()

	require.NoError(t, v.LoadVertofile(ctx))
	require.NoError(t, v.TagUp(ctx, TagUpOpts{Minor: true}))

	assert.Equal(t, "Updates CHANGELOG", strings.TrimSpace(git.RunGit(t, dir, "log", "-1", "--format=%s", "v0.2.0")))

	data, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "## 0.2.0 - "))
	assert.Contains(t, string(data), " * [FEATURE] Add a\n")
	assert.NotContains(t, string(data), "Bump dependencies")

	assert.Contains(t, stdout.String(), "Released 0.2.0\n")
}

func TestTagUp_Integration_NoTags(t *testing.T) {
	dir := git.SetupTestRepo(t)
	v, _, _ := newIntegrationVerto(t, dir)

	err := v.TagUp(context.Background(), TagUpOpts{Patch: true})
	assert.EqualError(t, err,
		"Project doesn't have a previous tag version, create a new tag with git.\neg: `git tag 0.1.0`\n")
}
