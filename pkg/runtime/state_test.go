//go:build unit

package runtime

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/fs"
	gitmocks "github.com/lerenn/verto/pkg/git/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testState struct {
	*State
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	afs    afero.Fs
}

func newTestState(t *testing.T) testState {
	t.Helper()

	cfg, err := config.NewManager()
	require.NoError(t, err)

	afs := afero.NewMemMapFs()
	var stdout, stderr bytes.Buffer
	deps := dependencies.New().
		WithFS(fs.NewFSFrom(afs)).
		WithConfig(cfg).
		WithGit(gitmocks.NewMockGit(gomock.NewController(t))).
		WithOutput(&stdout, &stderr)

	state, err := New(deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = state.Close() })

	return testState{State: state, stdout: &stdout, stderr: &stderr, afs: afs}
}

func TestNew_Defaults(t *testing.T) {
	s := newTestState(t)

	assert.NotNil(t, s.Tags)
	assert.NotNil(t, s.Options)
	assert.Equal(t, "./", s.ProjectPath())
	assert.Equal(t, 0, s.Options.Len())
}

func TestNew_MissingConfig(t *testing.T) {
	_, err := New(dependencies.New())
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestState_StreamsDefault(t *testing.T) {
	s := newTestState(t)

	_, _ = fmt.Fprint(s.Stdout(), "out")
	_, _ = fmt.Fprint(s.Stderr(), "err")

	assert.Equal(t, "out", s.stdout.String())
	assert.Equal(t, "err", s.stderr.String())
}

func TestState_StreamsRedirected(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.afs.MkdirAll("/project", 0o755))
	require.NoError(t, s.Config.Set("project.path", "/project"))
	require.NoError(t, s.Config.Set("output.stdout_to", "verto.log"))

	_, _ = fmt.Fprintln(s.Stdout(), "first")
	// The destination is resolved once
	require.NoError(t, s.Config.Set("output.stdout_to", "other.log"))
	_, _ = fmt.Fprintln(s.Stdout(), "second")

	data, err := afero.ReadFile(s.afs, "/project/verto.log")
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
	assert.Empty(t, s.stdout.String())

	exists, err := afero.Exists(s.afs, "/project/other.log")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestState_StreamsOpenFailure(t *testing.T) {
	cfg, err := config.NewManager()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	deps := dependencies.New().
		WithFS(fs.NewFSFrom(afero.NewReadOnlyFs(afero.NewMemMapFs()))).
		WithConfig(cfg).
		WithGit(gitmocks.NewMockGit(gomock.NewController(t))).
		WithOutput(&stdout, &stderr)
	s, err := New(deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Config.Set("output.stdout_to", "verto.log"))

	n, err := fmt.Fprint(s.Stdout(), "first")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	_, err = fmt.Fprint(s.Stdout(), " second")
	require.NoError(t, err)

	assert.Equal(t, "first second", stdout.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "writing to the terminal instead"))
	assert.Contains(t, stderr.String(), ErrOpenOutput.Error())
}

func TestState_GitConfig(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Config.Set("git.push_after_tag_creation", true))

	cfg, err := s.GitConfig()
	require.NoError(t, err)
	assert.True(t, cfg.PushAfterTagCreation)
	assert.False(t, cfg.PullBeforeTagCreation)
}

func TestState_Executor(t *testing.T) {
	s := newTestState(t)
	dir := t.TempDir()

	exec := s.Executor()
	require.NoError(t, s.Config.Set("project.path", dir))
	assert.Equal(t, dir, exec.Dir())

	result, err := exec.Run(context.Background(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", result.Output)
	assert.Equal(t, "hello\n", s.stdout.String())
	assert.Contains(t, s.stderr.String(), "Running: echo hello (in "+dir+")")

	s.stdout.Reset()
	result, err = exec.WithOutput(nil, nil).Run(context.Background(), "echo quiet")
	require.NoError(t, err)
	assert.Equal(t, "quiet\n", result.Output)
	assert.Empty(t, s.stdout.String())
}
