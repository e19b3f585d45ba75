//go:build unit

package dsl

import (
	"bytes"
	"context"
	"testing"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/fs"
	gitmocks "github.com/lerenn/verto/pkg/git/mocks"
	promptmocks "github.com/lerenn/verto/pkg/prompt/mocks"
	"github.com/lerenn/verto/pkg/runtime"
	"github.com/lerenn/verto/pkg/semver"
	tagmocks "github.com/lerenn/verto/pkg/tag/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	state  *runtime.State
	interp Interpreter
	git    *gitmocks.MockGit
	tags   *tagmocks.MockRepository
	prompt *promptmocks.MockPrompter
	afs    afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg, err := config.NewManager()
	require.NoError(t, err)

	f := &fixture{
		git:    gitmocks.NewMockGit(ctrl),
		tags:   tagmocks.NewMockRepository(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		afs:    afero.NewMemMapFs(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	deps := dependencies.New().
		WithFS(fs.NewFSFrom(f.afs)).
		WithGit(f.git).
		WithTags(f.tags).
		WithConfig(cfg).
		WithPrompt(f.prompt).
		WithOutput(f.stdout, f.stderr)

	f.state, err = runtime.New(deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.state.Close() })

	f.interp = NewInterpreter(f.state, semver.MustParse("0.12.0"))
	return f
}

func (f *fixture) eval(t *testing.T, source string) (Value, error) {
	t.Helper()
	return f.interp.Evaluate(context.Background(), source, nil)
}

func (f *fixture) mustEval(t *testing.T, source string) Value {
	t.Helper()
	value, err := f.eval(t, source)
	require.NoError(t, err)
	return value
}

func (f *fixture) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.afs, path, []byte(content), 0o644))
}
