//go:build unit

package verto

import (
	"bytes"
	"testing"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/dsl"
	"github.com/lerenn/verto/pkg/fs"
	gitmocks "github.com/lerenn/verto/pkg/git/mocks"
	"github.com/lerenn/verto/pkg/runtime"
	tagmocks "github.com/lerenn/verto/pkg/tag/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	verto  *realVerto
	state  *runtime.State
	git    *gitmocks.MockGit
	tags   *tagmocks.MockRepository
	afs    afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newFixture(t *testing.T, interpreter dsl.Interpreter) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg, err := config.NewManager()
	require.NoError(t, err)

	f := &fixture{
		git:    gitmocks.NewMockGit(ctrl),
		tags:   tagmocks.NewMockRepository(ctrl),
		afs:    afero.NewMemMapFs(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	require.NoError(t, f.afs.MkdirAll("/project", 0o755))
	require.NoError(t, cfg.Set("project.path", "/project"))

	deps := dependencies.New().
		WithFS(fs.NewFSFrom(f.afs)).
		WithGit(f.git).
		WithTags(f.tags).
		WithConfig(cfg).
		WithOutput(f.stdout, f.stderr)

	v, err := NewVerto(NewVertoParams{Dependencies: deps, Interpreter: interpreter})
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })

	f.verto = v.(*realVerto)
	f.state = f.verto.state
	return f
}

func ptr(s string) *string {
	return &s
}
