//go:build unit

package changelog

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/fs"
	gitmocks "github.com/lerenn/verto/pkg/git/mocks"
	"github.com/lerenn/verto/pkg/prompt"
	promptmocks "github.com/lerenn/verto/pkg/prompt/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	changelog Changelog
	git       *gitmocks.MockGit
	prompt    *promptmocks.MockPrompter
	afs       afero.Fs
	stdout    *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg, err := config.NewManager()
	require.NoError(t, err)
	snapshot, err := cfg.Config()
	require.NoError(t, err)

	f := fixture{
		git:    gitmocks.NewMockGit(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		afs:    afero.NewMemMapFs(),
		stdout: &bytes.Buffer{},
	}
	f.changelog = NewChangelog(NewChangelogParams{
		FS:          fs.NewFSFrom(f.afs),
		Git:         f.git,
		Prompt:      f.prompt,
		Stdout:      f.stdout,
		ProjectPath: "/project",
		Format:      snapshot.Changelog.Format,
		Now:         func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) },
	})
	return f
}

func (f fixture) expectPullRequests(bodies ...string) {
	f.git.EXPECT().DecoratedLog(gomock.Any()).Return([]string{
		"abc1234 (HEAD -> main) Merge pull request #1 from user/fix",
		"def5678 (tag: 1.0.0) Initial",
	}, nil)
	f.git.EXPECT().CommitBodies(gomock.Any(), []string{"abc1234"}).Return(bodies, nil)
}

func (f fixture) writeChangelog(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.afs, "/project/CHANGELOG.md", []byte(content), 0o644))
}

func (f fixture) readChangelog(t *testing.T) string {
	t.Helper()
	data, err := afero.ReadFile(f.afs, "/project/CHANGELOG.md")
	require.NoError(t, err)
	return string(data)
}

func TestUpdate_WithoutConfirmation(t *testing.T) {
	f := newFixture(t)
	f.writeChangelog(t, "## 1.0.0 - 01/01/2024\n")
	f.expectPullRequests("[FIX] A simple fix", "Not labeled")

	err := f.changelog.Update(context.Background(), UpdateParams{NewVersion: "1.0.1"})
	require.NoError(t, err)

	assert.Equal(t, "## 1.0.1 - 05/03/2024\n * [FIX] A simple fix\n\n## 1.0.0 - 01/01/2024\n", f.readChangelog(t))
	assert.Equal(t, Separator+"\n", f.stdout.String())
}

func TestUpdate_MissingFile(t *testing.T) {
	f := newFixture(t)

	err := f.changelog.Update(context.Background(), UpdateParams{NewVersion: "1.0.1", Filename: "HISTORY.md"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.True(t, base.IsExit(err))
	assert.EqualError(t, err, "changelog file 'HISTORY.md' doesnt exist")
	assert.Empty(t, f.stdout.String())
}

func TestUpdate_InvalidSource(t *testing.T) {
	f := newFixture(t)
	f.writeChangelog(t, "")

	err := f.changelog.Update(context.Background(), UpdateParams{NewVersion: "1.0.1", Source: "tags"})
	assert.ErrorIs(t, err, ErrInvalidSource)
	assert.Empty(t, f.readChangelog(t))
}

func TestUpdate_MessagePattern(t *testing.T) {
	f := newFixture(t)
	f.writeChangelog(t, "")
	f.expectPullRequests("[FIX] A simple fix", "[FEATURE] A feature")

	err := f.changelog.Update(context.Background(), UpdateParams{
		NewVersion:     "1.1.0",
		MessagePattern: regexp.MustCompile(`FEATURE`),
	})
	require.NoError(t, err)
	assert.Equal(t, "## 1.1.0 - 05/03/2024\n * [FEATURE] A feature\n\n", f.readChangelog(t))
}

func TestUpdate_Confirmation(t *testing.T) {
	const rendered = "## 1.0.1 - 05/03/2024\n * [FIX] A simple fix\n\n"

	tests := []struct {
		name      string
		choice    prompt.Option
		selectErr error
		edited    string
		want      string
		wantErr   error
	}{
		{name: "yes", choice: releaseOptions[0], want: rendered},
		{name: "edit", choice: releaseOptions[2], edited: "## 1.0.1\n * edited\n\n", want: "## 1.0.1\n * edited\n\n"},
		{name: "no", choice: releaseOptions[1], wantErr: ErrCanceled},
		{name: "escape", selectErr: prompt.ErrNoSelection, wantErr: ErrCanceled},
		{name: "prompt failure", selectErr: errors.New("tty"), wantErr: errors.New("tty")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.writeChangelog(t, "")
			f.expectPullRequests("[FIX] A simple fix")

			message := "Create new Release?\n" + Separator + "\n" + rendered + Separator + "\n"
			f.prompt.EXPECT().PromptSelect(message, releaseOptions).Return(tt.choice, tt.selectErr)
			if tt.edited != "" {
				f.prompt.EXPECT().EditText(rendered).Return(tt.edited, nil)
			}

			err := f.changelog.Update(context.Background(), UpdateParams{NewVersion: "1.0.1", Confirmation: true})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Empty(t, f.readChangelog(t))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.readChangelog(t))
		})
	}
}

func TestRender_NoChanges(t *testing.T) {
	f := newFixture(t)
	c := f.changelog.(*realChangelog)

	got, err := c.Render("2.0.0", nil)
	require.NoError(t, err)
	assert.Equal(t, "## 2.0.0 - 05/03/2024\n\n", got)
}
