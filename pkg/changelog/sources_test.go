//go:build unit

package changelog

import (
	"context"
	"regexp"
	"testing"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/git"
	gitmocks "github.com/lerenn/verto/pkg/git/mocks"
	"github.com/lerenn/verto/pkg/tag"
	tagmocks "github.com/lerenn/verto/pkg/tag/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLookup_Invalid(t *testing.T) {
	_, err := Lookup("unknown")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidSource)
	assert.True(t, base.IsExit(err))
	assert.EqualError(t, err, "Invalid CHANGELOG Source, avaliable options: "+
		"'merged_pull_requests_with_bracketed_labels,commits_with_bracketed_labels,merged_pull_requests_messages,commit_messages'")
}

func TestLookup_Known(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			source, err := Lookup(name)
			require.NoError(t, err)
			assert.NotNil(t, source)
		})
	}
}

func TestMergedPullRequests(t *testing.T) {
	tests := []struct {
		name       string
		log        []string
		logErr     error
		wantHashes []string
		bodies     []string
		want       []string
	}{
		{
			name: "pull requests since the latest tag",
			log: []string{
				"a1b2c3d (HEAD -> main) Merge pull request #3 from user/feat",
				"e4f5a6b Some commit",
				"c7d8e9f Merge pull request #2 from user/fix",
				"0a1b2c3 (tag: 1.0.0) Merge pull request #1 from user/old",
				"9f9f9f9 Merge pull request #0 from user/older",
			},
			wantHashes: []string{"a1b2c3d", "c7d8e9f", "0a1b2c3"},
			bodies:     []string{"[FEATURE] Feat", "Approved by someone", "  [FIX] Fix  ", "Old"},
			want:       []string{"[FEATURE] Feat", "[FIX] Fix", "Old"},
		},
		{
			name: "no tag",
			log:  []string{"a1b2c3d Merge pull request #1 from user/feat"},
		},
		{
			name:   "empty history",
			logErr: git.ErrNoCommits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGit := gitmocks.NewMockGit(ctrl)
			mockGit.EXPECT().DecoratedLog(gomock.Any()).Return(tt.log, tt.logErr)
			if tt.logErr == nil {
				mockGit.EXPECT().CommitBodies(gomock.Any(), tt.wantHashes).Return(tt.bodies, nil)
			}

			got, err := MergedPullRequests(context.Background(), mockGit, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinesUntilTag_Bounded(t *testing.T) {
	lines := make([]string, 0, 150)
	for i := 0; i < 149; i++ {
		lines = append(lines, "abc Merge pull request")
	}
	lines = append(lines, "def (tag: 1.0.0) Release")

	got := linesUntilTag(lines)
	assert.Len(t, got, maxLinesBeforeTag+1)
	assert.Equal(t, "def (tag: 1.0.0) Release", got[len(got)-1])
}

func TestCommits(t *testing.T) {
	tests := []struct {
		name      string
		latest    tag.Tag
		found     bool
		wantSince string
	}{
		{name: "since latest tag", latest: tag.Tag{Name: "v1.0.0", Version: "1.0.0"}, found: true, wantSince: "v1.0.0"},
		{name: "whole history", wantSince: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGit := gitmocks.NewMockGit(ctrl)
			mockTags := tagmocks.NewMockRepository(ctrl)
			mockTags.EXPECT().LatestTag(gomock.Any()).Return(tt.latest, tt.found, nil)
			mockGit.EXPECT().CommitSubjects(gomock.Any(), tt.wantSince).Return([]string{" [FIX] A fix ", "Chore", ""}, nil)

			got, err := Commits(context.Background(), mockGit, mockTags)
			require.NoError(t, err)
			assert.Equal(t, []string{"[FIX] A fix", "Chore"}, got)
		})
	}
}

func TestFilteredBy(t *testing.T) {
	source := func(context.Context, git.Git, tag.Repository) ([]string, error) {
		return []string{"[FIX] a", "b", " [FEATURE] c", "[FIX] d"}, nil
	}

	got, err := FilteredBy(source, bracketedLabel)(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"[FIX] a", " [FEATURE] c", "[FIX] d"}, got)

	got, err = FilteredBy(FilteredBy(source, bracketedLabel), regexp.MustCompile(`FIX`))(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"[FIX] a", "[FIX] d"}, got)

	got, err = FilteredBy(source, nil)(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}
