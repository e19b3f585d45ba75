//go:build unit

package tag

import (
	"context"
	"errors"
	"regexp"
	"testing"

	gitmocks "github.com/lerenn/verto/pkg/git/mocks"
	"github.com/lerenn/verto/pkg/tagfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sampleTags = []string{
	"v1.0.0", "1.0.0-rc.10", "1.0.0-rc.9", "0.9.0", "not-a-version", "0.10.0", "1.0.0-alpha.1",
}

func TestRepository_List(t *testing.T) {
	releaseOnly, _ := tagfilter.For(tagfilter.ReleaseOnly)
	preReleaseOnly, _ := tagfilter.For(tagfilter.PreReleaseOnly)

	tests := []struct {
		name     string
		filter   *regexp.Regexp
		expected []string
	}{
		{
			name:     "natural order without filter",
			expected: []string{"0.9.0", "0.10.0", "1.0.0-alpha.1", "1.0.0-rc.9", "1.0.0-rc.10", "1.0.0"},
		},
		{
			name:     "release only",
			filter:   releaseOnly,
			expected: []string{"0.9.0", "0.10.0", "1.0.0"},
		},
		{
			name:     "pre-release only",
			filter:   preReleaseOnly,
			expected: []string{"1.0.0-alpha.1", "1.0.0-rc.9", "1.0.0-rc.10"},
		},
		{
			name:     "custom expression",
			filter:   regexp.MustCompile(`^0\.`),
			expected: []string{"0.9.0", "0.10.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockGit := gitmocks.NewMockGit(ctrl)
			mockGit.EXPECT().ListTags(gomock.Any()).Return(sampleTags, nil)

			versions, err := NewRepository(mockGit).List(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, versions)
		})
	}
}

func TestRepository_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().ListTags(gomock.Any()).Return(sampleTags, nil).Times(2)

	repo := NewRepository(mockGit)

	latest, found, err := repo.Latest(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1.0.0", latest)

	tag, found, err := repo.LatestTag(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, Tag{Name: "v1.0.0", Version: "1.0.0"}, tag)
}

func TestRepository_NoTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().ListTags(gomock.Any()).Return([]string{"latest"}, nil).Times(2)

	repo := NewRepository(mockGit)

	_, found, err := repo.Latest(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, found)

	anyTag, err := repo.Any(context.Background())
	require.NoError(t, err)
	assert.False(t, anyTag)
}

func TestRepository_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().ListTags(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := NewRepository(mockGit).List(context.Background(), nil)
	assert.ErrorContains(t, err, "boom")
}

func TestRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockGit := gitmocks.NewMockGit(ctrl)
	mockGit.EXPECT().CreateTag(gomock.Any(), "v1.1.0").Return(nil)
	mockGit.EXPECT().CreateTag(gomock.Any(), "v1.0.0").Return(errors.New("already exists"))

	repo := NewRepository(mockGit)
	assert.NoError(t, repo.Create(context.Background(), "v1.1.0"))

	err := repo.Create(context.Background(), "v1.0.0")
	assert.ErrorIs(t, err, ErrCreateFailed)
	assert.ErrorContains(t, err, "already exists")
}
