//go:build unit

package tag

import (
	"testing"

	"github.com/lerenn/verto/pkg/verto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestUpOpts(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected verto.TagUpOpts
	}{
		{name: "no flags", expected: verto.TagUpOpts{}},
		{name: "patch", args: []string{"--patch"}, expected: verto.TagUpOpts{Patch: true}},
		{
			name:     "major minor release",
			args:     []string{"--major", "--minor", "--release"},
			expected: verto.TagUpOpts{Major: true, Minor: true, Release: true},
		},
		{
			name:     "bare pre-release",
			args:     []string{"--pre-release"},
			expected: verto.TagUpOpts{PreRelease: strPtr(verto.KeepPreReleaseName)},
		},
		{
			name:     "pre-release identifier",
			args:     []string{"--pre-release=rc", "--patch"},
			expected: verto.TagUpOpts{Patch: true, PreRelease: strPtr("rc")},
		},
		{
			name:     "underscore pre-release",
			args:     []string{"--pre_release=beta"},
			expected: verto.TagUpOpts{PreRelease: strPtr("beta")},
		},
		{
			name:     "filter",
			args:     []string{"--minor", "--filter=release_only"},
			expected: verto.TagUpOpts{Minor: true, Filter: "release_only"},
		},
		{
			name:     "version prefix",
			args:     []string{"--patch", "--version_prefix=v"},
			expected: verto.TagUpOpts{Patch: true, VersionPrefix: strPtr("v")},
		},
		{
			name:     "empty version prefix",
			args:     []string{"--patch", "--version-prefix="},
			expected: verto.TagUpOpts{Patch: true, VersionPrefix: strPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := createUpCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Equal(t, tt.expected, upOpts(cmd.Flags()))
		})
	}
}

func TestCreateTagCmd(t *testing.T) {
	cmd := CreateTagCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "init"}, names)
}

func TestUpCmd_RejectsArgs(t *testing.T) {
	cmd := createUpCmd()
	assert.Error(t, cmd.Args(cmd, []string{"1.0.0"}))
}
