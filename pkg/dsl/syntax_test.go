//go:build unit

package dsl

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/executor"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/semver"
	"github.com/lerenn/verto/pkg/tag"
	"github.com/lerenn/verto/pkg/tagfilter"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVertoVersion(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		expectedErr string
	}{
		{name: "older requirement", source: "verto_version '0.1.0'"},
		{name: "same requirement", source: "verto_version('0.12.0')"},
		{
			name:        "newer requirement",
			source:      "verto_version '1.0.0'",
			expectedErr: "Current Verto version is 0.12.0, required version is 1.0.0 or higher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.eval(t, tt.source)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, base.IsExit(err))
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestConfig(t *testing.T) {
	f := newFixture(t)

	f.mustEval(t, `
config {
  version.prefix = 'v'
  pre_release.initial_number = 0
  git do
    pull_before_tag_creation = true
    fetch_before_tag_creation = true unless pull_before_tag_creation
  end
}
config.git.push_after_tag_creation = true
config.pre_release.default_identifier = :beta
`)

	cfg, err := f.state.Config.Config()
	require.NoError(t, err)
	assert.Equal(t, "v", cfg.Version.Prefix)
	assert.Equal(t, uint64(0), cfg.PreRelease.InitialNumber)
	assert.Equal(t, "beta", cfg.PreRelease.DefaultIdentifier)
	assert.True(t, cfg.Git.PushAfterTagCreation)

	// Bare assignments define locals, even inside a configuration block.
	assert.False(t, cfg.Git.PullBeforeTagCreation)
	assert.False(t, cfg.Git.FetchBeforeTagCreation)
}

func TestConfig_Heredoc(t *testing.T) {
	f := newFixture(t)

	f.mustEval(t, `
title = 'Verto'
config {
  changelog.format = <<~CHANGELOG
    ## {{.Version}} (#{title})
      {{range .Entries}}- {{.}}{{end}}
  CHANGELOG
  version.prefix = 'v'
}
`)

	cfg, err := f.state.Config.Config()
	require.NoError(t, err)
	assert.Equal(t, "## {{.Version}} (Verto)\n  {{range .Entries}}- {{.}}{{end}}\n", cfg.Changelog.Format)
	assert.Equal(t, "v", cfg.Version.Prefix)
}

func TestConfig_Read(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "rc", f.mustEval(t, "config.pre_release.default_identifier"))
	assert.Equal(t, int64(1), f.mustEval(t, "config { pre_release.initial_number }.pre_release['initial_number']"))
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected error
	}{
		{name: "unknown key", source: "config.version.unknown = 1", expected: config.ErrUnknownKey},
		{name: "section value", source: "config.version = 'x'", expected: config.ErrSectionValue},
		{name: "wrong type", source: "config.git.push_after_tag_creation = 'yes'", expected: config.ErrInvalidValue},
		{name: "negative number", source: "config { pre_release.initial_number = -1 }", expected: config.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.eval(t, tt.source)
			assert.ErrorIs(t, err, tt.expected)

			var interpErr *InterpreterError
			assert.ErrorAs(t, err, &interpErr)
		})
	}
}

func TestBranch(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected bool
	}{
		{name: "literal", source: "branch('master')", expected: true},
		{name: "contained literal", source: "branch 'master-and-more'", expected: true},
		{name: "other literal", source: "branch('main')", expected: false},
		{name: "several", source: "branch('main', 'master')", expected: true},
		{name: "array", source: "branch(['main', /^mas/])", expected: true},
		{name: "regexp", source: "branch(/^release/)", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.git.EXPECT().GetCurrentBranch(gomock.Any()).Return("master", nil)

			assert.Equal(t, tt.expected, f.mustEval(t, tt.source))
		})
	}
}

func TestCurrentBranch_Memoized(t *testing.T) {
	f := newFixture(t)
	f.git.EXPECT().GetCurrentBranch(gomock.Any()).Return("develop", nil).Times(1)

	assert.Equal(t, "develop", f.mustEval(t, "current_branch"))
	assert.Equal(t, true, f.mustEval(t, "current_branch == 'develop' && branch('develop')"))
}

func TestContext(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, int64(1), f.mustEval(t, "context(true) { 1 }"))
	assert.Nil(t, f.mustEval(t, "context(false) { 1 }"))
}

func TestLatestVersions(t *testing.T) {
	releaseOnly, _ := tagfilter.For(tagfilter.ReleaseOnly)
	preReleaseOnly, _ := tagfilter.For(tagfilter.PreReleaseOnly)

	f := newFixture(t)
	f.tags.EXPECT().Latest(gomock.Any(), nil).Return("v1.2.0-rc.2", true, nil).Times(1)
	f.tags.EXPECT().Latest(gomock.Any(), releaseOnly).Return("v1.1.0", true, nil)
	f.tags.EXPECT().Latest(gomock.Any(), preReleaseOnly).Return("", false, nil)

	assert.Equal(t, semver.MustParse("1.2.0-rc.2"), f.mustEval(t, "latest_version"))
	assert.Equal(t, "1.2.0-rc.2", f.mustEval(t, "latest_version.to_s"))
	assert.Equal(t, semver.MustParse("1.1.0"), f.mustEval(t, "latest_release_version"))
	assert.Equal(t, semver.Version{}, f.mustEval(t, "latest_pre_release_version"))
}

func TestSh(t *testing.T) {
	f := newFixture(t)

	value := f.mustEval(t, "sh('echo hello', output: false)")
	result, ok := value.(executor.Result)
	require.True(t, ok)
	assert.Equal(t, "hello\n", result.Output)
	assert.True(t, result.Success())
	assert.Empty(t, f.stdout.String())

	assert.Equal(t, int64(3), f.mustEval(t, "sh('exit 3', output: false).exit_status"))
	assert.Equal(t, true, f.mustEval(t, "sh('exit 3', output: false).error?"))
}

func TestSh_Output(t *testing.T) {
	f := newFixture(t)

	f.mustEval(t, "sh 'echo configured'")
	assert.Equal(t, "configured\n", f.stdout.String())
	assert.Contains(t, f.stderr.String(), "Running: echo configured")
}

func TestShStrict(t *testing.T) {
	f := newFixture(t)

	_, err := f.eval(t, "sh!('exit 1', output: false)")
	require.Error(t, err)
	assert.True(t, base.IsExit(err))
	assert.EqualError(t, err, "exit 1")

	_, err = f.eval(t, "git!('this-is-not-a-command', output: false)")
	assert.True(t, base.IsExit(err))
	assert.EqualError(t, err, "git this-is-not-a-command")
}

func TestHookRegistration(t *testing.T) {
	tests := []struct {
		name   string
		source string
		moment hooks.Moment
	}{
		{name: "before", source: "before { puts 'called' }", moment: hooks.MomentBefore},
		{name: "after", source: "after do\n puts 'called'\nend", moment: hooks.MomentAfter},
		{name: "before tag up", source: "before_command_tag_up { puts 'called' }", moment: hooks.MomentBeforeTagUp},
		{name: "after tag up", source: "after_command_tag_up { puts 'called' }", moment: hooks.MomentAfterTagUp},
		{name: "before tag creation", source: "before_tag_creation { puts 'called' }", moment: hooks.MomentBeforeTagCreation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mustEval(t, tt.source)

			registered := f.state.Hooks.Hooks()
			require.Len(t, registered, 1)
			assert.Equal(t, tt.moment, registered[0].Moment)
			assert.Equal(t, "vertofile:1", registered[0].Name)

			require.NoError(t, f.state.Hooks.Fire(context.Background(), tt.moment, nil))
			assert.Equal(t, "called\n", f.stdout.String())
		})
	}
}

func TestHook_Attributes(t *testing.T) {
	f := newFixture(t)
	f.mustEval(t, "before_tag_creation { puts \"Creating #{new_version}\" }")

	ctx := context.Background()
	attrs := hooks.Attributes{"new_version": semver.MustParse("1.0.0")}
	require.NoError(t, f.state.Hooks.Fire(ctx, hooks.MomentBeforeTagCreation, attrs))
	assert.Equal(t, "Creating 1.0.0\n", f.stdout.String())

	_, err := f.eval(t, "new_version")
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestHook_AttributesDroppedOnError(t *testing.T) {
	f := newFixture(t)
	f.mustEval(t, "after_command_tag_up { error!(\"Failed on #{new_version}\") }")

	attrs := hooks.Attributes{"new_version": semver.MustParse("1.0.0")}
	err := f.state.Hooks.Fire(context.Background(), hooks.MomentAfterTagUp, attrs)
	require.Error(t, err)
	assert.Equal(t, "Failed on 1.0.0\n", f.stderr.String())

	_, err = f.eval(t, "new_version")
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestHook_OnCommand(t *testing.T) {
	f := newFixture(t)
	f.mustEval(t, "before(on: :tag_init) { puts 'init' }")

	ctx := context.Background()
	f.state.Hooks.SetCommand("tag_up")
	require.NoError(t, f.state.Hooks.Fire(ctx, hooks.MomentBefore, nil))
	assert.Empty(t, f.stdout.String())

	f.state.Hooks.SetCommand("tag_init")
	require.NoError(t, f.state.Hooks.Fire(ctx, hooks.MomentBefore, nil))
	assert.Equal(t, "init\n", f.stdout.String())
}

func TestHook_ErrorStopsFiring(t *testing.T) {
	f := newFixture(t)
	f.mustEval(t, "before { error!('stop') }\nbefore { puts 'not called' }")

	err := f.state.Hooks.Fire(context.Background(), hooks.MomentBefore, nil)
	require.Error(t, err)
	assert.True(t, base.IsExit(err))
	assert.Equal(t, "stop\n", f.stderr.String())
	assert.Empty(t, f.stdout.String())
}

func TestDeprecatedHooks(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		moment  hooks.Moment
		warning string
	}{
		{
			name:    "on",
			source:  "on('before_tag_creation') { 1 }",
			moment:  hooks.MomentBeforeTagCreation,
			warning: "[DEPRECATED] `on` is deprecated and will be removed in a future release, use `before_tag_creation` instead\n",
		},
		{
			name:    "before command",
			source:  "before_command('tag_up') { 1 }",
			moment:  hooks.MomentBeforeTagUp,
			warning: "[DEPRECATED] `before_command` is deprecated and will be removed in a future release, use `before_command_tag_up` instead\n",
		},
		{
			name:    "after command",
			source:  "after_command('tag_up') { 1 }",
			moment:  hooks.MomentAfterTagUp,
			warning: "[DEPRECATED] `after_command` is deprecated and will be removed in a future release, use `after_command_tag_up` instead\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.mustEval(t, tt.source)

			registered := f.state.Hooks.Hooks()
			require.Len(t, registered, 1)
			assert.Equal(t, tt.moment, registered[0].Moment)
			assert.Equal(t, tt.warning, f.stderr.String())
		})
	}
}

func TestUpdateChangelog_OutsideMoment(t *testing.T) {
	f := newFixture(t)

	_, err := f.eval(t, "update_changelog")
	assert.True(t, base.IsExit(err))
	assert.EqualError(t, err, "update_changelog is only supported in before_tag_creation or after_command_tag_up")
}

func TestUpdateChangelog(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.afs.MkdirAll("/project", 0o755))
	require.NoError(t, f.state.Config.Set("project.path", "/project"))
	require.NoError(t, f.state.Config.Set("changelog.format", "## {{new_version}}\n{{#version_changes}}\n * {{.}}\n{{/version_changes}}\n"))
	f.writeFile(t, "/project/CHANGELOG.md", "## 1.0.0\n")

	f.tags.EXPECT().LatestTag(gomock.Any()).Return(tag.Tag{Name: "1.0.0"}, true, nil)
	f.git.EXPECT().CommitSubjects(gomock.Any(), "1.0.0").Return([]string{"[FIX] a fix", "chore: noise"}, nil)

	f.mustEval(t, "before_tag_creation do\n update_changelog(with: :commits_with_bracketed_labels, confirmation: false)\nend")
	attrs := hooks.Attributes{"new_version": semver.MustParse("1.0.1")}
	require.NoError(t, f.state.Hooks.Fire(context.Background(), hooks.MomentBeforeTagCreation, attrs))

	content, err := afero.ReadFile(f.afs, "/project/CHANGELOG.md")
	require.NoError(t, err)
	assert.Equal(t, "## 1.0.1\n * [FIX] a fix\n\n## 1.0.0\n", string(content))
}

func TestFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.afs.MkdirAll("/project", 0o755))
	require.NoError(t, f.state.Config.Set("project.path", "/project"))
	f.writeFile(t, "/project/version.txt", "version = 1.0.0\nname = 1.0.0\n")

	f.mustEval(t, `
file('version.txt').replace(/\d+\.\d+\.\d+/, '2.0.0')
file('version.txt').append("done\n")
file('version.txt').prepend("# header\n")
`)
	assert.Equal(t, "# header\nversion = 2.0.0\nname = 1.0.0\ndone\n", f.mustEval(t, "file('version.txt').read"))

	f.mustEval(t, `file('version.txt').gsub(/= (\d)/, '== \1')`)
	assert.Equal(t, "# header\nversion == 2.0.0\nname == 1.0.0\ndone\n", f.mustEval(t, "file('version.txt').read"))

	assert.Equal(t, "/project/version.txt", f.mustEval(t, "file('version.txt').path"))
	assert.Equal(t, false, f.mustEval(t, "file('missing.txt').exists?"))
}

func TestEnv(t *testing.T) {
	t.Setenv("VERTO_DSL_TEST", "value")
	require.NoError(t, os.Unsetenv("VERTO_DSL_MISSING"))

	f := newFixture(t)
	assert.Equal(t, "value", f.mustEval(t, "env('VERTO_DSL_TEST')"))
	assert.Nil(t, f.mustEval(t, "env('VERTO_DSL_MISSING')"))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		answer   bool
		err      error
		expected Value
	}{
		{name: "yes", answer: true, expected: true},
		{name: "no", answer: false, expected: false},
		{name: "failure", err: errors.New("no terminal")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.prompt.EXPECT().PromptForConfirmation("Continue?", false).Return(tt.answer, tt.err)

			value, err := f.eval(t, "confirm('Continue?')")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestError(t *testing.T) {
	f := newFixture(t)

	f.mustEval(t, "error 'Something is off'")
	assert.Equal(t, "Something is off\n", f.stderr.String())

	_, err := f.eval(t, "error!('Stop here')")
	var exitErr *base.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Empty(t, exitErr.Message)
	assert.Equal(t, "Something is off\nStop here\n", f.stderr.String())
}

func TestCommandOptions(t *testing.T) {
	f := newFixture(t)
	f.state.Options.Set("version_prefix", "v")
	f.state.Options.Set("pre_release", "rc")

	assert.Equal(t, "v", f.mustEval(t, "command_options[:version_prefix]"))
	assert.Equal(t, true, f.mustEval(t, "command_options.key?('pre-release')"))

	f.mustEval(t, "command_options.add(filter: 'release_only')\ncommand_options[:major] = true")
	assert.Equal(t, "release_only", f.state.Options.String("filter"))
	assert.True(t, f.state.Options.Bool("major"))

	copied := f.mustEval(t, "command_options.except(:pre_release).merge(minor: true)")
	assert.Equal(t, []Value{Symbol("version_prefix"), Symbol("filter"), Symbol("major"), Symbol("minor")},
		f.mustEval(t, "command_options.except(:pre_release).merge(minor: true).keys"))
	assert.NotSame(t, f.state.Options, copied)
	assert.Equal(t, 4, f.state.Options.Len())
}

func TestCommandOptions_QABranch(t *testing.T) {
	releaseOnly, _ := tagfilter.For(tagfilter.ReleaseOnly)
	preReleaseOnly, _ := tagfilter.For(tagfilter.PreReleaseOnly)

	const vertofile = `
context(branch('qa')) {
  before_command_tag_up {
    command_options.add(pre_release: 'rc')
    has_a_up_version_number = !command_options.keys.any? { |key| [:major, :minor, :patch].include?(key) }
    command_options.add(patch: true) if latest_pre_release_version < latest_release_version && !has_a_up_version_number
  }
}
`

	tests := []struct {
		name       string
		release    string
		preRelease string
		preset     string
		expected   []string
	}{
		{name: "pre-release behind release", release: "1.0.0", preRelease: "0.9.0-rc.1", expected: []string{"filter", "pre_release", "patch"}},
		{name: "pre-release ahead of release", release: "1.0.0", preRelease: "1.1.0-rc.1", expected: []string{"filter", "pre_release"}},
		{name: "explicit bump", release: "1.0.0", preRelease: "0.9.0-rc.1", preset: "minor", expected: []string{"filter", "minor", "pre_release"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.git.EXPECT().GetCurrentBranch(gomock.Any()).Return("qa", nil)
			f.tags.EXPECT().Latest(gomock.Any(), releaseOnly).Return(tt.release, true, nil).AnyTimes()
			f.tags.EXPECT().Latest(gomock.Any(), preReleaseOnly).Return(tt.preRelease, true, nil).AnyTimes()

			f.state.Options.Set("filter", "release_only")
			if tt.preset != "" {
				f.state.Options.Set(tt.preset, true)
			}
			f.mustEval(t, vertofile)

			f.state.Hooks.SetCommand("tag_up")
			require.NoError(t, f.state.Hooks.Fire(context.Background(), hooks.MomentBeforeTagUp, nil))
			assert.Equal(t, tt.expected, f.state.Options.Keys())
			assert.Equal(t, "rc", f.state.Options.String("pre_release"))
		})
	}
}

func TestPuts(t *testing.T) {
	f := newFixture(t)
	f.mustEval(t, "puts 'one', 2\nputs\nputs [:a, 'b']")
	assert.Equal(t, "one\n2\n\na\nb\n", f.stdout.String())
}
