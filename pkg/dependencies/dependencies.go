// Package dependencies provides a centralized dependency container for verto.
// Related collaborators are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"
	"io"
	"os"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/git"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/logger"
	"github.com/lerenn/verto/pkg/prompt"
	"github.com/lerenn/verto/pkg/tag"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrGitMissing         = errors.New("git dependency is required but not set")
	ErrTagsMissing        = errors.New("tag repository dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrPromptMissing      = errors.New("prompt dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrStdoutMissing      = errors.New("stdout dependency is required but not set")
	ErrStderrMissing      = errors.New("stderr dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Git         git.Git
	Tags        tag.Repository
	Config      config.Manager
	Logger      logger.Logger
	Prompt      prompt.Prompter
	HookManager hooks.Manager
	Stdout      io.Writer
	Stderr      io.Writer
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:          fs.NewFS(),
		Logger:      log,
		Prompt:      prompt.NewPrompt(),
		HookManager: hooks.NewManager(log),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		// Config, Git and Tags depend on the project and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithTags sets the tag repository and returns the instance for chaining.
func (d *Dependencies) WithTags(tags tag.Repository) *Dependencies {
	d.Tags = tags
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.Manager) *Dependencies {
	d.HookManager = hm
	return d
}

// WithOutput sets the process output streams and returns the instance for chaining.
func (d *Dependencies) WithOutput(stdout, stderr io.Writer) *Dependencies {
	d.Stdout = stdout
	d.Stderr = stderr
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Tags, ErrTagsMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.HookManager, ErrHookManagerMissing},
		{d.Stdout, ErrStdoutMissing},
		{d.Stderr, ErrStderrMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
