package runtime

import (
	"context"
	"errors"
	"io"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/executor"
	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/git"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/logger"
	"github.com/lerenn/verto/pkg/prompt"
	"github.com/lerenn/verto/pkg/tag"
)

// State is the mutable state of one verto invocation.
type State struct {
	FS      fs.FS
	Git     git.Git
	Tags    tag.Repository
	Config  config.Manager
	Logger  logger.Logger
	Prompt  prompt.Prompter
	Hooks   hooks.Manager
	Options *Options

	// Terminal streams, never redirected.
	TermOut io.Writer
	TermErr io.Writer

	stdout  *lazyWriter
	stderr  *lazyWriter
	closers []io.Closer
}

// New creates a State from deps. Git and Tags default to implementations
// running in the configured project path.
func New(deps *dependencies.Dependencies) (*State, error) {
	s := &State{
		FS:      deps.FS,
		Config:  deps.Config,
		Logger:  deps.Logger,
		Prompt:  deps.Prompt,
		Hooks:   deps.HookManager,
		Options: NewOptions(nil),
		TermOut: deps.Stdout,
		TermErr: deps.Stderr,
	}
	s.stdout = s.outputStream("output.stdout_to", deps.Stdout)
	s.stderr = s.outputStream("output.stderr_to", deps.Stderr)

	if deps.Git == nil {
		deps.Git = git.NewGit(s.Executor())
	}
	if deps.Tags == nil {
		deps.Tags = tag.NewRepository(deps.Git)
	}
	s.Git, s.Tags = deps.Git, deps.Tags

	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Stdout returns the configured standard output.
func (s *State) Stdout() io.Writer {
	return s.stdout
}

// Stderr returns the configured standard error.
func (s *State) Stderr() io.Writer {
	return s.stderr
}

// ProjectPath returns the configured project path.
func (s *State) ProjectPath() string {
	if path := s.configString("project.path"); path != "" {
		return path
	}
	return executor.DefaultDir
}

// GitConfig returns the current git section of the configuration.
func (s *State) GitConfig() (config.GitConfig, error) {
	cfg, err := s.Config.Config()
	if err != nil {
		return config.GitConfig{}, err
	}
	return cfg.Git, nil
}

// Executor returns an executor bound to the project path whose output goes
// to the configured streams. The project path is read at each call.
func (s *State) Executor() executor.Executor {
	return &stateExecutor{state: s}
}

// Close releases the redirected output files.
func (s *State) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *State) configString(key string) string {
	if s.Config == nil {
		return ""
	}
	value, err := s.Config.Get(key)
	if err != nil {
		return ""
	}
	str, _ := value.(string)
	return str
}

// stateExecutor builds a fresh executor from the state on every call.
type stateExecutor struct {
	state *State
}

func (e *stateExecutor) current() executor.Executor {
	return executor.NewExecutor(e.state.ProjectPath(), e.state.Logger).
		WithOutput(e.state.Stdout(), e.state.Stderr())
}

func (e *stateExecutor) Run(ctx context.Context, command string) (executor.Result, error) {
	return e.current().Run(ctx, command)
}

func (e *stateExecutor) RunStrict(ctx context.Context, command string) (executor.Result, error) {
	return e.current().RunStrict(ctx, command)
}

func (e *stateExecutor) WithOutput(stdout, stderr io.Writer) executor.Executor {
	return executor.NewExecutor(e.state.ProjectPath(), e.state.Logger).WithOutput(stdout, stderr)
}

func (e *stateExecutor) Dir() string {
	return e.state.ProjectPath()
}
