package executor

import (
	"context"
	"io"

	"github.com/lerenn/verto/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=executor.go -destination=mocks/executor.gen.go -package=mocks

// DefaultDir is the working directory used when none is configured.
const DefaultDir = "./"

// Result holds what a command printed and how it exited.
type Result struct {
	Output     string
	Error      string
	ExitStatus int
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitStatus == 0
}

// Executor runs command lines through a shell interpreter.
type Executor interface {
	// Run executes command and returns its captured output. A non-zero exit
	// status is reported in the Result, not as an error.
	Run(ctx context.Context, command string) (Result, error)

	// RunStrict executes command and fails when anything was written to stderr.
	RunStrict(ctx context.Context, command string) (Result, error)

	// WithOutput returns a copy that echoes captured output to the given
	// writers. Nil writers silence the corresponding stream.
	WithOutput(stdout, stderr io.Writer) Executor

	// Dir returns the working directory commands run in.
	Dir() string
}

type realExecutor struct {
	dir    string
	stdout io.Writer
	stderr io.Writer
	logger logger.Logger
}

// NewExecutor creates an Executor running commands in dir without echoing output.
func NewExecutor(dir string, log logger.Logger) Executor {
	if dir == "" {
		dir = DefaultDir
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realExecutor{
		dir:    dir,
		logger: log,
	}
}

// WithOutput returns a copy of the executor echoing to stdout and stderr.
func (e *realExecutor) WithOutput(stdout, stderr io.Writer) Executor {
	return &realExecutor{
		dir:    e.dir,
		stdout: stdout,
		stderr: stderr,
		logger: e.logger,
	}
}

// Dir returns the working directory commands run in.
func (e *realExecutor) Dir() string {
	return e.dir
}
