package base

import (
	"fmt"
	"io"

	"github.com/lerenn/verto/pkg/logger"
)

// Base provides common functionality for verto commands.
type Base struct {
	Logger  logger.Logger
	Stdout  io.Writer
	Stderr  io.Writer
	verbose bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	Logger  logger.Logger
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}
	if params.Stdout == nil {
		params.Stdout = io.Discard
	}
	if params.Stderr == nil {
		params.Stderr = io.Discard
	}

	return &Base{
		Logger:  params.Logger,
		Stdout:  params.Stdout,
		Stderr:  params.Stderr,
		verbose: params.Verbose,
	}
}

// VerbosePrint logs a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(msg, args...)
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (b *Base) IsVerbose() bool {
	return b.verbose
}

// Println writes a line to the standard output.
func (b *Base) Println(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(b.Stdout, msg+"\n", args...)
}

// Errorln writes a line to the standard error.
func (b *Base) Errorln(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(b.Stderr, msg+"\n", args...)
}
