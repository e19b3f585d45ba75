// Package executor runs shell command lines and captures their output.
package executor

import "errors"

// Executor-specific error types.
var (
	// ErrParse is returned when a command line is not valid shell syntax.
	ErrParse = errors.New("failed to parse command")
	// ErrCommandFailed is returned by RunStrict when a command wrote to stderr.
	ErrCommandFailed = errors.New("command failed")
)
