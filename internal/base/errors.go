// Package base provides the error taxonomy and shared helpers for verto components.
package base

import (
	"errors"
	"fmt"
)

// Error classes carried by ExitError.
var (
	// ErrExit marks an expected, user-facing failure.
	ErrExit = errors.New("exit")
	// ErrCommand marks a command-line validation failure.
	ErrCommand = errors.New("command error")
)

// ExitError is an expected failure that ends the current invocation.
// Its message is written verbatim to the error stream.
type ExitError struct {
	Message string
	Err     error
}

// NewExitError creates an ExitError with a formatted message.
func NewExitError(format string, args ...interface{}) *ExitError {
	return &ExitError{Message: fmt.Sprintf(format, args...), Err: ErrExit}
}

// NewCommandError creates an ExitError of the command class.
func NewCommandError(message string) *ExitError {
	return &ExitError{Message: message, Err: ErrCommand}
}

// WrapExit creates an ExitError of a custom class.
func WrapExit(class error, message string) *ExitError {
	return &ExitError{Message: message, Err: class}
}

// Error returns the user-facing message.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the error class.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsExit reports whether err is (or wraps) an ExitError.
func IsExit(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
