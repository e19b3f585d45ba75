// Package dsl implements the Vertofile language: a small Ruby flavoured script
// that configures verto, branches on the repository state and registers hooks.
package dsl

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	ErrSyntax     = errors.New("syntax error")
	ErrUndefined  = errors.New("undefined name")
	ErrNoMethod   = errors.New("undefined method")
	ErrArgument   = errors.New("wrong arguments")
	ErrType       = errors.New("wrong type")
	ErrNotAllowed = errors.New("operation not allowed here")
)

// InterpreterError wraps any failure of a script that is not an ExitError.
type InterpreterError struct {
	Message string
	Err     error
}

func newInterpreterError(err error) *InterpreterError {
	return &InterpreterError{Message: err.Error(), Err: err}
}

// Error returns the original message.
func (e *InterpreterError) Error() string {
	return e.Message
}

// Unwrap returns the original error.
func (e *InterpreterError) Unwrap() error {
	return e.Err
}

func syntaxError(line int, format string, args ...any) error {
	return fmt.Errorf("%w at line %d: %s", ErrSyntax, line, fmt.Sprintf(format, args...))
}

func argumentError(name string, format string, args ...any) error {
	return fmt.Errorf("%w for %s: %s", ErrArgument, name, fmt.Sprintf(format, args...))
}
