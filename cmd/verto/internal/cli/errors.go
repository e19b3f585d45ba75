package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lerenn/verto/internal/base"
)

// ExitCode is returned for every failed command.
const ExitCode = 1

// reportedError is an error already written to the configured error stream.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// Report prints err to w, usually the error output of a Verto instance, and
// marks it so that HandleError does not print it a second time.
func Report(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	HandleError(w, err)
	return &reportedError{err: err}
}

// HandleError prints err to w and returns the process exit code. Exit errors
// print their own message only, and nothing when it is empty.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var reported *reportedError
	if errors.As(err, &reported) {
		return ExitCode
	}

	message := err.Error()
	var exitErr *base.ExitError
	if errors.As(err, &exitErr) {
		message = exitErr.Message
	}

	if message != "" {
		_, _ = fmt.Fprintln(w, strings.TrimSuffix(message, "\n"))
	}
	return ExitCode
}
