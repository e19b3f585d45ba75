// Package git provides the git queries and mutations verto relies on.
package git

import (
	"errors"
	"fmt"
)

// Git-specific error types.
var (
	ErrCommandFailed = errors.New("git command failed")
	ErrNoCommits     = errors.New("repository has no commits")
)

// CommandError describes a git invocation that exited with a non-zero status.
type CommandError struct {
	Command    string
	ExitStatus int
	Stderr     string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s failed with status %d: %s", e.Command, e.ExitStatus, e.Stderr)
}

// Unwrap returns ErrCommandFailed so callers can use errors.Is.
func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}
