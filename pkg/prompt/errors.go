// Package prompt provides interactive prompt functionality for verto.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoOptions                = errors.New("no options available")
	ErrNoSelection              = errors.New("no selection made")
	ErrEditorFailed             = errors.New("editor failed")
)
