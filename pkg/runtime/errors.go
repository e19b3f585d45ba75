// Package runtime holds the state shared by the interpreter, the hooks and the
// commands for one verto invocation.
package runtime

import "errors"

// State errors.
var (
	ErrOpenOutput = errors.New("failed to open output file")
)
