// Package changelog extracts release notes from the git history and prepends
// them to the project changelog.
package changelog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lerenn/verto/internal/base"
)

// Changelog errors.
var (
	// ErrCanceled is returned when the user refuses the rendered release notes.
	ErrCanceled = errors.New("changelog update canceled")
	// ErrInvalidSource classes unknown source names.
	ErrInvalidSource = errors.New("invalid changelog source")
	// ErrMissingFile classes missing changelog files.
	ErrMissingFile = errors.New("missing changelog file")
)

// NewInvalidSourceError creates the ExitError reported for an unknown source.
func NewInvalidSourceError(available []string) *base.ExitError {
	message := fmt.Sprintf("Invalid CHANGELOG Source, avaliable options: '%s'", strings.Join(available, ","))
	return base.WrapExit(ErrInvalidSource, message)
}

func newMissingFileError(filename string) *base.ExitError {
	return base.WrapExit(ErrMissingFile, fmt.Sprintf("changelog file '%s' doesnt exist", filename))
}
