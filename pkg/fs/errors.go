// Package fs provides file system operations used by verto.
package fs

import "errors"

// Error definitions for fs package.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrNotAFile     = errors.New("path is a directory")
)
