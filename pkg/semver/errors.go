// Package semver provides the semantic version value type used for tags.
package semver

import "errors"

// Semver-specific error types.
var (
	// ErrFormat is returned when a string does not contain a semantic version.
	ErrFormat = errors.New("invalid version format")
	// ErrNoPreRelease is returned when bumping the pre-release of a release version.
	ErrNoPreRelease = errors.New("version has no pre-release to increment")
	// ErrUnknownKind is returned when a bump kind name is not recognized.
	ErrUnknownKind = errors.New("unknown version kind")
)
