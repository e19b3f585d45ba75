// Package hooks provides the lifecycle moments verto fires around its commands
// and the ordered registry of callbacks attached to them.
package hooks

import "errors"

// Hook registration errors.
var (
	ErrNilCallback = errors.New("hook callback cannot be nil")
	ErrNoMoment    = errors.New("hook moment cannot be empty")
)
