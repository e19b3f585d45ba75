// Package tag lists, orders and creates version tags of a repository.
package tag

import "errors"

// Tag-specific error types.
var (
	ErrCreateFailed = errors.New("failed to create tag")
)
