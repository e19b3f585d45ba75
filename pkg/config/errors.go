// Package config provides the configuration tree scripts and commands share.
package config

import "errors"

// Error definitions for config package.
var (
	// Configuration defaults errors.
	ErrDefaultsParse = errors.New("failed to parse default configuration")
	// Configuration mutation errors.
	ErrUnknownKey   = errors.New("unknown configuration key")
	ErrInvalidValue = errors.New("invalid configuration value")
	ErrSectionValue = errors.New("configuration section cannot be assigned")
)
