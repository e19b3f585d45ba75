// Package configs provides embedded configuration files for verto.
package configs

import _ "embed"

// DefaultConfigYAML contains the default configuration values.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// VertofileTemplate contains the Vertofile written by `verto init`.
//
//go:embed Vertofile
var VertofileTemplate []byte
