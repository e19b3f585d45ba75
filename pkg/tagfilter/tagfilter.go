// Package tagfilter maps named tag filters to regular expressions.
package tagfilter

import (
	"fmt"
	"regexp"
)

// Filter keys accepted by `tag up --filter`.
const (
	ReleaseOnly    = "release_only"
	PreReleaseOnly = "pre_release_only"
	All            = "all"
)

var (
	releaseOnly    = regexp.MustCompile(`\d+\.\d+\.\d+$`)
	preReleaseOnly = regexp.MustCompile(`\d+\.\d+\.\d+-.*\d+`)
)

// For returns the expression registered under key. The `all` key yields a nil
// expression; the second result is false only for unknown keys.
func For(key string) (*regexp.Regexp, bool) {
	switch key {
	case ReleaseOnly:
		return releaseOnly, true
	case PreReleaseOnly:
		return preReleaseOnly, true
	case All:
		return nil, true
	default:
		return nil, false
	}
}

// Load resolves a filter option: a registered key, a regular expression, or
// nothing at all when value is empty.
func Load(value string) (*regexp.Regexp, error) {
	if value == "" {
		return nil, nil
	}
	if re, ok := For(value); ok {
		return re, nil
	}

	re, err := regexp.Compile(value)
	if err != nil {
		return nil, fmt.Errorf("invalid tag filter %q: %w", value, err)
	}
	return re, nil
}
