package semver

import "strings"

// Compare returns -1, 0 or 1 when a is lower, equal or greater than b.
//
// A release orders above any pre-release of the same core version. Two
// pre-releases compare by their rendered suffix as plain strings, so
// `1.0.0-rc.9` is greater than `1.0.0-rc.10`.
func Compare(a, b Version) int {
	if c := compareUint(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareUint(a.Patch, b.Patch); c != 0 {
		return c
	}

	aBlank, bBlank := a.PreRelease.IsBlank(), b.PreRelease.IsBlank()
	switch {
	case aBlank && bBlank:
		return 0
	case aBlank:
		return 1
	case bBlank:
		return -1
	}

	return strings.Compare(a.PreRelease.String(), b.PreRelease.String())
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// LessOrEqual reports whether v orders before or equal to other.
func (v Version) LessOrEqual(other Version) bool {
	return Compare(v, other) <= 0
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == 0
}
