package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)(-.*)?`)

// PreRelease is the optional `-name.number` suffix of a version.
type PreRelease struct {
	Name      string
	Number    uint64
	HasNumber bool
}

// IsBlank reports whether no pre-release is carried.
func (p PreRelease) IsBlank() bool {
	return p.Name == "" && !p.HasNumber
}

// String renders the suffix including its leading dash, or "" when blank.
func (p PreRelease) String() string {
	if p.IsBlank() {
		return ""
	}
	if !p.HasNumber {
		return "-" + p.Name
	}
	return fmt.Sprintf("-%s.%d", p.Name, p.Number)
}

// Version is an immutable semantic version.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	PreRelease PreRelease
}

// Parse extracts the first semantic version found in s, so `v1.2.3` is accepted.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	var v Version
	var err error
	if v.Major, err = strconv.ParseUint(m[1], 10, 64); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrFormat, s, err)
	}
	if v.Minor, err = strconv.ParseUint(m[2], 10, 64); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrFormat, s, err)
	}
	if v.Patch, err = strconv.ParseUint(m[3], 10, 64); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrFormat, s, err)
	}

	if m[4] != "" {
		v.PreRelease = parsePreRelease(strings.TrimPrefix(m[4], "-"))
	}

	return v, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func parsePreRelease(suffix string) PreRelease {
	idx := strings.LastIndex(suffix, ".")
	if idx < 0 {
		return PreRelease{Name: suffix}
	}

	number, err := strconv.ParseUint(suffix[idx+1:], 10, 64)
	if err != nil {
		return PreRelease{Name: suffix}
	}

	return PreRelease{Name: suffix[:idx], Number: number, HasNumber: true}
}

// String renders the version as `major.minor.patch[-name[.number]]`.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.PreRelease)
}

// IsRelease reports whether the version carries no pre-release.
func (v Version) IsRelease() bool {
	return v.PreRelease.IsBlank()
}

// ReleaseVersion returns the version without its pre-release.
func (v Version) ReleaseVersion() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}
