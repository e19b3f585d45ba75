package semver

import "fmt"

// Kind names the version component to increase.
type Kind int

// Kinds in precedence order: when several are requested the smallest wins.
const (
	KindMajor Kind = iota
	KindMinor
	KindPatch
	KindPreRelease
	KindNone
)

// DefaultInitialNumber is the first pre-release counter value.
const DefaultInitialNumber uint64 = 1

var kindNames = map[Kind]string{
	KindMajor:      "major",
	KindMinor:      "minor",
	KindPatch:      "patch",
	KindPreRelease: "pre_release",
	KindNone:       "none",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps `major`, `minor`, `patch` and `pre_release` to a Kind.
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if kind != KindNone && name == s {
			return kind, nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Versioner derives new versions using a configured pre-release initial number.
type Versioner struct {
	InitialNumber uint64
}

// NewVersioner creates a Versioner with the given pre-release initial number.
func NewVersioner(initialNumber uint64) Versioner {
	return Versioner{InitialNumber: initialNumber}
}

// Up increases the component named by kind and resets the lower ones.
// A carried pre-release keeps its name and restarts at the initial number.
func (vr Versioner) Up(v Version, kind Kind) (Version, error) {
	next := v

	switch kind {
	case KindMajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
		next.PreRelease = vr.resetPreRelease(v.PreRelease)
	case KindMinor:
		next.Minor++
		next.Patch = 0
		next.PreRelease = vr.resetPreRelease(v.PreRelease)
	case KindPatch:
		next.Patch++
		next.PreRelease = vr.resetPreRelease(v.PreRelease)
	case KindPreRelease:
		if v.PreRelease.IsBlank() {
			return Version{}, fmt.Errorf("%w: %s", ErrNoPreRelease, v)
		}
		if v.PreRelease.HasNumber {
			next.PreRelease.Number = v.PreRelease.Number + 1
		} else {
			next.PreRelease.Number = vr.InitialNumber
			next.PreRelease.HasNumber = true
		}
	case KindNone:
	default:
		return Version{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	return next, nil
}

// WithPreRelease replaces the pre-release name, or attaches `name.<initial>` to a release.
func (vr Versioner) WithPreRelease(v Version, name string) Version {
	next := v
	if v.PreRelease.IsBlank() {
		next.PreRelease = PreRelease{Name: name, Number: vr.InitialNumber, HasNumber: true}
		return next
	}
	next.PreRelease.Name = name
	return next
}

func (vr Versioner) resetPreRelease(p PreRelease) PreRelease {
	if p.IsBlank() {
		return p
	}
	return PreRelease{Name: p.Name, Number: vr.InitialNumber, HasNumber: true}
}

var defaultVersioner = NewVersioner(DefaultInitialNumber)

// Up increases the component named by kind using DefaultInitialNumber.
func (v Version) Up(kind Kind) (Version, error) {
	return defaultVersioner.Up(v, kind)
}

// WithPreRelease attaches or renames the pre-release using DefaultInitialNumber.
func (v Version) WithPreRelease(name string) Version {
	return defaultVersioner.WithPreRelease(v, name)
}
