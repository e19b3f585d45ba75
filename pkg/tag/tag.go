package tag

import (
	"context"
	"regexp"

	"github.com/lerenn/verto/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tag.go -destination=mocks/tag.gen.go -package=mocks

var versionInTag = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+(-[0-9A-Za-z]+(\.[0-9]+)?)?`)

// Tag is a git tag holding a version.
type Tag struct {
	// Name is the tag as stored in git, prefix included.
	Name string
	// Version is the version part of the name.
	Version string
}

// Repository gives access to the version tags of a repository.
type Repository interface {
	// List returns the versions found in tags, lowest first, keeping only
	// those matched by filter when it is not nil.
	List(ctx context.Context, filter *regexp.Regexp) ([]string, error)

	// Latest returns the highest version matched by filter.
	Latest(ctx context.Context, filter *regexp.Regexp) (string, bool, error)

	// LatestTag returns the tag holding the highest version.
	LatestTag(ctx context.Context) (Tag, bool, error)

	// Any reports whether the repository has any version tag.
	Any(ctx context.Context) (bool, error)

	// Create creates a tag named name on HEAD.
	Create(ctx context.Context, name string) error
}

type realRepository struct {
	git git.Git
}

// NewRepository creates a new tag Repository backed by git.
func NewRepository(g git.Git) Repository {
	return &realRepository{git: g}
}
