package tag

import (
	"context"
	"regexp"
)

// Latest returns the highest version matched by filter.
func (r *realRepository) Latest(ctx context.Context, filter *regexp.Regexp) (string, bool, error) {
	versions, err := r.List(ctx, filter)
	if err != nil {
		return "", false, err
	}
	if len(versions) == 0 {
		return "", false, nil
	}
	return versions[len(versions)-1], true, nil
}

// LatestTag returns the tag holding the highest version.
func (r *realRepository) LatestTag(ctx context.Context) (Tag, bool, error) {
	tags, err := r.tags(ctx)
	if err != nil {
		return Tag{}, false, err
	}
	if len(tags) == 0 {
		return Tag{}, false, nil
	}
	return tags[len(tags)-1], true, nil
}

// Any reports whether the repository has any version tag.
func (r *realRepository) Any(ctx context.Context) (bool, error) {
	_, found, err := r.LatestTag(ctx)
	return found, err
}
