package tag

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"golang.org/x/mod/semver"
)

// List returns the filtered versions found in tags, lowest first.
func (r *realRepository) List(ctx context.Context, filter *regexp.Regexp) ([]string, error) {
	tags, err := r.tags(ctx)
	if err != nil {
		return nil, err
	}

	versions := make([]string, 0, len(tags))
	for _, t := range tags {
		if filter != nil && !filter.MatchString(t.Version) {
			continue
		}
		versions = append(versions, t.Version)
	}
	return versions, nil
}

// tags returns every tag holding a version, ordered by version.
func (r *realRepository) tags(ctx context.Context) ([]Tag, error) {
	names, err := r.git.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		version := versionInTag.FindString(name)
		if version == "" {
			continue
		}
		tags = append(tags, Tag{Name: name, Version: version})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return compareVersions(tags[i].Version, tags[j].Version) < 0
	})
	return tags, nil
}

// compareVersions orders versions the way `sort -V` does: numeric fields
// compare as numbers and a release follows its pre-releases.
func compareVersions(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}
