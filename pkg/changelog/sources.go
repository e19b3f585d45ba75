package changelog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/lerenn/verto/pkg/git"
	"github.com/lerenn/verto/pkg/tag"
)

// Source names.
const (
	MergedPullRequestsWithBracketedLabels = "merged_pull_requests_with_bracketed_labels"
	CommitsWithBracketedLabels            = "commits_with_bracketed_labels"
	MergedPullRequestsMessages            = "merged_pull_requests_messages"
	CommitMessages                        = "commit_messages"
)

// DefaultSource is used when no source is given.
const DefaultSource = MergedPullRequestsWithBracketedLabels

// maxLinesBeforeTag bounds how far back merged pull requests are looked up.
const maxLinesBeforeTag = 100

var bracketedLabel = regexp.MustCompile(`^\s*\[.*\]`)

// Source extracts the messages describing the changes since the latest tag.
type Source func(ctx context.Context, g git.Git, tags tag.Repository) ([]string, error)

var sourceNames = []string{
	MergedPullRequestsWithBracketedLabels,
	CommitsWithBracketedLabels,
	MergedPullRequestsMessages,
	CommitMessages,
}

var sources = map[string]Source{
	MergedPullRequestsWithBracketedLabels: FilteredBy(MergedPullRequests, bracketedLabel),
	CommitsWithBracketedLabels:            FilteredBy(Commits, bracketedLabel),
	MergedPullRequestsMessages:            MergedPullRequests,
	CommitMessages:                        Commits,
}

// Names returns the available source names in registry order.
func Names() []string {
	return append([]string(nil), sourceNames...)
}

// Lookup returns the source registered under name.
func Lookup(name string) (Source, error) {
	source, ok := sources[name]
	if !ok {
		return nil, NewInvalidSourceError(sourceNames)
	}
	return source, nil
}

// FilteredBy keeps only the messages of source matched by pattern.
func FilteredBy(source Source, pattern *regexp.Regexp) Source {
	if pattern == nil {
		return source
	}

	return func(ctx context.Context, g git.Git, tags tag.Repository) ([]string, error) {
		messages, err := source(ctx, g, tags)
		if err != nil {
			return nil, err
		}

		var kept []string
		for _, message := range messages {
			if pattern.MatchString(message) {
				kept = append(kept, message)
			}
		}
		return kept, nil
	}
}

// MergedPullRequests returns the body lines of the pull requests merged since
// the latest tagged commit.
func MergedPullRequests(ctx context.Context, g git.Git, _ tag.Repository) ([]string, error) {
	lines, err := g.DecoratedLog(ctx)
	if errors.Is(err, git.ErrNoCommits) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var hashes []string
	for _, line := range linesUntilTag(lines) {
		if !strings.Contains(line, "pull request") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			hashes = append(hashes, fields[0])
		}
	}

	bodies, err := g.CommitBodies(ctx, hashes)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, line := range bodies {
		if strings.Contains(line, "Approved") {
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			messages = append(messages, line)
		}
	}
	return messages, nil
}

// linesUntilTag returns the lines up to the first decorated with a tag,
// including it and at most maxLinesBeforeTag lines before it.
func linesUntilTag(lines []string) []string {
	for i, line := range lines {
		if !strings.Contains(line, "tag:") {
			continue
		}
		start := i - maxLinesBeforeTag
		if start < 0 {
			start = 0
		}
		return lines[start : i+1]
	}
	return nil
}

// Commits returns the non-merge commit subjects since the latest tag, or of
// the whole history when there is no tag.
func Commits(ctx context.Context, g git.Git, tags tag.Repository) ([]string, error) {
	latest, found, err := tags.LatestTag(ctx)
	if err != nil {
		return nil, err
	}

	since := ""
	if found {
		since = latest.Name
	}

	subjects, err := g.CommitSubjects(ctx, since)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, subject := range subjects {
		if subject = strings.TrimSpace(subject); subject != "" {
			messages = append(messages, subject)
		}
	}
	return messages, nil
}
