package git

import (
	"context"
	"errors"
)

// CommitSubjects returns non-merge commit subjects after since, newest first.
func (g *realGit) CommitSubjects(ctx context.Context, since string) ([]string, error) {
	args := []string{"log", "--no-merges", "--pretty=format:%s"}
	if since != "" {
		args = append(args, "HEAD", "^"+since)
	}

	output, err := g.query(ctx, args...)
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && isEmptyHistory(cmdErr.Stderr) {
			return nil, nil
		}
		return nil, err
	}
	return splitLines(output), nil
}
