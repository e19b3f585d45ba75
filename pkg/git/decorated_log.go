package git

import (
	"context"
	"errors"
)

// DecoratedLog returns `git log --oneline --decorate`, newest commit first.
func (g *realGit) DecoratedLog(ctx context.Context) ([]string, error) {
	output, err := g.query(ctx, "log", "--oneline", "--decorate")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) && isEmptyHistory(cmdErr.Stderr) {
			return nil, ErrNoCommits
		}
		return nil, err
	}
	return splitLines(output), nil
}
