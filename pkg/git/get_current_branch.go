package git

import (
	"context"
	"strings"
)

// GetCurrentBranch gets the current branch name.
func (g *realGit) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := g.query(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
