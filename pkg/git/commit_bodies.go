package git

import "context"

// CommitBodies returns the non-empty body lines of the given commits, in order.
func (g *realGit) CommitBodies(ctx context.Context, hashes []string) ([]string, error) {
	if len(hashes) == 0 {
		return nil, nil
	}

	args := append([]string{"show", "-s", "--format=%b"}, hashes...)
	output, err := g.query(ctx, args...)
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}
