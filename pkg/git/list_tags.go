package git

import "context"

// ListTags lists every tag of the repository in git's own order.
func (g *realGit) ListTags(ctx context.Context) ([]string, error) {
	output, err := g.query(ctx, "tag")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}
