package git

import (
	"context"
	"fmt"
	"strings"
)

// CreateTag creates a lightweight tag on HEAD.
func (g *realGit) CreateTag(ctx context.Context, name string) error {
	cmd := command("tag", name)

	result, err := g.exec.RunStrict(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	if !result.Success() {
		return &CommandError{Command: cmd, ExitStatus: result.ExitStatus, Stderr: strings.TrimSpace(result.Error)}
	}
	return nil
}
