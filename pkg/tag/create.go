package tag

import (
	"context"
	"fmt"
)

// Create creates a tag named name on HEAD.
func (r *realRepository) Create(ctx context.Context, name string) error {
	if err := r.git.CreateTag(ctx, name); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateFailed, name, err)
	}
	return nil
}
