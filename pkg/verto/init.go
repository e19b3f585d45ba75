package verto

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/verto/configs"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	// Path is the directory receiving the Vertofile, the project path by default.
	Path string
}

// Init writes a Vertofile template.
func (v *realVerto) Init(_ context.Context, opts InitOpts) error {
	dir := opts.Path
	if dir == "" {
		dir = v.state.ProjectPath()
	}
	path := filepath.Join(dir, VertofileName)

	exists, err := v.state.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists {
		return newVertofileExistsError()
	}

	v.VerbosePrint("Writing %s", path)
	if err := v.state.FS.WriteFileAtomic(path, configs.VertofileTemplate, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
