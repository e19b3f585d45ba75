package verto

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// VertofilePathEnv overrides the location of the Vertofile.
const VertofilePathEnv = "VERTOFILE_PATH"

// VertofileName is the script looked up in the project path.
const VertofileName = "Vertofile"

// LoadVertofile evaluates the project Vertofile when there is one.
func (v *realVerto) LoadVertofile(ctx context.Context) error {
	path, ok := os.LookupEnv(VertofilePathEnv)
	if !ok || path == "" {
		path = filepath.Join(v.state.ProjectPath(), VertofileName)
	}

	exists, err := v.state.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		v.VerbosePrint("No Vertofile found at %s", path)
		return nil
	}

	v.VerbosePrint("Loading Vertofile %s", path)
	return v.interpreter.LoadFile(ctx, path)
}
