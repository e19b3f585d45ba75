package fs

import (
	"os"

	"github.com/spf13/afero"
)

// Exists checks if a file or directory exists at the given path.
func (f *realFS) Exists(path string) (bool, error) {
	return afero.Exists(f.fs, path)
}

// Stat returns the file info of path.
func (f *realFS) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}
