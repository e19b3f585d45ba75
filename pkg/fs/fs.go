package fs

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for project files.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// Stat returns the file info of path.
	Stat(path string) (os.FileInfo, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically using a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error

	// AppendFile appends data to a file, creating it when missing.
	AppendFile(filename string, data []byte) error

	// OpenAppend opens a file for appending, creating it when missing.
	OpenAppend(filename string) (io.WriteCloser, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error
}

type realFS struct {
	fs afero.Fs
}

// NewFS creates a new FS instance on the operating system file system.
func NewFS() FS {
	return &realFS{fs: afero.NewOsFs()}
}

// NewFSFrom creates a new FS instance backed by the given afero file system.
func NewFSFrom(afs afero.Fs) FS {
	return &realFS{fs: afs}
}
