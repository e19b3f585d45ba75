package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const defaultFileMode os.FileMode = 0644

// File edits a single file located relative to a base directory.
type File struct {
	fs   FS
	path string
}

// NewFile creates a File for name inside dir.
func NewFile(fsys FS, dir, name string) *File {
	return &File{fs: fsys, path: filepath.Join(dir, name)}
}

// Path returns the full path of the file.
func (f *File) Path() string {
	return f.path
}

// Exists checks if the file exists.
func (f *File) Exists() (bool, error) {
	return f.fs.Exists(f.path)
}

// Read returns the file content.
func (f *File) Read() (string, error) {
	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Replace substitutes the first match of pattern. `$1` style references in
// replacement expand to submatches.
func (f *File) Replace(pattern *regexp.Regexp, replacement string) error {
	content, err := f.Read()
	if err != nil {
		return err
	}

	loc := pattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return nil
	}

	expanded := pattern.ExpandString(nil, replacement, content, loc)
	return f.write(content[:loc[0]] + string(expanded) + content[loc[1]:])
}

// ReplaceAll substitutes every match of pattern.
func (f *File) ReplaceAll(pattern *regexp.Regexp, replacement string) error {
	content, err := f.Read()
	if err != nil {
		return err
	}
	return f.write(pattern.ReplaceAllString(content, replacement))
}

// Append adds content at the end of the file, creating it when missing.
func (f *File) Append(content string) error {
	if err := f.fs.AppendFile(f.path, []byte(content)); err != nil {
		return fmt.Errorf("failed to append to %s: %w", f.path, err)
	}
	return nil
}

// Prepend adds content at the beginning of the file.
func (f *File) Prepend(content string) error {
	existing, err := f.Read()
	if err != nil {
		return err
	}
	return f.write(content + existing)
}

func (f *File) write(content string) error {
	mode := defaultFileMode
	if info, err := f.fs.Stat(f.path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := f.fs.WriteFileAtomic(f.path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}
