package fs

import (
	"io"
	"os"
)

// AppendFile appends data to a file, creating it when missing.
func (f *realFS) AppendFile(filename string, data []byte) error {
	w, err := f.OpenAppend(filename)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// OpenAppend opens a file for appending, creating it when missing.
func (f *realFS) OpenAppend(filename string) (io.WriteCloser, error) {
	return f.fs.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
