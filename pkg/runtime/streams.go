package runtime

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
)

// lazyWriter resolves its destination on first use and keeps it afterwards.
// A failed resolution is reported once through onError, then the fallback
// writer returned along with the error is used.
type lazyWriter struct {
	once    sync.Once
	resolve func() (io.Writer, error)
	onError func(error)
	w       io.Writer
}

func (l *lazyWriter) target() io.Writer {
	l.once.Do(func() {
		var err error
		l.w, err = l.resolve()
		if err != nil && l.onError != nil {
			l.onError(err)
		}
	})
	return l.w
}

func (l *lazyWriter) Write(p []byte) (int, error) {
	w := l.target()
	if w == nil {
		return len(p), nil
	}
	return w.Write(p)
}

// outputStream returns the configured stream for key, falling back on def.
// The destination is read from the configuration on first write only, so a
// script may redirect output before anything is printed.
func (s *State) outputStream(key string, def io.Writer) *lazyWriter {
	return &lazyWriter{resolve: func() (io.Writer, error) {
		name := s.configString(key)
		if name == "" {
			return def, nil
		}

		path := filepath.Join(s.ProjectPath(), name)
		f, err := s.FS.OpenAppend(path)
		if err != nil {
			return def, fmt.Errorf("%w %s: %w", ErrOpenOutput, path, err)
		}

		s.Logger.Logf("Redirecting %s to %s", key, path)
		s.closers = append(s.closers, f)
		return f, nil
	}, onError: s.reportOutputError}
}

// reportOutputError logs a failed redirection and warns on the terminal.
func (s *State) reportOutputError(err error) {
	s.Logger.Logf("%v", err)
	if s.TermErr != nil {
		_, _ = fmt.Fprintf(s.TermErr, "%v, writing to the terminal instead\n", err)
	}
}
