// Package logger provides logging functionality for verto.
package logger

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// defaultLogger writes leveled, prefixed lines through charmbracelet/log.
type defaultLogger struct {
	mu     sync.Mutex
	logger *log.Logger
}

// NewDefaultLogger creates a new default logger writing to w.
func NewDefaultLogger(w io.Writer) Logger {
	return &defaultLogger{
		logger: log.NewWithOptions(w, log.Options{
			Prefix: "verto",
			Level:  log.DebugLevel,
		}),
	}
}

// Logf writes a formatted debug message.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger.Debugf(format, args...)
}
