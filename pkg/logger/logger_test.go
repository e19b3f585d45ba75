//go:build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestDefaultLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf)

	logger.Logf("Running: %s", "git tag")

	assert.Contains(t, buf.String(), "verto")
	assert.Contains(t, buf.String(), "Running: git tag")
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf)

	// Test concurrent access
	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(id int) {
			logger.Logf("concurrent message from goroutine %d", id)
			done <- true
		}(i)
	}

	// Wait for all goroutines to complete
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("concurrent message")))
}
