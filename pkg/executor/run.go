package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Run executes command in the executor's directory.
func (e *realExecutor) Run(ctx context.Context, command string) (Result, error) {
	e.logRunning(command)

	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrParse, command, err)
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Dir(e.dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create shell runner in %s: %w", e.dir, err)
	}

	result := Result{}
	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if !errors.As(err, &status) {
			return Result{}, fmt.Errorf("failed to run %q: %w", command, err)
		}
		result.ExitStatus = int(status)
	}

	result.Output = stdout.String()
	result.Error = stderr.String()

	e.echo(e.stdout, result.Output)
	e.echo(e.stderr, result.Error)

	return result, nil
}

// RunStrict executes command and returns ErrCommandFailed when stderr is not empty.
func (e *realExecutor) RunStrict(ctx context.Context, command string) (Result, error) {
	result, err := e.Run(ctx, command)
	if err != nil {
		return result, err
	}

	if result.Error != "" {
		return result, fmt.Errorf("%w: %s", ErrCommandFailed, strings.TrimSpace(result.Error))
	}

	return result, nil
}

func (e *realExecutor) logRunning(command string) {
	line := "Running: " + command
	if e.dir != DefaultDir {
		line = fmt.Sprintf("%s (in %s)", line, e.dir)
	}

	e.logger.Logf("%s", line)
	if e.stderr != nil {
		_, _ = fmt.Fprintln(e.stderr, line)
	}
}

func (e *realExecutor) echo(w io.Writer, content string) {
	if w == nil || content == "" {
		return
	}
	_, _ = io.WriteString(w, content)
}
