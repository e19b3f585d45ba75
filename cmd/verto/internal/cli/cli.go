// Package cli provides common configuration and utility functions for the verto CLI.
package cli

import (
	"context"
	"io"

	"github.com/lerenn/verto/pkg/config"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/hooks"
	"github.com/lerenn/verto/pkg/logger"
	"github.com/lerenn/verto/pkg/verto"
)

var (
	// Verbose enables verbose output.
	Verbose bool
)

// NewVerto creates a Verto instance writing to stdout and stderr.
func NewVerto(stdout, stderr io.Writer) (verto.Verto, error) {
	cfg, err := config.NewManager()
	if err != nil {
		return nil, err
	}

	deps := dependencies.New().
		WithConfig(cfg).
		WithOutput(stdout, stderr)
	if Verbose {
		log := logger.NewDefaultLogger(stderr)
		deps = deps.WithLogger(log).WithHookManager(hooks.NewManager(log))
	}

	return verto.NewVerto(verto.NewVertoParams{
		Dependencies: deps,
		Verbose:      Verbose,
	})
}

// NewLoadedVerto creates a Verto instance and evaluates the project Vertofile.
// Errors of the Vertofile are reported on its configured error output. The
// caller closes the instance.
func NewLoadedVerto(ctx context.Context, stdout, stderr io.Writer) (verto.Verto, error) {
	v, err := NewVerto(stdout, stderr)
	if err != nil {
		return nil, err
	}

	if err := v.LoadVertofile(ctx); err != nil {
		err = Report(v.ErrorOutput(), err)
		_ = v.Close()
		return nil, err
	}
	return v, nil
}
