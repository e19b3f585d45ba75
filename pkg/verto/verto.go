package verto

import (
	"context"
	"io"

	"github.com/lerenn/verto/internal/base"
	"github.com/lerenn/verto/pkg/dependencies"
	"github.com/lerenn/verto/pkg/dsl"
	"github.com/lerenn/verto/pkg/runtime"
	"github.com/lerenn/verto/pkg/semver"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=verto.go -destination=mocks/verto.gen.go -package=mocks

// Version is the running verto version.
const Version = "0.12.0"

// Command names, as matched by the `on:` option of script hooks.
const (
	CommandTagUp   = "tag_up"
	CommandTagInit = "tag_init"
)

// Verto interface runs the verto commands.
type Verto interface {
	// LoadVertofile evaluates the project Vertofile when there is one.
	LoadVertofile(ctx context.Context) error

	// TagUp creates the tag of the next version.
	TagUp(ctx context.Context, opts TagUpOpts) error

	// TagInit creates the first tag of a repository.
	TagInit(ctx context.Context) error

	// Init writes a Vertofile template.
	Init(ctx context.Context, opts InitOpts) error

	// ConfigYAML renders the effective configuration.
	ConfigYAML() ([]byte, error)

	// ErrorOutput returns the standard error as configured by the Vertofile.
	ErrorOutput() io.Writer

	// Close releases the redirected output files.
	Close() error
}

// NewVertoParams contains parameters for creating a new Verto instance.
type NewVertoParams struct {
	Dependencies *dependencies.Dependencies
	// Interpreter is optional, the default evaluates scripts against the state.
	Interpreter dsl.Interpreter
	Verbose     bool
}

type realVerto struct {
	*base.Base
	state       *runtime.State
	interpreter dsl.Interpreter
}

// NewVerto creates a new Verto instance.
func NewVerto(params NewVertoParams) (Verto, error) {
	state, err := runtime.New(params.Dependencies)
	if err != nil {
		return nil, err
	}

	interpreter := params.Interpreter
	if interpreter == nil {
		interpreter = dsl.NewInterpreter(state, semver.MustParse(Version))
	}

	return &realVerto{
		Base: base.NewBase(base.NewBaseParams{
			Logger:  state.Logger,
			Stdout:  state.Stdout(),
			Stderr:  state.Stderr(),
			Verbose: params.Verbose,
		}),
		state:       state,
		interpreter: interpreter,
	}, nil
}

// ErrorOutput returns the standard error as configured by the Vertofile.
func (v *realVerto) ErrorOutput() io.Writer {
	return v.state.Stderr()
}

// Close releases the redirected output files.
func (v *realVerto) Close() error {
	return v.state.Close()
}
