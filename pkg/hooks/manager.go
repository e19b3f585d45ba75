package hooks

import (
	"context"
	"fmt"

	"github.com/lerenn/verto/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides hook registration and firing.
type Manager interface {
	// Register appends hook to the registry.
	Register(hook Hook) error

	// Prepend inserts hook before every registered hook.
	Prepend(hook Hook) error

	// Has reports whether a hook named name is registered.
	Has(name string) bool

	// Hooks returns the registered hooks in firing order.
	Hooks() []Hook

	// SetCommand records the command whose hooks are fired.
	SetCommand(command string)

	// Fire runs, in order, every hook of moment matching the current command.
	Fire(ctx context.Context, moment Moment, attrs Attributes) error

	// FireAll fires each moment in order.
	FireAll(ctx context.Context, moments []Moment, attrs Attributes) error

	// CurrentMoment returns the moment being fired, empty outside of a firing.
	CurrentMoment() Moment
}

type realManager struct {
	hooks   []Hook
	command string
	current Moment
	logger  logger.Logger
}

// NewManager creates a new empty hook Manager.
func NewManager(log logger.Logger) Manager {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realManager{logger: log}
}

// Register appends hook to the registry.
func (m *realManager) Register(hook Hook) error {
	if err := validate(hook); err != nil {
		return err
	}
	m.hooks = append(m.hooks, hook)
	return nil
}

// Prepend inserts hook before every registered hook.
func (m *realManager) Prepend(hook Hook) error {
	if err := validate(hook); err != nil {
		return err
	}
	m.hooks = append([]Hook{hook}, m.hooks...)
	return nil
}

func validate(hook Hook) error {
	if hook.Callback == nil {
		return ErrNilCallback
	}
	if hook.Moment == "" {
		return ErrNoMoment
	}
	return nil
}

// Has reports whether a hook named name is registered.
func (m *realManager) Has(name string) bool {
	for _, h := range m.hooks {
		if h.Name == name {
			return true
		}
	}
	return false
}

// Hooks returns the registered hooks in firing order.
func (m *realManager) Hooks() []Hook {
	return append([]Hook(nil), m.hooks...)
}

// SetCommand records the command whose hooks are fired.
func (m *realManager) SetCommand(command string) {
	m.command = command
}

// Fire runs, in order, every hook of moment matching the current command.
func (m *realManager) Fire(ctx context.Context, moment Moment, attrs Attributes) error {
	previous := m.current
	m.current = moment
	defer func() { m.current = previous }()

	// Hooks registered while firing wait for the next firing.
	for _, hook := range m.Hooks() {
		if !hook.matches(moment, m.command) {
			continue
		}

		m.logger.Logf("Firing %s hook %s", moment, hook.Name)
		if err := hook.Callback(ctx, attrs); err != nil {
			return fmt.Errorf("hook %s failed: %w", moment, err)
		}
	}

	return nil
}

// FireAll fires each moment in order.
func (m *realManager) FireAll(ctx context.Context, moments []Moment, attrs Attributes) error {
	for _, moment := range moments {
		if err := m.Fire(ctx, moment, attrs); err != nil {
			return err
		}
	}
	return nil
}

// CurrentMoment returns the moment being fired, empty outside of a firing.
func (m *realManager) CurrentMoment() Moment {
	return m.current
}
