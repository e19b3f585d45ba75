package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lerenn/verto/configs"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// EnvPrefix prefixes environment variables overriding configuration keys,
// eg: VERTO_VERSION_PREFIX.
const EnvPrefix = "VERTO"

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindUint
)

// Manager interface provides access to the configuration tree.
type Manager interface {
	// Get returns the value stored under the dotted key.
	Get(key string) (any, error)

	// Set stores value under the dotted key after checking its type.
	Set(key string, value any) error

	// IsSection reports whether key names a group of keys rather than a value.
	IsSection(key string) bool

	// Keys returns every known dotted key, sorted.
	Keys() []string

	// Config returns a typed snapshot of the current values.
	Config() (Config, error)

	// YAML renders the current values as a YAML document.
	YAML() ([]byte, error)
}

type realManager struct {
	v        *viper.Viper
	kinds    map[string]valueKind
	sections map[string]bool
}

// NewManager creates a Manager seeded with the embedded defaults.
func NewManager() (Manager, error) {
	return NewManagerFromYAML(configs.DefaultConfigYAML)
}

// NewManagerFromYAML creates a Manager whose known keys and defaults come from data.
func NewManagerFromYAML(data []byte) (Manager, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefaultsParse, err)
	}

	m := &realManager{
		v:        viper.New(),
		kinds:    make(map[string]valueKind),
		sections: make(map[string]bool),
	}
	m.v.SetEnvPrefix(EnvPrefix)
	m.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.v.AutomaticEnv()

	if err := m.seed("", tree); err != nil {
		return nil, err
	}
	return m, nil
}

// seed registers every leaf of tree as a default.
func (m *realManager) seed(prefix string, tree map[string]any) error {
	for name, value := range tree {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		switch typed := value.(type) {
		case map[string]any:
			m.sections[key] = true
			if err := m.seed(key, typed); err != nil {
				return err
			}
			continue
		case bool:
			m.kinds[key] = kindBool
		case int:
			m.kinds[key] = kindUint
		case string, nil:
			m.kinds[key] = kindString
			if value == nil {
				value = ""
			}
		default:
			return fmt.Errorf("%w: unsupported default %s=%v", ErrDefaultsParse, key, value)
		}

		m.v.SetDefault(key, value)
	}
	return nil
}

// Get returns the value stored under the dotted key.
func (m *realManager) Get(key string) (any, error) {
	kind, ok := m.kinds[key]
	if !ok {
		if m.sections[key] {
			return m.v.GetStringMap(key), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	switch kind {
	case kindBool:
		return m.v.GetBool(key), nil
	case kindUint:
		return m.v.GetUint64(key), nil
	default:
		return m.v.GetString(key), nil
	}
}

// Set stores value under the dotted key after checking its type.
func (m *realManager) Set(key string, value any) error {
	kind, ok := m.kinds[key]
	if !ok {
		if m.sections[key] {
			return fmt.Errorf("%w: %s", ErrSectionValue, key)
		}
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	normalized, err := normalize(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}

	m.v.Set(key, normalized)
	return nil
}

func normalize(kind valueKind, value any) (any, error) {
	switch kind {
	case kindBool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("expected a boolean, got %v", value)
	case kindUint:
		switch n := value.(type) {
		case int:
			if n >= 0 {
				return uint64(n), nil
			}
		case int64:
			if n >= 0 {
				return uint64(n), nil
			}
		case uint64:
			return n, nil
		}
		return nil, fmt.Errorf("expected a positive integer, got %v", value)
	default:
		switch s := value.(type) {
		case nil:
			return "", nil
		case string:
			return s, nil
		case fmt.Stringer:
			return s.String(), nil
		}
		return nil, fmt.Errorf("expected a string, got %v", value)
	}
}

// IsSection reports whether key names a group of keys rather than a value.
func (m *realManager) IsSection(key string) bool {
	return m.sections[key]
}

// Keys returns every known dotted key, sorted.
func (m *realManager) Keys() []string {
	keys := make([]string, 0, len(m.kinds))
	for key := range m.kinds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Config returns a typed snapshot of the current values.
func (m *realManager) Config() (Config, error) {
	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// YAML renders the current values as a YAML document.
func (m *realManager) YAML() ([]byte, error) {
	cfg, err := m.Config()
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
