package dsl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lerenn/verto/pkg/executor"
	"github.com/lerenn/verto/pkg/fs"
	"github.com/lerenn/verto/pkg/runtime"
	"github.com/lerenn/verto/pkg/semver"
)

// Value is any script value: nil, bool, int64, string, Symbol,
// *regexp.Regexp, []Value, *Hash, *Block, semver.Version, semver.PreRelease,
// executor.Result, *fs.File, *configNode or *runtime.Options.
type Value = any

// Symbol is a :name literal.
type Symbol string

// Hash is an insertion ordered map, used for keyword arguments.
type Hash struct {
	keys   []string
	values map[string]Value
}

// NewHash creates an empty Hash.
func NewHash() *Hash {
	return &Hash{values: make(map[string]Value)}
}

// Set stores value under key.
func (h *Hash) Set(key string, value Value) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value of key.
func (h *Hash) Get(key string) (Value, bool) {
	if h == nil {
		return nil, false
	}
	value, ok := h.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (h *Hash) Keys() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.keys...)
}

// Len returns the number of entries.
func (h *Hash) Len() int {
	if h == nil {
		return 0
	}
	return len(h.keys)
}

// Block is a closure over the scope where it was written.
type Block struct {
	node *blockNode
	env  *env
}

// configNode is a section of the configuration tree, the root when path is empty.
type configNode struct {
	path string
}

func (c *configNode) child(name string) string {
	if c.path == "" {
		return name
	}
	return c.path + "." + name
}

func truthy(v Value) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	}
	return true
}

// toS renders v the way string interpolation does.
func toS(v Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case Symbol:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case *regexp.Regexp:
		return x.String()
	case semver.Version:
		return x.String()
	case semver.PreRelease:
		return strings.TrimPrefix(x.String(), "-")
	case executor.Result:
		return x.Output
	case *fs.File:
		return x.Path()
	case *configNode:
		return x.path
	case []Value, *Hash, *runtime.Options:
		return inspect(v)
	}
	return fmt.Sprint(v)
}

// inspect renders v as a literal.
func inspect(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case Symbol:
		return ":" + string(x)
	case *regexp.Regexp:
		return "/" + x.String() + "/"
	case []Value:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = inspect(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Hash:
		parts := make([]string, 0, x.Len())
		for _, k := range x.keys {
			parts = append(parts, k+": "+inspect(x.values[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *runtime.Options:
		parts := make([]string, 0, x.Len())
		for _, k := range x.Keys() {
			value, _ := x.Get(k)
			parts = append(parts, k+": "+inspect(value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return toS(v)
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case string:
		return "string"
	case Symbol:
		return "symbol"
	case *regexp.Regexp:
		return "regexp"
	case []Value:
		return "array"
	case *Hash:
		return "hash"
	case *Block:
		return "block"
	case semver.Version:
		return "version"
	case semver.PreRelease:
		return "pre_release"
	case executor.Result:
		return "command result"
	case *fs.File:
		return "file"
	case *configNode:
		return "config"
	case *runtime.Options:
		return "command options"
	}
	return fmt.Sprintf("%T", v)
}

func equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case semver.Version:
		switch y := b.(type) {
		case semver.Version:
			return x.Equal(y)
		case string:
			v, err := semver.Parse(y)
			return err == nil && x.Equal(v)
		}
		return false
	case string:
		if y, ok := b.(semver.Version); ok {
			return equal(y, x)
		}
		y, ok := b.(string)
		return ok && x == y
	case *regexp.Regexp:
		y, ok := b.(*regexp.Regexp)
		return ok && x.String() == y.String()
	case []Value:
		y, ok := b.([]Value)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Hash, *Block, *configNode, *runtime.Options, *fs.File:
		return a == b
	case executor.Result:
		y, ok := b.(executor.Result)
		return ok && x == y
	}
	return a == b
}

// compare orders two integers, two strings or two versions.
func compare(a, b Value) (int, error) {
	switch x := a.(type) {
	case int64:
		if y, ok := b.(int64); ok {
			switch {
			case x < y:
				return -1, nil
			case x > y:
				return 1, nil
			}
			return 0, nil
		}
	case string:
		switch y := b.(type) {
		case string:
			return strings.Compare(x, y), nil
		case semver.Version:
			v, err := semver.Parse(x)
			if err != nil {
				return 0, err
			}
			return semver.Compare(v, y), nil
		}
	case semver.Version:
		switch y := b.(type) {
		case semver.Version:
			return semver.Compare(x, y), nil
		case string:
			v, err := semver.Parse(y)
			if err != nil {
				return 0, err
			}
			return semver.Compare(x, v), nil
		}
	}
	return 0, fmt.Errorf("%w: cannot compare %s with %s", ErrType, typeName(a), typeName(b))
}

// compileRegex compiles a /source/flags literal.
func compileRegex(source, flags string) (*regexp.Regexp, error) {
	prefix := ""
	for _, f := range flags {
		switch f {
		case 'i':
			prefix += "i"
		case 'm':
			prefix += "s"
		case 'x':
			source = stripExtended(source)
		}
	}
	if prefix != "" {
		source = "(?" + prefix + ")" + source
	}
	return regexp.Compile(source)
}

// stripExtended drops the unescaped whitespace and comments of an x regexp.
func stripExtended(source string) string {
	var sb strings.Builder
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c == '\\' && i+1 < len(source):
			sb.WriteByte(c)
			sb.WriteByte(source[i+1])
			i++
		case c == ' ' || c == '\t' || c == '\n':
		case c == '#':
			for i < len(source) && source[i] != '\n' {
				i++
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// toRegex accepts a regexp or a string matched literally.
func toRegex(v Value) (*regexp.Regexp, error) {
	switch x := v.(type) {
	case *regexp.Regexp:
		return x, nil
	case string:
		return regexp.MustCompile(regexp.QuoteMeta(x)), nil
	case Symbol:
		return regexp.MustCompile(regexp.QuoteMeta(string(x))), nil
	}
	return nil, fmt.Errorf("%w: expected a pattern, got %s", ErrType, typeName(v))
}

var rubyBackref = regexp.MustCompile(`\\(\d)`)

// replacement converts a Ruby style replacement (\1) into the regexp
// package syntax (${1}). String patterns keep their replacement literal.
func replacement(pattern Value, repl string) string {
	if _, ok := pattern.(*regexp.Regexp); !ok {
		return strings.ReplaceAll(repl, "$", "$$")
	}
	repl = strings.ReplaceAll(repl, "$", "$$")
	return rubyBackref.ReplaceAllString(repl, "$${$1}")
}

// name returns the text of a string or symbol.
func name(v Value) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case Symbol:
		return string(x), true
	}
	return "", false
}
