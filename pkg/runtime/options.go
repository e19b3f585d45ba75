package runtime

import (
	"fmt"
	"strings"
)

// Options is an ordered set of command options. Keys are normalized so that
// "pre-release" and "pre_release" name the same option.
type Options struct {
	keys   []string
	values map[string]any
}

// NewOptions creates Options holding values.
func NewOptions(values map[string]any) *Options {
	o := &Options{values: make(map[string]any)}
	o.Add(values)
	return o
}

// NormalizeKey turns dashes into underscores.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// Add stores every value, replacing existing keys in place.
func (o *Options) Add(values map[string]any) {
	for _, key := range sortedKeys(values) {
		o.Set(key, values[key])
	}
}

// Set stores a single value.
func (o *Options) Set(key string, value any) {
	key = NormalizeKey(key)
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value of key.
func (o *Options) Get(key string) (any, bool) {
	value, ok := o.values[NormalizeKey(key)]
	return value, ok
}

// Delete removes key.
func (o *Options) Delete(key string) {
	key = NormalizeKey(key)
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Bool returns true only when key holds the boolean true.
func (o *Options) Bool(key string) bool {
	value, _ := o.Get(key)
	b, ok := value.(bool)
	return ok && b
}

// String returns the textual value of key, empty when absent or nil.
func (o *Options) String(key string) string {
	value, ok := o.Get(key)
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

// Keys returns the option names in insertion order.
func (o *Options) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of options.
func (o *Options) Len() int {
	return len(o.keys)
}

// Map returns a copy of the options.
func (o *Options) Map() map[string]any {
	values := make(map[string]any, len(o.values))
	for k, v := range o.values {
		values[k] = v
	}
	return values
}

// Merge returns a copy of o overridden by other.
func (o *Options) Merge(other *Options) *Options {
	merged := o.clone()
	if other == nil {
		return merged
	}
	for _, key := range other.keys {
		merged.Set(key, other.values[key])
	}
	return merged
}

// Except returns a copy of o without keys.
func (o *Options) Except(keys ...string) *Options {
	filtered := o.clone()
	for _, key := range keys {
		filtered.Delete(key)
	}
	return filtered
}

func (o *Options) clone() *Options {
	c := &Options{values: make(map[string]any, len(o.values))}
	for _, key := range o.keys {
		c.Set(key, o.values[key])
	}
	return c
}
