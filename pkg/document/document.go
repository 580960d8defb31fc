// Package document provides the ordered, nested key/value tree that booster
// descriptors are read into and that generated booster.yaml and
// metadata.yaml files are written from.
//
// A value in the tree is one of:
//   - a scalar (string, bool, integer and float kinds, or nil)
//   - a *Map (ordered mapping with string keys)
//   - a []any sequence of values
//
// Mappings keep insertion order. Replacing the value of an existing key
// keeps the key's position.
package document

import (
	"fmt"
	"slices"

	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Map is an ordered mapping from string keys to document values.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty ordered mapping.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Has reports whether key is present (possibly with a nil value).
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Get returns the value stored at key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores value at key and returns the map for chaining.
// Plain Go maps and yaml.MapSlice values are converted to *Map.
func (m *Map) Set(key string, value any) *Map {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = normalize(value)
	return m
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// GetMap returns the value at key when it is a mapping.
func (m *Map) GetMap(key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Map)
	return sub, ok && sub != nil
}

// GetString returns the value at key when it is a string.
func (m *Map) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := &Map{
		keys:   slices.Clone(m.keys),
		values: make(map[string]any, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = CloneValue(v)
	}
	return out
}

// SetAtPath stores value at the nested location named by path, creating
// intermediate mappings as needed. An intermediate key holding a
// non-mapping value is replaced by a new mapping.
func (m *Map) SetAtPath(path []string, value any) error {
	if len(path) == 0 {
		return &errors.ValidationError{Field: "path", Message: "cannot be empty"}
	}
	m.SetPath(value, path[0], path[1:]...)
	return nil
}

// SetPath is SetAtPath for a path known at compile time. It returns m for
// chaining.
func (m *Map) SetPath(value any, key string, keys ...string) *Map {
	current := m
	for _, segment := range keys {
		next, ok := current.GetMap(key)
		if !ok {
			next = NewMap()
			current.Set(key, next)
		}
		current, key = next, segment
	}
	current.Set(key, value)
	return m
}

// ScalarString renders a scalar value as a string. Mappings, sequences
// and nil are not string-like and report false.
func ScalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil, *Map, []any:
		return "", false
	case string:
		return s, true
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(s), true
	default:
		return "", false
	}
}

// CloneValue returns a deep copy of a document value.
func CloneValue(v any) any {
	switch val := v.(type) {
	case *Map:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return val
	}
}
