// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"maps"
	"slices"
	"strings"

	"tailscale.com/util/mak"
)

// binding is implemented by every kind of bound option. bind reports
// whether raw changed the bound state; a false result with a nil error means
// the occurrence was deliberately ignored.
type binding interface {
	bind(raw string) (bool, error)
}

// Variable holds the last value given for a single-valued option.
type Variable[T any] struct {
	prototype string
	parse     ParseFunc[T]
	value     T
}

// Prototype returns the prototype the variable was registered under.
func (v *Variable[T]) Prototype() string { return v.prototype }

// Value returns the bound value, or the zero value of T if the option has
// not been given.
func (v *Variable[T]) Value() T { return v.value }

func (v *Variable[T]) bind(raw string) (bool, error) {
	val, err := v.parse(raw)
	if err != nil {
		return false, newTypeMismatch(v.prototype, raw, err)
	}
	v.value = val
	return true, nil
}

// Switch records whether a flag was given.
type Switch struct {
	prototype string
	enabled   bool
}

// Prototype returns the prototype the switch was registered under.
func (s *Switch) Prototype() string { return s.prototype }

// Enabled reports whether the flag was seen.
func (s *Switch) Enabled() bool { return s.enabled }

func (s *Switch) bind(string) (bool, error) {
	s.enabled = true
	return true, nil
}

// VariableList collects every value of a repeatable option in command-line
// order.
type VariableList[T any] struct {
	prototype string
	parse     ParseFunc[T]
	values    []T
}

// Prototype returns the prototype the list was registered under.
func (l *VariableList[T]) Prototype() string { return l.prototype }

// Values returns a copy of the collected values.
func (l *VariableList[T]) Values() []T { return slices.Clone(l.values) }

// Len returns the number of collected values.
func (l *VariableList[T]) Len() int { return len(l.values) }

func (l *VariableList[T]) bind(raw string) (bool, error) {
	val, err := l.parse(raw)
	if err != nil {
		return false, newTypeMismatch(l.prototype, raw, err)
	}
	l.values = append(l.values, val)
	return true, nil
}

// VariableMatrix collects KEY=VALUE (or KEY:VALUE) occurrences of a
// repeatable option into a map. Occurrences without a separator, or with an
// empty key, are ignored. Keys are trimmed of surrounding white space and a
// repeated key keeps the last value.
type VariableMatrix[T any] struct {
	prototype string
	parse     ParseFunc[T]
	matrix    map[string]T
	keys      []string
}

// Prototype returns the prototype the matrix was registered under.
func (m *VariableMatrix[T]) Prototype() string { return m.prototype }

// Matrix returns a copy of the collected entries.
func (m *VariableMatrix[T]) Matrix() map[string]T {
	if m.matrix == nil {
		return map[string]T{}
	}
	return maps.Clone(m.matrix)
}

// Lookup returns the value stored under key.
func (m *VariableMatrix[T]) Lookup(key string) (T, bool) {
	v, ok := m.matrix[key]
	return v, ok
}

// Keys returns the keys in the order they were first seen.
func (m *VariableMatrix[T]) Keys() []string { return slices.Clone(m.keys) }

// Len returns the number of entries.
func (m *VariableMatrix[T]) Len() int { return len(m.matrix) }

func (m *VariableMatrix[T]) bind(raw string) (bool, error) {
	key, rest, ok := cutKeyValue(raw)
	if !ok {
		return false, nil
	}
	val, err := m.parse(rest)
	if err != nil {
		return false, newTypeMismatch(m.prototype, raw, err)
	}
	if _, exists := m.matrix[key]; !exists {
		m.keys = append(m.keys, key)
	}
	mak.Set(&m.matrix, key, val)
	return true, nil
}

// cutKeyValue splits raw at the first "=" or ":".
func cutKeyValue(raw string) (key, value string, ok bool) {
	idx := strings.IndexAny(raw, "=:")
	if idx == -1 {
		return "", "", false
	}
	key = strings.TrimSpace(raw[:idx])
	if key == "" {
		return "", "", false
	}
	return key, raw[idx+1:], true
}
