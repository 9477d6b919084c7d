// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/optbind/pkg/getopt"
	"tailscale.com/types/logger"
)

// Declarer is implemented by *Set and *RequiredSet. The declaring functions
// accept either.
type Declarer interface {
	declare(prototype, description string, b binding, onBound func())
}

// Set is a collection of declared options.
type Set struct {
	// Logf, if non-nil, receives a line per bound or ignored occurrence.
	Logf logger.Logf

	opts   *getopt.Set
	parsed bool
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{opts: getopt.NewSet()}
}

func (s *Set) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

func (s *Set) declare(prototype, description string, b binding, onBound func()) {
	if s.parsed {
		panic(&ConfigurationError{Prototype: prototype, Err: ErrDeclareAfterParse})
	}
	_, err := s.opts.Add(prototype, description, func(raw string) error {
		bound, err := b.bind(raw)
		if err != nil {
			return err
		}
		if !bound {
			s.logf("options: %s: ignored %q", prototype, raw)
			return nil
		}
		s.logf("options: %s: bound %q", prototype, raw)
		if onBound != nil {
			onBound()
		}
		return nil
	})
	if err != nil {
		panic(&ConfigurationError{Prototype: prototype, Err: err})
	}
}

// Parse binds every declared option found in args and returns the arguments
// that matched nothing. A non-nil error joins every TokenizationError and
// TypeMismatchError of the pass; occurrences that did not fail are bound
// regardless.
func (s *Set) Parse(args []string) ([]string, error) {
	s.parsed = true
	s.opts.Logf = s.Logf
	return s.opts.Parse(args)
}

// Parsed reports whether Parse has been called.
func (s *Set) Parsed() bool { return s.parsed }

// Options returns the declared options in declaration order.
func (s *Set) Options() []getopt.Option { return s.opts.Options() }

// WriteOptionDescriptions writes the help listing of every declared option.
func (s *Set) WriteOptionDescriptions(w io.Writer) error {
	return s.opts.WriteOptionDescriptions(w)
}

// valuePrototype makes a bare prototype require a value.
func valuePrototype(prototype string) string {
	if strings.HasSuffix(prototype, "=") || strings.HasSuffix(prototype, ":") {
		return prototype
	}
	return prototype + "="
}

func mustParseFunc[T any](prototype string, parse ParseFunc[T]) {
	if parse == nil {
		panic(&ConfigurationError{Prototype: prototype, Err: errNilParseFunc})
	}
}

// AddVariable declares a single-valued option. A bare prototype is given a
// trailing "=".
func AddVariable[T any](d Declarer, prototype, description string, parse ParseFunc[T]) *Variable[T] {
	v := &Variable[T]{prototype: valuePrototype(prototype), parse: parse}
	mustParseFunc(v.prototype, parse)
	d.declare(v.prototype, description, v, nil)
	return v
}

// AddSwitch declares a flag. The prototype must not carry a value marker.
func AddSwitch(d Declarer, prototype, description string) *Switch {
	if strings.HasSuffix(prototype, "=") || strings.HasSuffix(prototype, ":") {
		panic(&ConfigurationError{Prototype: prototype, Err: fmt.Errorf("switch prototype takes no value")})
	}
	s := &Switch{prototype: prototype}
	d.declare(prototype, description, s, nil)
	return s
}

// AddVariableList declares a repeatable option whose values accumulate.
func AddVariableList[T any](d Declarer, prototype, description string, parse ParseFunc[T]) *VariableList[T] {
	l := &VariableList[T]{prototype: valuePrototype(prototype), parse: parse}
	mustParseFunc(l.prototype, parse)
	d.declare(l.prototype, description, l, nil)
	return l
}

// AddVariableMatrix declares a repeatable KEY=VALUE option. parse converts
// the VALUE part.
func AddVariableMatrix[T any](d Declarer, prototype, description string, parse ParseFunc[T]) *VariableMatrix[T] {
	m := &VariableMatrix[T]{prototype: valuePrototype(prototype), parse: parse}
	mustParseFunc(m.prototype, parse)
	d.declare(m.prototype, description, m, nil)
	return m
}
