// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"slices"

	"tailscale.com/util/mak"
)

// RequiredSet is a Set that also tracks options which must be given.
type RequiredSet struct {
	*Set

	required  []string // prototypes, in declaration order
	satisfied map[string]bool
}

// NewRequiredSet returns an empty RequiredSet.
func NewRequiredSet() *RequiredSet {
	return &RequiredSet{Set: NewSet()}
}

func (r *RequiredSet) declareRequired(prototype, description string, b binding) {
	r.declare(prototype, description, b, func() {
		r.satisfied[prototype] = true
	})
	r.required = append(r.required, prototype)
	mak.Set(&r.satisfied, prototype, false)
}

// Parse clears the satisfied state of every required option and then parses
// args like Set.Parse.
func (r *RequiredSet) Parse(args []string) ([]string, error) {
	for _, p := range r.required {
		r.satisfied[p] = false
	}
	return r.Set.Parse(args)
}

// MissingVariables returns the prototypes of required options that were not
// bound by the most recent Parse, in declaration order. Before the first
// Parse every required prototype is missing.
func (r *RequiredSet) MissingVariables() []string {
	var missing []string
	for _, p := range r.required {
		if !r.satisfied[p] {
			missing = append(missing, p)
		}
	}
	return missing
}

// Required returns the prototypes of every required option.
func (r *RequiredSet) Required() []string { return slices.Clone(r.required) }

// AddRequiredVariable declares a single-valued option that must be given.
func AddRequiredVariable[T any](r *RequiredSet, prototype, description string, parse ParseFunc[T]) *Variable[T] {
	v := &Variable[T]{prototype: valuePrototype(prototype), parse: parse}
	mustParseFunc(v.prototype, parse)
	r.declareRequired(v.prototype, description, v)
	return v
}

// AddRequiredVariableList declares a repeatable option that must be given
// at least once.
func AddRequiredVariableList[T any](r *RequiredSet, prototype, description string, parse ParseFunc[T]) *VariableList[T] {
	l := &VariableList[T]{prototype: valuePrototype(prototype), parse: parse}
	mustParseFunc(l.prototype, parse)
	r.declareRequired(l.prototype, description, l)
	return l
}

// AddRequiredVariableMatrix declares a KEY=VALUE option that must produce at
// least one entry. Occurrences without a separator do not count.
func AddRequiredVariableMatrix[T any](r *RequiredSet, prototype, description string, parse ParseFunc[T]) *VariableMatrix[T] {
	m := &VariableMatrix[T]{prototype: valuePrototype(prototype), parse: parse}
	mustParseFunc(m.prototype, parse)
	r.declareRequired(m.prototype, description, m)
	return m
}
