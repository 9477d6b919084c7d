// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"tailscale.com/types/logger"
	"tailscale.com/util/set"
)

// SyntaxError is returned by Parse when an argument matches a registered
// option but is malformed for it.
type SyntaxError struct {
	Arg    string // The argument as written on the command line
	Option string // The option it matched, e.g. "-n"
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Option, e.Reason)
}

// DuplicateError is returned by Add when a prototype or one of its names is
// already registered.
type DuplicateError struct {
	Prototype string
	Name      string // Empty when the whole prototype is a duplicate
	Existing  string // Prototype that already owns Name
}

func (e *DuplicateError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("prototype %q already registered", e.Prototype)
	}
	return fmt.Sprintf("prototype %q: name %q already registered by %q", e.Prototype, e.Name, e.Existing)
}

// Option is a registered option.
type Option struct {
	Prototype   string
	Names       []string
	Kind        ValueKind
	Description string

	action func(value string) error
}

// Set holds registered options and tokenizes arguments against them.
type Set struct {
	// Logf, if non-nil, receives a line for every matched occurrence.
	Logf logger.Logf

	opts       []*Option
	byName     map[string]*Option
	prototypes set.Set[string]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{
		byName:     make(map[string]*Option),
		prototypes: make(set.Set[string]),
	}
}

// Add registers prototype. action is called with the raw value of every
// occurrence during Parse; an error it returns is collected and Parse
// carries on with the next argument.
func (s *Set) Add(prototype, description string, action func(value string) error) (*Option, error) {
	if action == nil {
		return nil, fmt.Errorf("prototype %q: nil action", prototype)
	}
	names, kind, err := ParsePrototype(prototype)
	if err != nil {
		return nil, err
	}
	if s.prototypes.Contains(prototype) {
		return nil, &DuplicateError{Prototype: prototype}
	}
	seen := make(set.Set[string], len(names))
	for _, name := range names {
		if seen.Contains(name) {
			return nil, &PrototypeError{Prototype: prototype, Reason: fmt.Sprintf("name %q repeated", name)}
		}
		seen.Add(name)
		if existing, ok := s.byName[name]; ok {
			return nil, &DuplicateError{Prototype: prototype, Name: name, Existing: existing.Prototype}
		}
	}

	opt := &Option{
		Prototype:   prototype,
		Names:       names,
		Kind:        kind,
		Description: description,
		action:      action,
	}
	s.opts = append(s.opts, opt)
	s.prototypes.Add(prototype)
	for _, name := range names {
		s.byName[name] = opt
	}
	return opt, nil
}

// Lookup returns the option registered under name (without prefix).
func (s *Set) Lookup(name string) (Option, bool) {
	opt, ok := s.byName[name]
	if !ok {
		return Option{}, false
	}
	return opt.clone(), true
}

// Options returns the registered options in registration order.
func (s *Set) Options() []Option {
	out := make([]Option, len(s.opts))
	for i, opt := range s.opts {
		out[i] = opt.clone()
	}
	return out
}

func (o *Option) clone() Option {
	c := *o
	c.Names = slices.Clone(o.Names)
	c.action = nil
	return c
}

func (s *Set) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// Parse walks args once, invoking the action of every matched option.
// Arguments that match nothing are returned in order, as is everything after
// a "--" separator. Syntax errors and action errors do not stop the walk;
// they are joined into the returned error.
func (s *Set) Parse(args []string) (remaining []string, err error) {
	remaining = []string{}
	var errs []error

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			remaining = append(remaining, args[i+1:]...)
			break
		}

		prefix, name, value, hasValue, ok := splitArg(arg)
		if !ok {
			remaining = append(remaining, arg)
			continue
		}

		if opt, found := s.byName[name]; found {
			switch opt.Kind {
			case NoValue:
				if hasValue {
					errs = append(errs, &SyntaxError{Arg: arg, Option: Flag(name), Reason: fmt.Sprintf("does not take a value (got %q)", value)})
					continue
				}
			case RequiredValue:
				if !hasValue {
					if i+1 >= len(args) {
						errs = append(errs, &SyntaxError{Arg: arg, Option: Flag(name), Reason: "missing required value"})
						continue
					}
					value = args[i+1]
					i++ // the value was the next argument
				}
			}
			if err := s.invoke(opt, name, value); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		if prefix == "-" {
			handled, err := s.parseBundle(arg[1:])
			if err != nil {
				errs = append(errs, err)
			}
			if handled {
				continue
			}
		}

		s.logf("getopt: unmatched argument %q", arg)
		remaining = append(remaining, arg)
	}

	return remaining, errors.Join(errs...)
}

// parseBundle handles "-nValue" for a single-letter value option and "-abc"
// for single-letter flags. It reports false, touching nothing, when rest is
// not a valid bundle.
func (s *Set) parseBundle(rest string) (bool, error) {
	r, size := utf8.DecodeRuneInString(rest)
	first, ok := s.byName[string(r)]
	if !ok {
		return false, nil
	}
	if first.Kind != NoValue {
		return true, s.invoke(first, string(r), rest[size:])
	}

	flags := make([]*Option, 0, len(rest))
	names := make([]string, 0, len(rest))
	for _, r := range rest {
		opt, ok := s.byName[string(r)]
		if !ok || opt.Kind != NoValue {
			return false, nil
		}
		flags = append(flags, opt)
		names = append(names, string(r))
	}
	var errs []error
	for i, opt := range flags {
		if err := s.invoke(opt, names[i], ""); err != nil {
			errs = append(errs, err)
		}
	}
	return true, errors.Join(errs...)
}

func (s *Set) invoke(opt *Option, name, value string) error {
	s.logf("getopt: %s matched %q value=%q", Flag(name), opt.Prototype, value)
	return opt.action(value)
}

// splitArg recognises an option-shaped argument and splits off an attached
// value at the first "=" or ":".
func splitArg(arg string) (prefix, name, value string, hasValue, ok bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		prefix = "--"
	case strings.HasPrefix(arg, "-"):
		prefix = "-"
	case strings.HasPrefix(arg, "/"):
		prefix = "/"
	default:
		return "", "", "", false, false
	}
	rest := arg[len(prefix):]
	name = rest
	if idx := strings.IndexAny(rest, "=:"); idx != -1 {
		name, value, hasValue = rest[:idx], rest[idx+1:], true
	}
	if name == "" {
		return "", "", "", false, false
	}
	return prefix, name, value, hasValue, true
}

// WriteOptionDescriptions writes one aligned line per option, plus
// continuation lines for multi-line descriptions.
func (s *Set) WriteOptionDescriptions(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, opt := range s.opts {
		lines := strings.Split(opt.Description, "\n")
		fmt.Fprintf(tw, "  %s\t%s\n", formatOption(opt.Names, opt.Kind), lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(tw, "  \t%s\n", line)
		}
	}
	return tw.Flush()
}
