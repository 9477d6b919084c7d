// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console resolves a command line into exactly one outcome: help,
// a parse error, missing required options, or success.
package console

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/yeetrun/optbind/pkg/getopt"
	"github.com/yeetrun/optbind/pkg/options"
	"tailscale.com/types/logger"
)

const (
	DefaultHelpPrototype   = "h|?|help"
	DefaultHelpDescription = "Show this message and exit"
)

// Outcome is the result of Manager.Parse.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeHelp
	OutcomeParseError
	OutcomeMissingRequired
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeHelp:
		return "help"
	case OutcomeParseError:
		return "parse-error"
	case OutcomeMissingRequired:
		return "missing-required"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// UnexpectedArgsError reports arguments that matched no declared option.
type UnexpectedArgsError struct {
	Args []string
}

func (e *UnexpectedArgsError) Error() string {
	return fmt.Sprintf("unrecognized arguments: %s", strings.Join(e.Args, " "))
}

// MissingRequiredError reports required options that were not given.
type MissingRequiredError struct {
	Prototypes []string
}

func (e *MissingRequiredError) Error() string {
	flags := make([]string, len(e.Prototypes))
	for i, p := range e.Prototypes {
		flags[i] = getopt.PrimaryFlag(p)
	}
	return fmt.Sprintf("missing required options: %s", strings.Join(flags, ", "))
}

// Manager drives a parse-or-show-help workflow over a RequiredSet.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	name string
	set  *options.RequiredSet
	help *options.Switch

	helpPrototype   string
	helpDescription string
	defaults        []string
	color           ColorMode
	logf            logger.Logf
}

// Option configures a Manager.
type Option func(*Manager)

// WithHelp sets the help switch prototype and description.
func WithHelp(prototype, description string) Option {
	return func(m *Manager) {
		m.helpPrototype = prototype
		m.helpDescription = description
	}
}

// WithoutHelp disables the help switch.
func WithoutHelp() Option {
	return func(m *Manager) { m.helpPrototype = "" }
}

// WithDefaults prepends args to every parse, so options given on the
// command line override them.
func WithDefaults(args []string) Option {
	return func(m *Manager) { m.defaults = slices.Clone(args) }
}

// WithColor sets the colour mode.
func WithColor(mode ColorMode) Option {
	return func(m *Manager) { m.color = mode }
}

// WithLogf sets a logger for outcomes. It is also given to the set if the
// set has none.
func WithLogf(logf logger.Logf) Option {
	return func(m *Manager) { m.logf = logf }
}

// NewManager returns a Manager for set and, unless disabled, declares the
// help switch on it. It panics like the options declaring functions if the
// help prototype clashes with a declared option.
func NewManager(name string, set *options.RequiredSet, opts ...Option) *Manager {
	m := &Manager{
		name:            name,
		set:             set,
		helpPrototype:   DefaultHelpPrototype,
		helpDescription: DefaultHelpDescription,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.helpPrototype != "" {
		m.help = options.AddSwitch(set, m.helpPrototype, m.helpDescription)
	}
	if m.logf != nil && set.Logf == nil {
		set.Logf = m.logf
	}
	return m
}

// Name returns the name used in messages.
func (m *Manager) Name() string { return m.name }

// Help returns the help switch, or nil if help is disabled.
func (m *Manager) Help() *options.Switch { return m.help }

func (m *Manager) logfn(format string, args ...any) {
	if m.logf != nil {
		m.logf(format, args...)
	}
}

// Parse parses args and resolves the outcome. Help wins over every error,
// then tokenizer, conversion and unrecognized-argument errors, then missing
// required options. The returned error is nil for OutcomeSuccess and
// OutcomeHelp.
func (m *Manager) Parse(args []string) (Outcome, error) {
	all := args
	if len(m.defaults) > 0 {
		all = append(slices.Clone(m.defaults), args...)
	}
	rest, err := m.set.Parse(all)

	outcome, err := m.resolve(rest, err)
	m.logfn("console: %s: outcome %v", m.name, outcome)
	return outcome, err
}

func (m *Manager) resolve(rest []string, parseErr error) (Outcome, error) {
	if m.help != nil && m.help.Enabled() {
		return OutcomeHelp, nil
	}
	var errs []error
	if parseErr != nil {
		errs = append(errs, parseErr)
	}
	if len(rest) > 0 {
		errs = append(errs, &UnexpectedArgsError{Args: rest})
	}
	if len(errs) > 0 {
		return OutcomeParseError, errors.Join(errs...)
	}
	if missing := m.set.MissingVariables(); len(missing) > 0 {
		return OutcomeMissingRequired, &MissingRequiredError{Prototypes: missing}
	}
	return OutcomeSuccess, nil
}

// TryParseOrShowHelp parses args and reports whether the program should
// proceed. On help it writes the usage listing to w; on any error it writes
// "<name>: error parsing arguments: <details>" followed by the listing.
// w is never closed.
func (m *Manager) TryParseOrShowHelp(w io.Writer, args []string) bool {
	outcome, err := m.Parse(args)
	switch outcome {
	case OutcomeSuccess:
		return true
	case OutcomeHelp:
		m.WriteHelp(w)
	default:
		m.writeError(w, err)
		m.WriteHelp(w)
	}
	return false
}

func (m *Manager) writeError(w io.Writer, err error) {
	pal := newPalette(colorEnabled(m.color, w))
	detail := strings.ReplaceAll(err.Error(), "\n", "; ")
	fmt.Fprintf(w, "%s %s\n", pal.errPrefix.Sprintf("%s: error parsing arguments:", m.name), detail)
}

// WriteHelp writes the usage line and the option listing.
func (m *Manager) WriteHelp(w io.Writer) error {
	pal := newPalette(colorEnabled(m.color, w))
	fmt.Fprintf(w, "%s %s [OPTIONS]+\n\n", pal.header.Sprint("Usage:"), m.name)
	fmt.Fprintln(w, pal.header.Sprint("Options:"))
	return m.set.WriteOptionDescriptions(w)
}
