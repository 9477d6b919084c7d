// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"fmt"
	"strings"
)

// ValueKind describes whether an option takes a value.
type ValueKind int

const (
	// NoValue options are flags; their action receives an empty string.
	NoValue ValueKind = iota
	// RequiredValue options always receive a value, taking the next
	// argument when none is attached.
	RequiredValue
	// OptionalValue options only receive a value when it is attached.
	OptionalValue
)

func (k ValueKind) String() string {
	switch k {
	case NoValue:
		return "none"
	case RequiredValue:
		return "required"
	case OptionalValue:
		return "optional"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// PrototypeError is returned when a prototype string cannot be parsed.
type PrototypeError struct {
	Prototype string
	Reason    string
}

func (e *PrototypeError) Error() string {
	return fmt.Sprintf("invalid prototype %q: %s", e.Prototype, e.Reason)
}

// ParsePrototype splits a prototype into its names and value kind.
func ParsePrototype(prototype string) (names []string, kind ValueKind, err error) {
	body := prototype
	switch {
	case strings.HasSuffix(body, "="):
		kind = RequiredValue
		body = body[:len(body)-1]
	case strings.HasSuffix(body, ":"):
		kind = OptionalValue
		body = body[:len(body)-1]
	}
	if body == "" {
		return nil, 0, &PrototypeError{Prototype: prototype, Reason: "no option name"}
	}

	for _, name := range strings.Split(body, "|") {
		if name == "" {
			return nil, 0, &PrototypeError{Prototype: prototype, Reason: "empty name"}
		}
		if strings.ContainsAny(name, "=: \t\n") {
			return nil, 0, &PrototypeError{Prototype: prototype, Reason: fmt.Sprintf("name %q contains a separator or space", name)}
		}
		if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "/") {
			return nil, 0, &PrototypeError{Prototype: prototype, Reason: fmt.Sprintf("name %q must not carry a prefix", name)}
		}
		names = append(names, name)
	}
	return names, kind, nil
}

// Flag returns how name is written on the command line: "-n" for single
// letter names, "--name" otherwise.
func Flag(name string) string {
	if len([]rune(name)) == 1 {
		return "-" + name
	}
	return "--" + name
}

// PrimaryFlag returns the command-line form of the first name in prototype,
// or the prototype itself if it cannot be parsed.
func PrimaryFlag(prototype string) string {
	names, _, err := ParsePrototype(prototype)
	if err != nil {
		return prototype
	}
	return Flag(names[0])
}

// formatOption renders the left-hand column of the help listing, e.g.
// "-n, --name=VALUE".
func formatOption(names []string, kind ValueKind) string {
	flags := make([]string, len(names))
	for i, name := range names {
		flags[i] = Flag(name)
	}
	s := strings.Join(flags, ", ")
	switch kind {
	case RequiredValue:
		s += "=VALUE"
	case OptionalValue:
		s += "[=VALUE]"
	}
	return s
}
