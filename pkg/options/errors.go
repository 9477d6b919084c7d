// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"errors"
	"fmt"

	"github.com/yeetrun/optbind/pkg/getopt"
)

// ErrDeclareAfterParse is wrapped by the ConfigurationError raised when an
// option is declared on a Set that has already parsed.
var ErrDeclareAfterParse = errors.New("declared after Parse")

var errNilParseFunc = errors.New("nil ParseFunc")

// ConfigurationError describes a declaration that can never work: a
// duplicate or malformed prototype, or a declaration after Parse. Declaring
// functions panic with it.
type ConfigurationError struct {
	Prototype string
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("options: cannot declare %q: %v", e.Prototype, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TokenizationError is returned by Parse for arguments that match an option
// but are malformed for it, such as a value option with no value.
type TokenizationError = getopt.SyntaxError

// TypeMismatchError is returned by Parse when an occurrence's value cannot
// be converted to the declared type.
type TypeMismatchError struct {
	Prototype string // e.g. "a|age="
	Option    string // e.g. "-a"
	Value     string // The raw value that failed
	Err       error  // The ParseFunc error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Option, e.Err)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

func newTypeMismatch(prototype, raw string, err error) *TypeMismatchError {
	return &TypeMismatchError{
		Prototype: prototype,
		Option:    getopt.PrimaryFlag(prototype),
		Value:     raw,
		Err:       err,
	}
}
