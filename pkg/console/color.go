// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode selects whether Manager output is coloured.
type ColorMode int

const (
	// ColorAuto colours output written to a terminal, unless NO_COLOR is
	// set or TERM is empty or "dumb".
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var isTerminalFn = term.IsTerminal

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isTerminalFn(int(f.Fd()))
}

type palette struct {
	errPrefix *color.Color
	header    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		errPrefix: color.New(color.FgRed, color.Bold),
		header:    color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.errPrefix, p.header} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}
