// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package getopt is a prototype-based command-line tokenizer.
//
// Options are registered with a prototype string and an action. During Parse
// every occurrence of a registered option invokes its action with the raw
// string value; the caller decides what that value means.
//
// # Prototypes
//
// A prototype is one or more names separated by "|", optionally followed by a
// value marker:
//
//	"v|verbose"   flag, takes no value
//	"n|name="     value required
//	"c|color:"    value optional, only taken when attached
//
// # Argument Syntax
//
// Any name may be written with any of the prefixes "-", "--" or "/":
//
//	-n Noah       value in the next argument (required values only)
//	-n=Noah       value attached with "="
//	--name:Noah   value attached with ":"
//	-nNoah        single-letter value option bundled with its value
//	-abc          bundle of single-letter flags
//	--            stop option processing
//
// Arguments that do not match a registered option, including unknown
// options, are returned to the caller in order. Parse does not treat them as
// errors.
//
// A Set is not safe for concurrent use.
package getopt
