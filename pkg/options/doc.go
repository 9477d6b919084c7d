// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options binds command-line options to typed variables.
//
// Options are declared on a Set (or a RequiredSet, which also tracks
// options that must be given). Each declaration returns the variable that
// Parse fills in:
//
//	set := options.NewRequiredSet()
//	name := options.AddRequiredVariable(set, "n|name", "Who to greet", options.String)
//	age := options.AddVariable(set, "a|age", "Age in years", options.Int)
//	tags := options.AddVariableList(set, "t|tag", "Repeatable tag", options.String)
//	env := options.AddVariableMatrix(set, "D", "KEY=VALUE pairs", options.String)
//	verbose := options.AddSwitch(set, "v|verbose", "Verbose output")
//
//	rest, err := set.Parse(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if missing := set.MissingVariables(); len(missing) > 0 {
//	    log.Fatalf("missing %v", missing)
//	}
//	fmt.Println(name.Value(), age.Value(), tags.Values(), env.Matrix(), verbose.Enabled(), rest)
//
// Value-taking declarations given a bare prototype such as "n|name" register
// it as "n|name=" so a value is always required; pass a trailing ":" to make
// the value optional instead.
//
// All declarations must happen before the first Parse. Declaring afterwards,
// reusing a prototype or an option name, or passing a malformed prototype
// panics with a *ConfigurationError.
//
// A conversion failure does not stop the pass: the failing occurrence is
// skipped, later occurrences still bind, and Parse returns every failure
// joined into one error.
//
// Sets and the variables they fill are not safe for concurrent use; Parse
// must not run concurrently with itself or with readers of bound values.
package options
