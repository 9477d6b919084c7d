// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// optdemo greets someone using typed, required and repeatable options.
//
//	optdemo --name Noah -a 41 -t one -t two -D color=blue --loud
//
// Defaults may come from a file named by --defaults or OPTDEMO_DEFAULTS, or
// from an optdemo.toml, .yaml, .yml or .hcl file in the working directory or
// one of its parents.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/shayne/yargs"
	"github.com/yeetrun/optbind/pkg/console"
	"github.com/yeetrun/optbind/pkg/defaults"
	"github.com/yeetrun/optbind/pkg/options"
)

var (
	defaultsFileNames = []string{"optdemo.toml", "optdemo.yaml", "optdemo.yml", "optdemo.hcl"}
	sleep             = time.Sleep
)

type globalFlagsParsed struct {
	Defaults string `flag:"defaults" help:"Read option defaults from this file (OPTDEMO_DEFAULTS)"`
	NoColor  bool   `flag:"no-color" help:"Disable coloured output"`
	Verbose  bool   `flag:"verbose" help:"Log every matched option"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "optdemo: ", 0)

	flags, args, err := parseGlobalFlags(args)
	if err != nil {
		logger.Printf("failed to parse global flags: %v", err)
		return 2
	}
	defaultArgs, err := loadDefaults(flags.Defaults)
	if err != nil {
		logger.Printf("failed to load defaults: %v", err)
		return 2
	}

	set := options.NewRequiredSet()
	name := options.AddRequiredVariable(set, "n|name", "Who to greet", options.String)
	age := options.AddVariable(set, "a|age", "Their age in years", options.Int)
	wait := options.AddVariable(set, "w|wait", "Pause before greeting, e.g. 1s", options.Duration)
	tags := options.AddVariableList(set, "t|tag", "Tag to mention\nmay be repeated", options.String)
	defines := options.AddVariableMatrix(set, "D|define", "KEY=VALUE detail to mention", options.String)
	loud := options.AddSwitch(set, "l|loud", "Shout the greeting")

	opts := []console.Option{console.WithDefaults(defaultArgs)}
	if flags.NoColor {
		opts = append(opts, console.WithColor(console.ColorNever))
	}
	if flags.Verbose {
		opts = append(opts, console.WithLogf(logger.Printf))
	}
	m := console.NewManager("optdemo", set, opts...)
	if !m.TryParseOrShowHelp(stderr, args) {
		if m.Help().Enabled() {
			return 0
		}
		return 2
	}

	if d := wait.Value(); d > 0 {
		logger.Printf("waiting %v", d)
		sleep(d)
	}

	greeting := fmt.Sprintf("Hello, %s!", name.Value())
	if loud.Enabled() {
		greeting = strings.ToUpper(greeting)
	}
	fmt.Fprintln(stdout, greeting)
	if a := age.Value(); a > 0 {
		fmt.Fprintf(stdout, "You are %d years old.\n", a)
	}
	if tags.Len() > 0 {
		fmt.Fprintf(stdout, "Tags: %s\n", strings.Join(tags.Values(), ", "))
	}
	for _, k := range defines.Keys() {
		v, _ := defines.Lookup(k)
		fmt.Fprintf(stdout, "%s = %s\n", k, v)
	}
	return 0
}

// loadDefaults returns the arguments from the defaults file, if any. An
// explicit path must exist; a discovered one is optional.
func loadDefaults(path string) ([]string, error) {
	if path == "" {
		path = os.Getenv("OPTDEMO_DEFAULTS")
	}
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = defaults.Find(cwd, defaultsFileNames...)
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
	}
	f, err := defaults.Load(path)
	if err != nil {
		return nil, err
	}
	return f.Args()
}
