// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func runDemo(t *testing.T, args string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(strings.Fields(args), &out, &errOut)
	return code, out.String(), errOut.String()
}

// isolate keeps defaults discovery away from the real working tree.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("OPTDEMO_DEFAULTS", "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunGreets(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runDemo(t, "--name Noah -a 41 -t one -t:two -D color=blue -Dsize=3 --loud")
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}
	want := "HELLO, NOAH!\n" +
		"You are 41 years old.\n" +
		"Tags: one, two\n" +
		"color = blue\n" +
		"size = 3\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{name: "missing name", args: "-a 3", want: "optdemo: error parsing arguments: missing required options: -n\n"},
		{name: "bad int", args: "-n x -a old", want: `optdemo: error parsing arguments: -a: invalid int value "old"`},
		{name: "stray argument", args: "-n x stray", want: "optdemo: error parsing arguments: unrecognized arguments: stray\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			code, stdout, stderr := runDemo(t, tt.args)
			if code != 2 {
				t.Errorf("run() = %d, want 2", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr does not contain %q:\n%s", tt.want, stderr)
			}
			if !strings.Contains(stderr, "Usage: optdemo [OPTIONS]+") {
				t.Errorf("stderr has no usage:\n%s", stderr)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runDemo(t, "--help")
	if code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	for _, want := range []string{"Usage: optdemo [OPTIONS]+", "-n, --name=VALUE", "may be repeated"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("help does not contain %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "error parsing arguments") {
		t.Errorf("help reported an error:\n%s", stderr)
	}
}

func TestRunDefaults(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "custom.toml")
		writeFile(t, path, "[options]\nname = \"File\"\ntag = [\"x\"]\n")

		code, stdout, stderr := runDemo(t, "--defaults "+path+" -t y")
		if code != 0 {
			t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
		}
		if diff := cmp.Diff("Hello, File!\nTags: x, y\n", stdout); diff != "" {
			t.Errorf("stdout mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("env", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "custom.yaml")
		writeFile(t, path, "options:\n  name: Env\n  loud: true\n")
		t.Setenv("OPTDEMO_DEFAULTS", path)

		code, stdout, stderr := runDemo(t, "")
		if code != 0 {
			t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
		}
		if stdout != "HELLO, ENV!\n" {
			t.Errorf("stdout = %q", stdout)
		}
	})
	t.Run("discovered", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "optdemo.yml"), "options:\n  name: Found\n")
		sub := filepath.Join(dir, "sub")
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatal(err)
		}
		t.Chdir(sub)

		code, stdout, stderr := runDemo(t, "--name Cli")
		if code != 0 {
			t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
		}
		if stdout != "Hello, Cli!\n" {
			t.Errorf("stdout = %q, want the command line to win", stdout)
		}
	})
	t.Run("missing explicit file", func(t *testing.T) {
		dir := isolate(t)
		code, _, stderr := runDemo(t, "--defaults "+filepath.Join(dir, "nope.toml")+" -n x")
		if code != 2 {
			t.Errorf("run() = %d, want 2", code)
		}
		if !strings.Contains(stderr, "optdemo: failed to load defaults:") {
			t.Errorf("stderr = %q", stderr)
		}
	})
}

func TestRunVerboseAndWait(t *testing.T) {
	isolate(t)
	var slept time.Duration
	orig := sleep
	t.Cleanup(func() { sleep = orig })
	sleep = func(d time.Duration) { slept = d }

	code, _, stderr := runDemo(t, "--verbose --no-color -n x -w 2s")
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}
	if slept != 2*time.Second {
		t.Errorf("slept %v, want 2s", slept)
	}
	for _, want := range []string{"optdemo: console: optdemo: outcome success\n", "optdemo: waiting 2s\n"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr does not contain %q:\n%s", want, stderr)
		}
	}
}
