// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package defaults loads option defaults from a TOML, YAML or HCL file and
// turns them into command-line arguments.
//
// A defaults file has a single options table keyed by option name:
//
//	[options]
//	name = "Noah"
//	verbose = true
//	tag = ["a", "b"]
//	define = { color = "blue" }
//
// In HCL the table is an options block.
//
// The arguments are meant to be placed before the real command line, so
// explicit flags win for single-valued options.
package defaults

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/optbind/pkg/getopt"
	"gopkg.in/yaml.v3"
)

// File is a loaded defaults file.
type File struct {
	Path    string         `toml:"-" yaml:"-"`
	Options map[string]any `toml:"options" yaml:"options"`
}

// Load reads the defaults file at path. The format is chosen by extension:
// .toml, .yaml, .yml or .hcl.
func Load(path string) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".hcl":
		opts, err := loadHCL(path)
		if err != nil {
			return nil, err
		}
		f.Options = opts
	default:
		return nil, fmt.Errorf("%s: unsupported defaults file type %q", path, ext)
	}
	f.Path = path
	return &f, nil
}

// Find looks for any of names in startDir and then in each parent directory.
// Within a directory names are tried in order. It returns an error wrapping
// os.ErrNotExist when nothing is found.
func Find(startDir string, names ...string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no %s found above %s: %w", strings.Join(names, " or "), startDir, os.ErrNotExist)
}

// Args returns the options as arguments, sorted by option name. A true
// boolean becomes a bare flag and a false one is skipped. A list gives one
// argument per element and a table gives one "key=value" argument per key.
func (f *File) Args() ([]string, error) {
	var args []string
	for _, name := range slices.Sorted(maps.Keys(f.Options)) {
		flag := getopt.Flag(name)
		switch v := f.Options[name].(type) {
		case bool:
			if v {
				args = append(args, flag)
			}
		case []any:
			for _, elem := range v {
				s, err := scalar(elem)
				if err != nil {
					return nil, f.valueError(name, err)
				}
				args = append(args, flag+"="+s)
			}
		case map[string]any:
			for _, key := range slices.Sorted(maps.Keys(v)) {
				s, err := scalar(v[key])
				if err != nil {
					return nil, f.valueError(name, err)
				}
				args = append(args, flag+"="+key+"="+s)
			}
		default:
			s, err := scalar(v)
			if err != nil {
				return nil, f.valueError(name, err)
			}
			args = append(args, flag+"="+s)
		}
	}
	return args, nil
}

func (f *File) valueError(name string, err error) error {
	return fmt.Errorf("%s: option %q: %w", f.Path, name, err)
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
