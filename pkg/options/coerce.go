// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ParseFunc converts the raw value of one option occurrence.
type ParseFunc[T any] func(raw string) (T, error)

// String returns raw unchanged.
func String(raw string) (string, error) {
	return raw, nil
}

// Int parses a base 10 int.
func Int(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q: %w", raw, numErr(err))
	}
	return v, nil
}

// Int64 parses a base 10 int64.
func Int64(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int value %q: %w", raw, numErr(err))
	}
	return v, nil
}

// Uint parses a base 10 uint.
func Uint(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid uint value %q: %w", raw, numErr(err))
	}
	return uint(v), nil
}

// Float64 parses a float64.
func Float64(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value %q: %w", raw, numErr(err))
	}
	return v, nil
}

// Duration parses a time.Duration such as "30s" or "1h15m".
func Duration(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	return d, nil
}

// numErr unwraps strconv's NumError so messages don't repeat the input.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
