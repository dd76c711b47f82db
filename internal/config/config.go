// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the validated, immutable rule configuration of an analysis run.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
)

// ErrInvalidOption is wrapped by all configuration validation errors.
var ErrInvalidOption = errors.New("invalid option")

// Check represents a boolean toggle of a rule or rule group.
type Check uint16

const (
	// CheckResourceLeaks enables acquisition/release pairing in C and C++.
	CheckResourceLeaks Check = 1 << iota

	// RequireErrorHandling flags catch blocks that swallow exceptions.
	RequireErrorHandling

	// CheckMemorySafety enables null-check heuristics for pointer parameters.
	CheckMemorySafety

	// CheckExceptionHandling flags catch-all exception clauses in Python.
	CheckExceptionHandling

	// EnforceTypeHints flags Python parameters without annotations.
	EnforceTypeHints

	// RequireDocstrings flags public Python functions and classes without docstrings.
	RequireDocstrings

	// LeakOwnershipTransfer treats returning or storing an acquired resource as a release.
	LeakOwnershipTransfer

	// ChangedLinesOnly keeps only issues located on added lines.
	ChangedLinesOnly
)

// Option names of the loosely typed configuration mapping.
const (
	OptMaxFunctionLength      = "max_function_length"
	OptMaxNestingDepth        = "max_nesting_depth"
	OptMaxComplexity          = "max_complexity"
	OptMinDocstringLines      = "min_docstring_lines"
	OptCheckResourceLeaks     = "check_resource_leaks"
	OptRequireErrorHandling   = "require_error_handling"
	OptCheckMemorySafety      = "check_memory_safety"
	OptCheckExceptionHandling = "check_exception_handling"
	OptEnforceTypeHints       = "enforce_type_hints"
	OptRequireDocstrings      = "require_docstrings"
	OptLeakOwnershipTransfer  = "leak_ownership_transfer"
	OptChangedLinesOnly       = "changed_lines_only"
)

var _checks = map[string]Check{
	OptCheckResourceLeaks:     CheckResourceLeaks,
	OptRequireErrorHandling:   RequireErrorHandling,
	OptCheckMemorySafety:      CheckMemorySafety,
	OptCheckExceptionHandling: CheckExceptionHandling,
	OptEnforceTypeHints:       EnforceTypeHints,
	OptRequireDocstrings:      RequireDocstrings,
	OptLeakOwnershipTransfer:  LeakOwnershipTransfer,
	OptChangedLinesOnly:       ChangedLinesOnly,
}

// RuleConfig is the resolved configuration for one language. It is immutable.
type RuleConfig struct {
	maxFunctionLength int
	maxNestingDepth   int
	maxComplexity     int
	minDocstringLines int
	checks            BitMask[Check]
}

const (
	DefaultMaxFunctionLength = 50
	DefaultMaxNestingDepth   = 4
	DefaultMaxComplexity     = 15
	DefaultMinDocstringLines = 5
)

// Default returns the default configuration.
func Default() RuleConfig {
	return RuleConfig{
		maxFunctionLength: DefaultMaxFunctionLength,
		maxNestingDepth:   DefaultMaxNestingDepth,
		maxComplexity:     DefaultMaxComplexity,
		minDocstringLines: DefaultMinDocstringLines,
		checks: NewBitMask(
			CheckResourceLeaks, RequireErrorHandling, CheckMemorySafety,
			CheckExceptionHandling, RequireDocstrings, LeakOwnershipTransfer,
		),
	}
}

// Resolve validates a loosely typed option mapping and applies it to the defaults.
func Resolve(options map[string]any) (RuleConfig, error) {
	return Default().With(options)
}

// With returns a copy of the configuration with the given options applied.
// Thresholds must be non-negative integers and toggles booleans; unknown options are rejected.
func (c RuleConfig) With(options map[string]any) (RuleConfig, error) {
	var errs []error

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := options[key]

		if check, ok := _checks[key]; ok {
			b, ok := value.(bool)
			if !ok {
				errs = append(errs, fmt.Errorf("%w %s: expected boolean, got %T", ErrInvalidOption, key, value))

				continue
			}
			c.checks = c.checks.With(check, b)

			continue
		}

		var threshold *int
		switch key {
		case OptMaxFunctionLength:
			threshold = &c.maxFunctionLength

		case OptMaxNestingDepth:
			threshold = &c.maxNestingDepth

		case OptMaxComplexity:
			threshold = &c.maxComplexity

		case OptMinDocstringLines:
			threshold = &c.minDocstringLines

		default:
			errs = append(errs, fmt.Errorf("%w %s: unknown option", ErrInvalidOption, key))

			continue
		}

		n, err := toThreshold(value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %s: %w", ErrInvalidOption, key, err))

			continue
		}
		*threshold = n
	}

	if err := errors.Join(errs...); err != nil {
		return RuleConfig{}, err
	}

	return c, nil
}

var (
	errNotInteger = errors.New("expected integer")
	errNegative   = errors.New("must not be negative")
)

func toThreshold(value any) (int, error) {
	var n int

	switch v := value.(type) {
	case int:
		n = v

	case int64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d out of range", errNotInteger, v)
		}
		n = int(v)

	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 {
			return 0, fmt.Errorf("%w, got %v", errNotInteger, v)
		}
		n = int(v)

	default:
		return 0, fmt.Errorf("%w, got %T", errNotInteger, value)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w, got %d", errNegative, n)
	}

	return n, nil
}

// MaxFunctionLength is the maximum number of lines of a function.
func (c RuleConfig) MaxFunctionLength() int { return c.maxFunctionLength }

// MaxNestingDepth is the maximum nesting depth of compound statements within a function.
func (c RuleConfig) MaxNestingDepth() int { return c.maxNestingDepth }

// MaxComplexity is the maximum cyclomatic complexity of a function.
func (c RuleConfig) MaxComplexity() int { return c.maxComplexity }

// MinDocstringLines is the minimum span of a function or class that requires a docstring.
func (c RuleConfig) MinDocstringLines() int { return c.minDocstringLines }

// Enabled reports whether a toggle is set.
func (c RuleConfig) Enabled(check Check) bool { return c.checks.Enabled(check) }

// LogValue implements [slog.LogValuer].
func (c RuleConfig) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int(OptMaxFunctionLength, c.maxFunctionLength),
		slog.Int(OptMaxNestingDepth, c.maxNestingDepth),
		slog.Int(OptMaxComplexity, c.maxComplexity),
	}

	var enabled []string
	for name, check := range _checks {
		if c.checks.Enabled(check) {
			enabled = append(enabled, name)
		}
	}
	slices.Sort(enabled)

	attrs = append(attrs, slog.String("checks", strings.Join(enabled, ",")))

	return slog.GroupValue(attrs...)
}
