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

package gclplugin

import (
	"errors"
	"fmt"
	"time"

	structlint "fillmore-labs.com/structlint/analyzer"
	"fillmore-labs.com/structlint/analyzer/level"
	"fillmore-labs.com/structlint/internal/config"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// MaxFunctionLength sets the maximum number of lines of a function.
	MaxFunctionLength *int `json:"max-function-length,omitzero"`
	// MaxNestingDepth sets the maximum nesting depth of control structures.
	MaxNestingDepth *int `json:"max-nesting-depth,omitzero"`
	// MaxComplexity sets the maximum cyclomatic complexity of a function.
	MaxComplexity *int `json:"max-complexity,omitzero"`
	// MinSeverity sets the lowest reported severity.
	MinSeverity *level.Severity `json:"min-severity,omitzero"`
	// Timeout sets the per-file parse budget, e.g. "5s".
	Timeout *Duration `json:"timeout,omitzero"`
}

// Duration is a [time.Duration] decoded from its string form.
type Duration time.Duration

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(v)

	return nil
}

// Options converts [Settings] into a list of [structlint.Option] for the structlint analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []structlint.Option {
	var opts []structlint.Option

	opts = appendOption(opts, s.MaxFunctionLength, structlint.WithMaxFunctionLength)
	opts = appendOption(opts, s.MaxNestingDepth, structlint.WithMaxNestingDepth)
	opts = appendOption(opts, s.MaxComplexity, structlint.WithMaxComplexity)
	opts = appendOption(opts, s.MinSeverity, structlint.WithMinSeverity)
	opts = appendOption(opts, s.Timeout, func(d Duration) structlint.Option {
		return structlint.WithTimeout(time.Duration(d))
	})

	return opts
}

// Validate reports settings the analyzer would reject on every run.
func (s Settings) Validate() error {
	thresholds := make(map[string]any)
	for name, value := range map[string]*int{
		config.OptMaxFunctionLength: s.MaxFunctionLength,
		config.OptMaxNestingDepth:   s.MaxNestingDepth,
		config.OptMaxComplexity:     s.MaxComplexity,
	} {
		if value != nil {
			thresholds[name] = *value
		}
	}

	_, err := config.Resolve(thresholds)

	if s.Timeout != nil && *s.Timeout <= 0 {
		err = errors.Join(err, fmt.Errorf("%w timeout: expected a positive duration, got %s",
			config.ErrInvalidOption, time.Duration(*s.Timeout)))
	}

	return err
}

// appendOption appends a non-nil setting to a [structlint.Option] list.
func appendOption[T any](opts []structlint.Option, value *T, constructor func(T) structlint.Option) []structlint.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
