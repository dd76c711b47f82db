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

package analyzer

import (
	"log/slog"
	"time"

	"fillmore-labs.com/structlint/analyzer/level"
	"fillmore-labs.com/structlint/internal/config"
)

// Option configures specific behavior of a [New] structlint analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.generated = o.generated
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxFunctionLength is an [Option] to configure the maximum number of lines of a function.
func WithMaxFunctionLength(lines int) Option {
	return thresholdOption{name: config.OptMaxFunctionLength, value: lines}
}

// WithMaxNestingDepth is an [Option] to configure the maximum nesting depth of control structures.
func WithMaxNestingDepth(depth int) Option {
	return thresholdOption{name: config.OptMaxNestingDepth, value: depth}
}

// WithMaxComplexity is an [Option] to configure the maximum cyclomatic complexity of a function.
func WithMaxComplexity(complexity int) Option {
	return thresholdOption{name: config.OptMaxComplexity, value: complexity}
}

type thresholdOption struct {
	name  string
	value int
}

func (o thresholdOption) apply(r *runOptions) {
	r.thresholds[o.name] = o.value
}

func (o thresholdOption) LogAttr() slog.Attr {
	return slog.Int(o.name, o.value)
}

// WithMinSeverity is an [Option] to configure the lowest reported severity.
func WithMinSeverity(severity level.Severity) Option { return severityOption{severity: severity} }

type severityOption struct{ severity level.Severity }

func (o severityOption) apply(r *runOptions) {
	r.minSeverity = o.severity
}

func (o severityOption) LogAttr() slog.Attr {
	return slog.Any("min-severity", o.severity)
}

// WithTimeout is an [Option] to configure the per-file parse budget.
func WithTimeout(timeout time.Duration) Option { return timeoutOption{timeout: timeout} }

type timeoutOption struct{ timeout time.Duration }

func (o timeoutOption) apply(r *runOptions) {
	r.timeout = o.timeout
}

func (o timeoutOption) LogAttr() slog.Attr {
	return slog.Duration("timeout", o.timeout)
}
