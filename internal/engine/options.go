// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package engine

import (
	"log/slog"
	"runtime"
	"time"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/parser"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/rules"
)

// DefaultTimeout is the default per-file parse budget.
const DefaultTimeout = 10 * time.Second

// Option configures an [Engine].
type Option interface {
	apply(o *options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	for _, opt := range o {
		if opt == nil {
			continue
		}
		as = append(as, opt.LogAttr())
	}

	return slog.GroupValue(as...)
}

func (o Options) apply(opts *options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(opts)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

type options struct {
	parser    parser.Parser
	rules     rule.Sets
	languages config.Languages
	logger    *slog.Logger
	timeout   time.Duration
	workers   int
}

func defaultOptions() options {
	return options{
		rules:     rules.Default(),
		languages: config.DefaultLanguages(),
		timeout:   DefaultTimeout,
		workers:   runtime.NumCPU(),
	}
}

// WithParser is an [Option] to replace the tree-sitter parser.
func WithParser(p parser.Parser) Option { return parserOption{parser: p} }

type parserOption struct{ parser parser.Parser }

func (o parserOption) apply(opts *options) { opts.parser = o.parser }

func (o parserOption) LogAttr() slog.Attr {
	return slog.String("parser", typeName(o.parser))
}

// WithRules is an [Option] to replace the built-in rule sets.
func WithRules(sets rule.Sets) Option { return rulesOption{sets: sets} }

type rulesOption struct{ sets rule.Sets }

func (o rulesOption) apply(opts *options) { opts.rules = o.sets }

func (o rulesOption) LogAttr() slog.Attr {
	return slog.Int("ruleSets", len(o.sets))
}

// WithLanguages is an [Option] to set the resolved per-language configuration.
func WithLanguages(languages config.Languages) Option { return languagesOption{languages: languages} }

type languagesOption struct{ languages config.Languages }

func (o languagesOption) apply(opts *options) { opts.languages = o.languages }

func (o languagesOption) LogAttr() slog.Attr {
	return slog.Any("exclude", o.languages.Exclusions())
}

// WithLogger is an [Option] to set the logger. The default is [slog.Default].
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(opts *options) { opts.logger = o.logger }

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}

// WithTimeout is an [Option] to set the per-file parse budget.
// Non-positive values select [DefaultTimeout].
func WithTimeout(timeout time.Duration) Option { return timeoutOption{timeout: timeout} }

type timeoutOption struct{ timeout time.Duration }

func (o timeoutOption) apply(opts *options) {
	if o.timeout > 0 {
		opts.timeout = o.timeout
	}
}

func (o timeoutOption) LogAttr() slog.Attr {
	return slog.Duration("timeout", o.timeout)
}

// WithWorkers is an [Option] to bound the number of files analyzed concurrently.
// Non-positive values select the number of CPUs.
func WithWorkers(workers int) Option { return workersOption{workers: workers} }

type workersOption struct{ workers int }

func (o workersOption) apply(opts *options) {
	if o.workers > 0 {
		opts.workers = o.workers
	}
}

func (o workersOption) LogAttr() slog.Attr {
	return slog.Int("workers", o.workers)
}
