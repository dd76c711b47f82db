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

// Package engine runs rule sets over source files and aggregates their issues.
//
// Per-file analysis shares no mutable state, so files of a batch are analyzed concurrently.
// Failures local to one rule or one file are reported as diagnostic issues; only a batch
// without any usable input is an error.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/parser"
	"fillmore-labs.com/structlint/internal/rule"
)

// ErrNoInput is returned for a batch without files or without any source text.
var ErrNoInput = errors.New("no input files")

// LineRange is an inclusive range of 1-based lines.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether the line lies within the range.
func (r LineRange) Contains(line int) bool {
	return r.Start <= line && line <= r.End
}

// FileChange is a changed source file handed to the engine.
type FileChange struct {
	Path       string      `json:"file_path"`
	Language   string      `json:"language,omitempty"` // explicit tag, detected from the path when empty
	AddedLines []LineRange `json:"added_lines,omitempty"`
	Source     []byte      `json:"-"`
}

// AnalysisResult holds the issues of one file.
type AnalysisResult struct {
	Path       string        `json:"file_path"`
	Language   lang.Language `json:"language"`
	Issues     []issue.Issue `json:"issues"`
	Partial    bool          `json:"partial,omitempty"` // the tree was recovered from syntax errors
	Skipped    bool          `json:"skipped,omitempty"` // no rules ran, see the diagnostic issue
	SourceHash uint64        `json:"source_hash"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Engine analyzes files with the rule set of their language.
type Engine struct {
	parser    parser.Parser
	rules     rule.Sets
	languages config.Languages
	logger    *slog.Logger
	tracer    oteltrace.Tracer
	timeout   time.Duration
	workers   int
}

// New creates an engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	Options(opts).apply(&o)

	if o.parser == nil {
		o.parser = parser.New()
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return &Engine{
		parser:    o.parser,
		rules:     o.rules,
		languages: o.languages,
		logger:    o.logger,
		tracer:    otel.Tracer("fillmore-labs.com/structlint/internal/engine"),
		timeout:   o.timeout,
		workers:   o.workers,
	}
}

// Excluded reports whether a file matches an exclusion pattern.
func (e *Engine) Excluded(path string) bool {
	return e.languages.Excluded(path)
}

func (e *Engine) log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	e.logger.LogAttrs(ctx, level, msg, attrs...)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
