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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"
	"slices"
	"time"

	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/parser"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// AnalyzeFile parses one file and runs the rule set of its language.
// It always returns a result; degraded files carry a diagnostic issue.
func (e *Engine) AnalyzeFile(ctx context.Context, change FileChange) AnalysisResult {
	ctx, task := trace.NewTask(ctx, "AnalyzeFile")
	defer task.End()

	language := lang.Resolve(change.Language, change.Path)

	ctx, span := e.tracer.Start(ctx, "engine.AnalyzeFile", oteltrace.WithAttributes(
		attribute.String("file", change.Path),
		attribute.String("language", language.String()),
	))
	defer span.End()

	start := time.Now()

	result := AnalysisResult{
		Path:       change.Path,
		Language:   language,
		SourceHash: xxh3.Hash(change.Source),
	}

	result.Issues = e.analyze(ctx, change, &result)
	result.Elapsed = time.Since(start)

	span.SetAttributes(attribute.Int("issues", len(result.Issues)), attribute.Bool("partial", result.Partial))
	if result.Skipped {
		span.SetStatus(codes.Error, "file skipped")
	}

	e.log(ctx, slog.LevelDebug, "Analyzed file",
		slog.String("file", change.Path),
		slog.String("language", language.String()),
		slog.Int("issues", len(result.Issues)),
		slog.Duration("elapsed", result.Elapsed),
	)

	return result
}

func (e *Engine) analyze(ctx context.Context, change FileChange, result *AnalysisResult) []issue.Issue {
	path, language := change.Path, result.Language

	set, ok := e.rules.For(language)
	if !ok {
		e.log(ctx, slog.LevelWarn, "Unsupported language", slog.String("file", path), slog.String("language", language.String()))
		result.Skipped = true

		return []issue.Issue{unsupported(path, language)}
	}

	if err := ctx.Err(); err != nil {
		result.Skipped = true

		return []issue.Issue{e.parseFailure(ctx, path, language, err)}
	}

	tree, err := e.parse(ctx, change, language)
	if err != nil {
		result.Skipped = true

		return []issue.Issue{e.parseFailure(ctx, path, language, err)}
	}

	var diagnostics []issue.Issue

	if tree.Partial() {
		result.Partial = true
		diagnostics = append(diagnostics, issue.Diagnostic(path, issue.ParseError, issue.Info,
			"Source has syntax errors, analyzed the recovered tree"))
	}

	for _, inc := range tree.Inconsistencies() {
		if diag, ok := issue.Inconsistent(path, inc); ok {
			diagnostics = append(diagnostics, diag)
		}
	}

	cfg := e.languages.For(language)
	suppressions := issue.CollectSuppressions(tree)

	found := make([][]issue.Issue, 0, set.Len()+1)
	found = append(found, diagnostics)

	for _, r := range set.Rules() {
		if !r.Enabled(cfg) {
			continue
		}

		if requires := r.Requires(); len(requires) > 0 && !tree.Has(requires...) {
			e.log(ctx, slog.LevelDebug, "Rule skipped", slog.String("file", path), slog.String("rule", r.ID()))

			continue
		}

		issues := e.inspect(ctx, r, tree, cfg)
		issues = issue.Filter(issues, func(i issue.Issue) bool {
			return i.Category == issue.Internal || !suppressions.Suppressed(i) && changed(cfg, change.AddedLines, i)
		})

		found = append(found, issues)
	}

	return issue.Aggregate(found...)
}

// inspect runs a rule, converting a fault into a diagnostic issue tagged with the rule id.
func (e *Engine) inspect(ctx context.Context, r rule.Rule, tree *syntax.Tree, cfg config.RuleConfig) (issues []issue.Issue) {
	defer trace.StartRegion(ctx, r.ID()).End()

	start := time.Now()

	defer func() {
		p := recover()
		if p == nil {
			e.log(ctx, slog.LevelDebug, "Rule finished",
				slog.String("file", tree.Path()),
				slog.String("rule", r.ID()),
				slog.Int("issues", len(issues)),
				slog.Duration("elapsed", time.Since(start)),
			)

			return
		}

		e.log(ctx, slog.LevelWarn, "Rule fault",
			slog.String("file", tree.Path()),
			slog.String("rule", r.ID()),
			slog.Any("panic", p),
		)

		if err, ok := p.(error); ok {
			if diag, ok := issue.Inconsistent(tree.Path(), err); ok {
				issues = []issue.Issue{diag}

				return
			}
		}

		issues = []issue.Issue{issue.InternalError(tree.Path(), r.ID(), 0, "%s: rule %s failed: %v", issue.RuleInternalFault, r.ID(), p)}
	}()

	return slices.Clip(r.Inspect(ctx, tree, cfg))
}

// parse calls the parser with the per-file timeout. A parser ignoring cancellation is abandoned
// when the budget is exceeded.
func (e *Engine) parse(ctx context.Context, change FileChange, language lang.Language) (*syntax.Tree, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type parsed struct {
		tree *syntax.Tree
		err  error
	}

	done := make(chan parsed, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- parsed{err: fmt.Errorf("parser panic: %v", p)}
			}
		}()

		tree, err := e.parser.Parse(ctx, change.Path, change.Source, language)
		done <- parsed{tree: tree, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ctx.Err(), r.err)
		}

		if r.err == nil && r.tree == nil {
			return nil, errors.New("parser returned no tree")
		}

		return r.tree, r.err

	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Engine) parseFailure(ctx context.Context, path string, language lang.Language, err error) issue.Issue {
	attrs := []slog.Attr{slog.String("file", path), slog.String("language", language.String()), slog.Any("error", err)}

	switch {
	case context.Cause(ctx) != nil:
		e.log(ctx, slog.LevelInfo, "Analysis canceled", attrs...)

		return issue.Diagnostic(path, issue.AnalysisCanceled, issue.Info,
			fmt.Sprintf("Analysis canceled before completion: %v", context.Cause(ctx)))

	case errors.Is(err, context.DeadlineExceeded):
		e.log(ctx, slog.LevelWarn, "Parse timeout", append(attrs, slog.Duration("timeout", e.timeout))...)

		return issue.Diagnostic(path, issue.ParseTimeout, issue.Warning,
			fmt.Sprintf("Parser did not finish within %s, file skipped", e.timeout))

	case errors.Is(err, parser.ErrUnsupported):
		e.log(ctx, slog.LevelWarn, "Unsupported language", attrs...)

		return unsupported(path, language)

	default:
		e.log(ctx, slog.LevelWarn, "Parse failed", attrs...)

		return issue.Diagnostic(path, issue.ParseFailed, issue.Error, fmt.Sprintf("Can't parse file: %v", err))
	}
}

func unsupported(path string, language lang.Language) issue.Issue {
	return issue.Diagnostic(path, issue.UnsupportedLanguage, issue.Info,
		fmt.Sprintf("No rules for language %q, file skipped", language))
}

// changed reports whether an issue is kept by the changed-lines filter.
// Without line information every issue is kept.
func changed(cfg config.RuleConfig, added []LineRange, i issue.Issue) bool {
	if !cfg.Enabled(config.ChangedLinesOnly) || len(added) == 0 {
		return true
	}

	return slices.ContainsFunc(added, func(r LineRange) bool {
		return r.Contains(i.Line) || i.EndLine > 0 && r.Start <= i.EndLine && i.Line <= r.End
	})
}
