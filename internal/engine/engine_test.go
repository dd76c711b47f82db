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

package engine_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"fillmore-labs.com/structlint/internal/config"
	. "fillmore-labs.com/structlint/internal/engine"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/rules/cfamily"
	"fillmore-labs.com/structlint/internal/syntax"
	. "fillmore-labs.com/structlint/internal/syntax/syntaxtest"
)

// fakeParser returns prepared trees by path. A nil tree blocks until the context is done.
type fakeParser map[string]*syntax.Tree

func (f fakeParser) Parse(ctx context.Context, path string, _ []byte, _ lang.Language) (*syntax.Tree, error) {
	tree, ok := f[path]
	if !ok {
		return nil, fmt.Errorf("no tree for %s", path)
	}

	if tree == nil {
		<-ctx.Done()

		return nil, ctx.Err()
	}

	return tree, nil
}

// missingReturn describes a function without a final return, reported on line 3.
func missingReturn(path string) *syntax.Tree {
	return Build(lang.CPP, path, CTranslationUnit(1, 3,
		CFunction(1, 3, "int", false, "f", []Spec{CParam(1, "int", "x", false)},
			CIf(2, 2, Ident(2, "x"), CReturn(2, CNumber(2, "1"))),
		),
	))
}

// emptyReturn describes a value-less return on line 2, optionally with a comment on the same line.
func emptyReturn(path string, comment ...Spec) *syntax.Tree {
	body := append([]Spec{CIf(2, 2, Ident(2, "x"), CReturn(2))}, comment...)
	body = append(body, CReturn(3, CNumber(3, "0")))

	return Build(lang.CPP, path, CTranslationUnit(1, 4,
		CFunction(1, 4, "int", false, "f", []Spec{CParam(1, "int", "x", false)}, body...),
	))
}

func change(path string) FileChange {
	return FileChange{Path: path, Source: []byte("int f(int x);\n")}
}

func ids(issues []issue.Issue) []string {
	result := make([]string, 0, len(issues))
	for _, i := range issues {
		result = append(result, i.RuleID)
	}

	return result
}

func newEngine(p fakeParser, opts ...Option) *Engine {
	return New(append([]Option{WithParser(p), WithLogger(slog.New(slog.DiscardHandler))}, opts...)...)
}

func TestAnalyzeBatchTimeout(t *testing.T) {
	t.Parallel()

	p := fakeParser{"slow.cpp": nil}
	changes := []FileChange{change("a.cpp"), change("b.cpp"), change("slow.cpp"), change("c.cpp"), change("d.cpp")}
	for _, c := range changes {
		if c.Path != "slow.cpp" {
			p[c.Path] = missingReturn(c.Path)
		}
	}

	e := newEngine(p, WithTimeout(50*time.Millisecond), WithWorkers(2))

	review, err := e.AnalyzeBatch(t.Context(), changes)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(review.Results) != len(changes) {
		t.Fatalf("Got %d results, expected %d", len(review.Results), len(changes))
	}

	for i, res := range review.Results {
		if res.Path != changes[i].Path {
			t.Errorf("Got result %d for %s, expected %s", i, res.Path, changes[i].Path)
		}

		want := []string{cfamily.MissingReturnID}
		if res.Path == "slow.cpp" {
			want = []string{issue.ParseTimeout}

			if !res.Skipped {
				t.Error("Expected the timed out file to be skipped")
			}
		}

		if got := ids(res.Issues); !slices.Equal(got, want) {
			t.Errorf("Got issues %v for %s, expected %v", got, res.Path, want)
		}
	}

	if review.FilesAnalyzed != 4 || review.FilesWithIssues != 5 || review.TotalFiles != 5 {
		t.Errorf("Got %d analyzed, %d with issues of %d, expected 4, 5 of 5",
			review.FilesAnalyzed, review.FilesWithIssues, review.TotalFiles)
	}

	if got := review.Summary.BySeverity[issue.Error]; got != 4 {
		t.Errorf("Got %d errors, expected 4", got)
	}
}

func TestAnalyzeBatchNoInput(t *testing.T) {
	t.Parallel()

	e := newEngine(fakeParser{})

	tests := []struct {
		name    string
		changes []FileChange
	}{
		{"Empty", nil},
		{"NoContent", []FileChange{{Path: "a.cpp"}, {Path: "b.py"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := e.AnalyzeBatch(t.Context(), tt.changes); !errors.Is(err, ErrNoInput) {
				t.Errorf("Got error %v, expected %v", err, ErrNoInput)
			}
		})
	}
}

func TestAnalyzeBatchCanceled(t *testing.T) {
	t.Parallel()

	e := newEngine(fakeParser{"a.cpp": missingReturn("a.cpp")})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	review, err := e.AnalyzeBatch(ctx, []FileChange{change("a.cpp")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, expected %v", err, context.Canceled)
	}

	if len(review.Results) != 1 {
		t.Fatalf("Got %d results, expected 1", len(review.Results))
	}

	if got, want := ids(review.Results[0].Issues), []string{issue.AnalysisCanceled}; !slices.Equal(got, want) {
		t.Errorf("Got issues %v, expected %v", got, want)
	}
}

func TestAnalyzeBatchExcluded(t *testing.T) {
	t.Parallel()

	languages, err := config.ResolveLanguages(map[string]any{config.OptExclude: []string{"vendor/**"}}, nil)
	if err != nil {
		t.Fatalf("Can't resolve config: %v", err)
	}

	e := newEngine(fakeParser{"a.cpp": missingReturn("a.cpp")}, WithLanguages(languages))

	review, err := e.AnalyzeBatch(t.Context(), []FileChange{change("a.cpp"), change("vendor/b.cpp")})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(review.Results) != 1 || review.Results[0].Path != "a.cpp" {
		t.Errorf("Got results %v, expected only a.cpp", review.Results)
	}

	if !slices.Equal(review.Excluded, []string{"vendor/b.cpp"}) {
		t.Errorf("Got excluded %v, expected vendor/b.cpp", review.Excluded)
	}
}

type panicking struct {
	rule.Base
	value any
}

func (p panicking) Inspect(context.Context, *syntax.Tree, config.RuleConfig) []issue.Issue {
	panic(p.value)
}

func TestRuleFault(t *testing.T) {
	t.Parallel()

	inconsistent := syntax.Inconsistency{RawKind: "block", Span: syntax.Span{Start: syntax.Point{Line: 2}}, Reason: "ends before it starts"}

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"Panic", "boom", []string{"PANIC", cfamily.MissingReturnID}},
		{"Inconsistency", inconsistent, []string{issue.ParseInconsistency, cfamily.MissingReturnID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			faulty := panicking{Base: rule.NewBase("PANIC", issue.PotentialBug, rule.General, 0), value: tt.value}
			sets := rule.NewSets(rule.NewSet(lang.CPP, faulty, cfamily.MissingReturn()))

			e := newEngine(fakeParser{"a.cpp": missingReturn("a.cpp")}, WithRules(sets))

			res := e.AnalyzeFile(t.Context(), change("a.cpp"))
			if got := ids(res.Issues); !slices.Equal(got, tt.want) {
				t.Fatalf("Got issues %v, expected %v", got, tt.want)
			}

			fault := res.Issues[0]
			if fault.Category != issue.Internal {
				t.Errorf("Got category %s, expected %s", fault.Category, issue.Internal)
			}

			if tt.name == "Panic" && !strings.HasPrefix(fault.Message, "Internal Error: "+issue.RuleInternalFault) {
				t.Errorf("Got message %q", fault.Message)
			}
		})
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	res := newEngine(fakeParser{}).AnalyzeFile(t.Context(), FileChange{Path: "A.java", Source: []byte("class A {}")})

	if res.Language != lang.Java || !res.Skipped {
		t.Errorf("Got language %s skipped %t, expected a skipped java file", res.Language, res.Skipped)
	}

	if got, want := ids(res.Issues), []string{issue.UnsupportedLanguage}; !slices.Equal(got, want) {
		t.Errorf("Got issues %v, expected %v", got, want)
	}

	if res.Issues[0].Severity != issue.Info {
		t.Errorf("Got severity %s, expected INFO", res.Issues[0].Severity)
	}
}

func TestParseFailed(t *testing.T) {
	t.Parallel()

	res := newEngine(fakeParser{}).AnalyzeFile(t.Context(), change("missing.cpp"))

	if got, want := ids(res.Issues), []string{issue.ParseFailed}; !slices.Equal(got, want) {
		t.Errorf("Got issues %v, expected %v", got, want)
	}
}

func TestPartial(t *testing.T) {
	t.Parallel()

	tree := BuildPartial(lang.CPP, "a.cpp", CTranslationUnit(1, 3,
		CFunction(1, 3, "void", false, "f", nil, CExpr(2, CCall(2, "work"))),
	))

	res := newEngine(fakeParser{"a.cpp": tree}).AnalyzeFile(t.Context(), change("a.cpp"))

	if !res.Partial {
		t.Error("Expected a partial result")
	}

	if got, want := ids(res.Issues), []string{issue.ParseError}; !slices.Equal(got, want) {
		t.Errorf("Got issues %v, expected %v", got, want)
	}
}

func TestSuppression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comment string
		want    []string
	}{
		{"None", "// checked", []string{cfamily.MissingReturnID}},
		{"Rule", "// nolint:missing_return", []string{}},
		{"Linter", "/* nolint:structlint */", []string{}},
		{"Other", "// nolint:empty_catch", []string{cfamily.MissingReturnID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := emptyReturn("a.cpp", Leaf("comment", 2, tt.comment))
			res := newEngine(fakeParser{"a.cpp": tree}).AnalyzeFile(t.Context(), change("a.cpp"))

			if got := ids(res.Issues); !slices.Equal(got, tt.want) {
				t.Errorf("Got issues %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestChangedLines(t *testing.T) {
	t.Parallel()

	languages, err := config.ResolveLanguages(map[string]any{config.OptChangedLinesOnly: true}, nil)
	if err != nil {
		t.Fatalf("Can't resolve config: %v", err)
	}

	e := newEngine(fakeParser{"a.cpp": emptyReturn("a.cpp")}, WithLanguages(languages))

	tests := []struct {
		name  string
		added []LineRange
		want  []string
	}{
		{"Unknown", nil, []string{cfamily.MissingReturnID}},
		{"Added", []LineRange{{Start: 1, End: 2}}, []string{cfamily.MissingReturnID}},
		{"Elsewhere", []LineRange{{Start: 3, End: 4}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := change("a.cpp")
			c.AddedLines = tt.added

			if got := ids(e.AnalyzeFile(t.Context(), c).Issues); !slices.Equal(got, tt.want) {
				t.Errorf("Got issues %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	e := newEngine(fakeParser{"a.cpp": missingReturn("a.cpp")})

	first := e.AnalyzeFile(t.Context(), change("a.cpp"))
	second := e.AnalyzeFile(t.Context(), change("a.cpp"))

	if !slices.Equal(first.Issues, second.Issues) {
		t.Errorf("Got %v, then %v", first.Issues, second.Issues)
	}

	if first.SourceHash == 0 || first.SourceHash != second.SourceHash {
		t.Errorf("Got source hashes %x and %x", first.SourceHash, second.SourceHash)
	}
}

func TestTreeSitter(t *testing.T) {
	t.Parallel()

	e := New(WithLogger(slog.New(slog.DiscardHandler)))

	res := e.AnalyzeFile(t.Context(), FileChange{
		Path:   "f.c",
		Source: []byte("int f(int x) {\n  if (x) return 1;\n}\n"),
	})

	if res.Language != lang.C {
		t.Errorf("Got language %s, expected %s", res.Language, lang.C)
	}

	if len(res.Issues) != 1 {
		t.Fatalf("Got issues %v, expected one", res.Issues)
	}

	if i := res.Issues[0]; i.RuleID != cfamily.MissingReturnID || i.Line != 3 || i.Severity != issue.Error {
		t.Errorf("Got %v, expected a missing return error on line 3", i)
	}
}
