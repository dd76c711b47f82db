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

package general_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	. "fillmore-labs.com/structlint/internal/rules/general"
	"fillmore-labs.com/structlint/internal/syntax"
	. "fillmore-labs.com/structlint/internal/syntax/syntaxtest"
)

// nested describes depth if statements, each nested in the previous one.
func nested(depth, start, end int) Spec {
	if depth == 0 {
		return CExpr(start, CCall(start, "work"))
	}

	return CIf(start, end, Ident(start, "x"), CCompound(start, end, nested(depth-1, start+1, end-1)))
}

// function describes a function spanning lines 1 through end with the given nesting depth
// and cyclomatic complexity.
func function(end, depth, complexity int) *syntax.Tree {
	body := []Spec{nested(depth, 2, 2*depth+2)}

	for i := range complexity - 1 - depth {
		line := 2*depth + 3 + i
		body = append(body, CIf(line, line, Ident(line, "y"), CReturn(line, CNumber(line, "1"))))
	}

	body = append(body, CReturn(end-1, CNumber(end-1, "0")))

	return Build(lang.C, "f.c", CTranslationUnit(1, end,
		CFunction(1, end, "int", false, "f", []Spec{CParam(1, "int", "x", false)}, body...),
	))
}

func inspect(t *testing.T, tree *syntax.Tree, cfg config.RuleConfig) []issue.Issue {
	t.Helper()

	var issues []issue.Issue
	for _, r := range Rules() {
		issues = append(issues, r.Inspect(t.Context(), tree, cfg)...)
	}

	return issue.Aggregate(issues)
}

func ids(issues []issue.Issue) []string {
	result := make([]string, 0, len(issues))
	for _, i := range issues {
		result = append(result, i.RuleID)
	}
	slices.Sort(result)

	return result
}

func TestScenario(t *testing.T) {
	t.Parallel()

	issues := inspect(t, function(45, 5, 18), config.Default())

	if got, want := ids(issues), []string{DeepNestingID, HighComplexityID}; !slices.Equal(got, want) {
		t.Fatalf("Got issues %v, expected %v", got, want)
	}

	for _, i := range issues {
		if i.Line != 1 || i.Severity != issue.Warning || i.Category != issue.Complexity {
			t.Errorf("Got %v, expected a complexity warning on line 1", i)
		}
	}
}

func TestThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tree    *syntax.Tree
		options map[string]any
		want    []string
	}{
		{"Clean", function(20, 2, 5), nil, []string{}},
		{"TooLong", function(51, 2, 5), nil, []string{FuncTooLongID}},
		{"LongAllowed", function(51, 2, 5), map[string]any{config.OptMaxFunctionLength: 60}, []string{}},
		{"ExactlyAtLimit", function(50, 4, 15), nil, []string{}},
		{"AllExceeded", function(60, 5, 16), nil, []string{DeepNestingID, FuncTooLongID, HighComplexityID}},
		{"StrictComplexity", function(20, 1, 3), map[string]any{config.OptMaxComplexity: 2}, []string{HighComplexityID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Resolve(tt.options)
			if err != nil {
				t.Fatalf("Can't resolve config: %v", err)
			}

			if got := ids(inspect(t, tt.tree, cfg)); !slices.Equal(got, tt.want) {
				t.Errorf("Got issues %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestOncePerFunction(t *testing.T) {
	t.Parallel()

	tree := Build(lang.C, "f.c", CTranslationUnit(1, 130,
		CFunction(1, 60, "void", false, "a", nil),
		CFunction(61, 62, "void", false, "b", nil),
		CFunction(63, 130, "void", false, "c", nil),
	))

	issues := FuncTooLong().Inspect(t.Context(), tree, config.Default())

	if len(issues) != 2 {
		t.Fatalf("Got %d issues, expected 2: %v", len(issues), issues)
	}

	if issues[0].Line != 1 || issues[1].Line != 63 {
		t.Errorf("Got issues at lines %d and %d, expected 1 and 63", issues[0].Line, issues[1].Line)
	}
}
