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

package issue_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	. "fillmore-labs.com/structlint/internal/syntax/syntaxtest"
)

func mk(rule string, line, column int, severity Severity, message string) Issue {
	return Issue{RuleID: rule, Severity: severity, Category: Complexity, FilePath: "a.c", Line: line, Column: column, Message: message}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	first := []Issue{
		mk("HIGH_COMPLEXITY", 10, 0, Warning, "first"),
		mk("MISSING_RETURN", 3, 0, Error, "missing"),
	}
	second := []Issue{
		mk("HIGH_COMPLEXITY", 10, 0, Warning, "duplicate"),
		mk("DEEP_NESTING", 10, 0, Warning, "nesting"),
		mk("UNUSED_IMPORT", 1, 0, Info, "import"),
		mk("FUNC_TOO_LONG", 10, 0, Error, "long"),
	}

	got := Aggregate(first, second)

	var messages []string
	for _, i := range got {
		messages = append(messages, i.Message)
	}

	want := []string{"import", "missing", "long", "first", "nesting"}
	if !slices.Equal(messages, want) {
		t.Errorf("Got order %v, expected %v", messages, want)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	t.Parallel()

	issues := []Issue{
		mk("B", 2, 4, Info, "b"),
		mk("A", 2, 4, Info, "a"),
		mk("C", 1, 9, Warning, "c"),
	}

	once := Aggregate(issues)
	twice := Aggregate(once)

	if !slices.Equal(once, twice) {
		t.Errorf("Got %v after second aggregation, expected %v", twice, once)
	}

	// same line and severity keep their insertion order
	if once[1].RuleID != "B" || once[2].RuleID != "A" {
		t.Errorf("Expected stable order, got %v", once)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]Issue{
		mk("A", 1, 0, Error, ""),
		mk("B", 2, 0, Warning, ""),
		{RuleID: "C", Severity: Warning, Category: Style},
	})

	if s.Total != 3 || s.BySeverity[Warning] != 2 || s.ByCategory[Complexity] != 2 {
		t.Errorf("Unexpected summary %+v", s)
	}

	if got, want := s.Categories(), []Category{Complexity, Style}; !slices.Equal(got, want) {
		t.Errorf("Got categories %v, expected %v", got, want)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Can't marshal summary: %v", err)
	}

	if !strings.Contains(string(data), `"WARNING":2`) {
		t.Errorf("Expected severity names as keys, got %s", data)
	}
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	groups := GroupBy([]Issue{
		mk("A", 1, 0, Error, "1"),
		mk("B", 2, 0, Warning, "2"),
		mk("C", 3, 0, Error, "3"),
	}, func(i Issue) Severity { return i.Severity })

	if got := len(groups[Error]); got != 2 {
		t.Errorf("Got %d errors, expected 2", got)
	}

	if groups[Error][0].Message != "1" || groups[Error][1].Message != "3" {
		t.Errorf("Expected order to be preserved, got %v", groups[Error])
	}
}

func TestSeverityText(t *testing.T) {
	t.Parallel()

	for _, s := range []Severity{Error, Warning, Info} {
		text, _ := s.MarshalText()

		var got Severity
		if err := got.UnmarshalText(text); err != nil || got != s {
			t.Errorf("Got %v (%v) for %q, expected %v", got, err, text, s)
		}
	}

	var s Severity
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("Expected error for unknown severity")
	}

	if Error.Rank() >= Warning.Rank() || Warning.Rank() >= Info.Rank() || Severity(0).Rank() <= Info.Rank() {
		t.Error("Unexpected severity ranks")
	}
}

func TestParseDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    []string
	}{
		{"// nolint:structlint", []string{"structlint"}},
		{"//nolint:all", []string{"all"}},
		{"# nolint:BARE_EXCEPT, unused_import", []string{"bare_except", "unused_import"}},
		{"/* nolint:resource_leak */", []string{"resource_leak"}},
		{"// nothing to see", nil},
		{"// see nolint:all", nil},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			t.Parallel()

			if got := ParseDirective(tt.comment); !slices.Equal(got, tt.want) {
				t.Errorf("Got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSuppressions(t *testing.T) {
	t.Parallel()

	tree := Build(lang.Python, "m.py",
		N("module", 1, 3,
			N("import_statement", 1, 1, Tok("import", 1), N("dotted_name", 1, 1, Ident(1, "os")).As("name")),
			Leaf("comment", 1, "# nolint:unused_import"),
			N("import_statement", 3, 3, Tok("import", 3), N("dotted_name", 3, 3, Ident(3, "re")).As("name")),
		))

	s := CollectSuppressions(tree)

	if !s.Suppressed(Issue{RuleID: "UNUSED_IMPORT", Line: 1}) {
		t.Error("Expected line 1 to be suppressed")
	}

	if s.Suppressed(Issue{RuleID: "BARE_EXCEPT", Line: 1}) {
		t.Error("Expected other rules to remain")
	}

	if s.Suppressed(Issue{RuleID: "UNUSED_IMPORT", Line: 3}) {
		t.Error("Expected line 3 to remain")
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	i := InternalError("a.c", "RESOURCE_LEAK", 7, "RULE_INTERNAL_FAULT: %s", "boom")

	if got, want := i.Message, "Internal Error: RULE_INTERNAL_FAULT: boom"; got != want {
		t.Errorf("Got message %q, expected %q", got, want)
	}

	if i.Category != Internal || i.Severity != Error || i.RuleID != "RESOURCE_LEAK" {
		t.Errorf("Unexpected issue %v", i)
	}
}
