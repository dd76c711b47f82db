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

package python_test

import (
	"slices"
	"testing"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/rule"
	. "fillmore-labs.com/structlint/internal/rules/python"
	"fillmore-labs.com/structlint/internal/syntax"
	. "fillmore-labs.com/structlint/internal/syntax/syntaxtest"
)

func module(path string, end int, stmts ...Spec) *syntax.Tree {
	return Build(lang.Python, path, PyModule(1, end, stmts...))
}

func run(t *testing.T, r rule.Rule, tree *syntax.Tree, cfg config.RuleConfig) []issue.Issue {
	t.Helper()

	issues := r.Inspect(t.Context(), tree, cfg)
	for _, i := range issues {
		if i.RuleID != r.ID() || i.Category != r.Category() || i.FilePath != tree.Path() {
			t.Errorf("Got issue %v, expected rule %s in category %s", i, r.ID(), r.Category())
		}
	}

	return issues
}

func lines(issues []issue.Issue) []int {
	result := make([]int, 0, len(issues))
	for _, i := range issues {
		result = append(result, i.Line)
	}

	return result
}

func TestBareExcept(t *testing.T) {
	t.Parallel()

	body := PyBlock(2, 2, PyExpr(2, PyCall(2, "work")))

	tests := []struct {
		name    string
		handler Spec
		want    []int
	}{
		{"Bare", PyExcept(3, 4, "", PyPass(4)), []int{3}},
		{"Typed", PyExcept(3, 4, "ValueError", PyPass(4)), []int{}},
		{"Dotted", PyExcept(3, 4, "errors.Timeout", PyPass(4)), []int{}},
		{"Reraise", PyExcept(3, 4, "", PyRaise(4)), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := module("m.py", 4, PyTry(1, 4, body, tt.handler))

			if got := lines(run(t, BareExcept(), tree, config.Default())); !slices.Equal(got, tt.want) {
				t.Errorf("Got issues at lines %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestMutableDefaultArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Spec
		want  []int
	}{
		{"List", PyList(1), []int{1}},
		{"Dict", PyDict(1), []int{1}},
		{"Constructor", PyCall(1, "set"), []int{1}},
		{"None", Leaf("none", 1, "None"), []int{}},
		{"Tuple", N("tuple", 1, 1, Tok("(", 1), Tok(")", 1)), []int{}},
		{"Number", Leaf("integer", 1, "0"), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := module("m.py", 2, PyDef(1, 2, "f", []Spec{Ident(1, "a"), PyDefault(1, "items", tt.value)}, PyPass(2)))

			if got := lines(run(t, MutableDefaultArg(), tree, config.Default())); !slices.Equal(got, tt.want) {
				t.Errorf("Got issues at lines %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestUnusedImport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		path  string
		stmts []Spec
		want  []string
	}{
		{"Used", "m.py", []Spec{
			PyImport(1, "os"),
			PyExpr(2, PyCall(2, "os.getcwd")),
		}, []string{}},
		{"Unused", "m.py", []Spec{
			PyImport(1, "os", "sys"),
			PyExpr(2, PyCall(2, "os.getcwd")),
		}, []string{"Unused import sys"}},
		{"Dotted", "m.py", []Spec{
			PyImport(1, "os.path"),
			PyExpr(2, PyCall(2, "os.path.join")),
		}, []string{}},
		{"Aliased", "m.py", []Spec{
			PyImport(1, "numpy as np", "pandas as pd"),
			PyExpr(2, PyCall(2, "np.zeros")),
		}, []string{"Unused import pd"}},
		{"From", "m.py", []Spec{
			PyFromImport(1, "collections", "OrderedDict", "deque"),
			PyExpr(2, PyCall(2, "print")),
		}, []string{"Unused imports OrderedDict, deque"}},
		{"Wildcard", "m.py", []Spec{
			PyFromImport(1, "os", "*"),
		}, []string{}},
		{"Exported", "m.py", []Spec{
			PyFromImport(1, "pkg.core", "Engine"),
			PyAssign(2, "__all__", PyList(2, PyString(2, `"Engine"`))),
		}, []string{}},
		{"Package", "pkg/__init__.py", []Spec{
			PyFromImport(1, "pkg.core", "Engine"),
		}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := module(tt.path, 3, tt.stmts...)

			issues := run(t, UnusedImport(), tree, config.Default())

			got := make([]string, 0, len(issues))
			for _, i := range issues {
				got = append(got, i.Message)

				if i.Line != 1 || i.Severity != issue.Info {
					t.Errorf("Got %v, expected an info on line 1", i)
				}
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestMissingDocstring(t *testing.T) {
	t.Parallel()

	long := func(start int, name string, body ...Spec) Spec {
		return PyDef(start, start+4, name, nil, append(body, PyReturn(start+4))...)
	}

	tests := []struct {
		name string
		def  Spec
		want []int
	}{
		{"Documented", long(1, "run", PyDocstring(2, "Run the job.")), []int{}},
		{"Undocumented", long(1, "run", PyExpr(2, PyCall(2, "work"))), []int{1}},
		{"Private", long(1, "_run", PyExpr(2, PyCall(2, "work"))), []int{}},
		{"Short", PyDef(1, 2, "run", nil, PyPass(2)), []int{}},
		{"FourLines", PyDef(1, 4, "run", nil, PyExpr(2, PyCall(2, "work")), PyReturn(4)), []int{}},
		{"FiveLines", PyDef(1, 5, "run", nil, PyExpr(2, PyCall(2, "work")), PyReturn(5)), []int{1}},
		{"Class", PyClass(1, 6, "Job", long(2, "_run")), []int{1}},
		{"Method", PyClass(1, 7, "Job", PyDocstring(2, "A job."), long(3, "run")), []int{3}},
		{"Local", PyDef(1, 8, "_outer", nil, long(2, "inner"), PyReturn(8)), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := module("m.py", 12, tt.def)

			if got := lines(run(t, MissingDocstring(), tree, config.Default())); !slices.Equal(got, tt.want) {
				t.Errorf("Got issues at lines %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestMissingTypeHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  Spec
		want []string
	}{
		{"Annotated", PyDefReturns(1, 2, "f", []Spec{PyTyped(1, "a", "int")}, Ident(1, "int"), PyPass(2)), []string{}},
		{"Parameter", PyDefReturns(1, 2, "f", []Spec{Ident(1, "a"), PyTyped(1, "b", "int")}, Ident(1, "int"), PyPass(2)),
			[]string{`Function "f" is missing type hints for a`}},
		{"Return", PyDef(1, 2, "f", []Spec{PyTyped(1, "a", "int")}, PyPass(2)),
			[]string{`Function "f" is missing type hints for return value`}},
		{"Default", PyDefReturns(1, 2, "f", []Spec{PyDefault(1, "a", Leaf("none", 1, "None"))}, Ident(1, "int"), PyPass(2)),
			[]string{`Function "f" is missing type hints for a`}},
		{"Self", PyClass(1, 3, "C", PyDef(2, 3, "__init__", []Spec{Ident(2, "self"), PyTyped(2, "a", "int")}, PyPass(3))),
			[]string{}},
		{"SelfOutsideClass", PyDefReturns(1, 2, "f", []Spec{Ident(1, "self")}, Ident(1, "int"), PyPass(2)),
			[]string{`Function "f" is missing type hints for self`}},
	}

	enforce, err := config.Resolve(map[string]any{config.OptEnforceTypeHints: true})
	if err != nil {
		t.Fatalf("Can't resolve config: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := module("m.py", 3, tt.def)

			issues := run(t, MissingTypeHints(), tree, enforce)

			got := make([]string, 0, len(issues))
			for _, i := range issues {
				got = append(got, i.Message)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule rule.Rule
		want bool
	}{
		{BareExcept(), true},
		{MutableDefaultArg(), true},
		{UnusedImport(), true},
		{MissingDocstring(), true},
		{MissingTypeHints(), false},
	}

	for _, tt := range tests {
		if got := tt.rule.Enabled(config.Default()); got != tt.want {
			t.Errorf("Got %s enabled %t, expected %t", tt.rule.ID(), got, tt.want)
		}
	}

	if got := len(Rules()); got != len(tests) {
		t.Errorf("Got %d rules, expected %d", got, len(tests))
	}
}
