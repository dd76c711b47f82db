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

package parser_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	. "fillmore-labs.com/structlint/internal/parser"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		language lang.Language
		source   string
		function string
		kinds    []lang.Kind
	}{
		{"C", lang.C, "int f(int x) {\n  if (x) return 1;\n}\n", "f", []lang.Kind{lang.KindIf, lang.KindReturn}},
		{"CPP", lang.CPP, "int ns::g() {\n  try { throw 1; } catch (...) {}\n  return 0;\n}\n", "ns::g", []lang.Kind{lang.KindTry, lang.KindCatch, lang.KindThrow}},
		{"Python", lang.Python, "import os\n\ndef h(a=[]):\n    pass\n", "h", []lang.Kind{lang.KindImport, lang.KindDefaultParameter}},
		{"Go", lang.Go, "package p\n\nfunc F() {\n\tfor {\n\t}\n}\n", "F", []lang.Kind{lang.KindFor}},
	}

	p := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := p.Parse(t.Context(), "test", []byte(tt.source), tt.language)
			if err != nil {
				t.Fatalf("Can't parse: %v", err)
			}

			if tree.Partial() {
				t.Error("Expected a complete tree")
			}

			if tree.Language() != tt.language {
				t.Errorf("Got language %s, expected %s", tree.Language(), tt.language)
			}

			if got := match.FunctionName(match.First(match.Functions(tree))); got != tt.function {
				t.Errorf("Got function %q, expected %q", got, tt.function)
			}

			for _, k := range tt.kinds {
				if !tree.Has(k) {
					t.Errorf("Expected a node of kind %s", k)
				}
			}

			if len(tree.Inconsistencies()) > 0 {
				t.Errorf("Got inconsistencies %v", tree.Inconsistencies())
			}
		})
	}
}

func TestParseSpans(t *testing.T) {
	t.Parallel()

	source := "int f(void) {\n  return 0;\n}\n"

	tree, err := New().Parse(t.Context(), "f.c", []byte(source), lang.C)
	if err != nil {
		t.Fatalf("Can't parse: %v", err)
	}

	fn := match.First(match.Functions(tree))
	if fn.StartLine() != 1 || fn.EndLine() != 3 {
		t.Errorf("Got function lines %d-%d, expected 1-3", fn.StartLine(), fn.EndLine())
	}

	ret := match.First(match.Returns(fn))
	if ret.StartLine() != 2 || ret.StartColumn() != 2 || ret.Text() != "return 0;" {
		t.Errorf("Got return %q at %d:%d, expected line 2 column 2", ret.Text(), ret.StartLine(), ret.StartColumn())
	}
}

func TestParsePartial(t *testing.T) {
	t.Parallel()

	tree, err := New().Parse(t.Context(), "broken.c", []byte("int f( {\n  return;\n"), lang.C)
	if err != nil {
		t.Fatalf("Can't parse: %v", err)
	}

	if !tree.Partial() {
		t.Error("Expected a tree recovered from syntax errors")
	}
}

func TestParseUnsupported(t *testing.T) {
	t.Parallel()

	p := New()

	if p.Supports(lang.Java) {
		t.Error("Expected no grammar for Java")
	}

	_, err := p.Parse(t.Context(), "A.java", []byte("class A {}"), lang.Java)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("Got error %v, expected %v", err, ErrUnsupported)
	}
}
