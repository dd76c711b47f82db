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

package syntax_test

import (
	"errors"
	"slices"
	"testing"

	"fillmore-labs.com/structlint/internal/lang"
	. "fillmore-labs.com/structlint/internal/syntax"
	. "fillmore-labs.com/structlint/internal/syntax/syntaxtest"
)

func sampleTree() *Tree {
	return Build(lang.C, "a.c",
		N("translation_unit", 1, 3,
			N("function_definition", 1, 3,
				Leaf("primitive_type", 1, "int").As("type"),
				N("function_declarator", 1, 1,
					Ident(1, "f"),
					N("parameter_list", 1, 1, Tok("(", 1), Tok(")", 1)),
				).As("declarator"),
				N("compound_statement", 1, 3,
					Tok("{", 1),
					N("return_statement", 2, 2, Tok("return", 2), Leaf("number_literal", 2, "0"), Tok(";", 2)),
					Tok("}", 3),
				).As("body"),
			),
		))
}

func TestTreeNavigation(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	root := tree.Root()
	if got, want := root.Kind(), lang.KindModule; got != want {
		t.Fatalf("Got root kind %v, expected %v", got, want)
	}

	fn := root.FirstChild(lang.KindFunction)
	if !fn.Valid() {
		t.Fatal("Expected a function below the root")
	}

	if got, want := fn.StartLine(), 1; got != want {
		t.Errorf("Got start line %d, expected %d", got, want)
	}

	if got, want := fn.EndLine(), 3; got != want {
		t.Errorf("Got end line %d, expected %d", got, want)
	}

	body := fn.ChildByField("body")
	if got, want := body.Kind(), lang.KindBlock; got != want {
		t.Errorf("Got body kind %v, expected %v", got, want)
	}

	if got, want := body.Parent().ID(), fn.ID(); got != want {
		t.Errorf("Got parent %d, expected %d", got, want)
	}

	ret := body.FirstChild(lang.KindReturn)
	if got, want := ret.Text(), "return 0 ;"; got != want {
		t.Errorf("Got text %q, expected %q", got, want)
	}

	if got, want := ret.Enclosing(lang.KindFunction).ID(), fn.ID(); got != want {
		t.Errorf("Got enclosing %d, expected %d", got, want)
	}

	if !tree.Has(lang.KindReturn) || tree.Has(lang.KindLambda) {
		t.Error("Unexpected kind index")
	}
}

func TestPreorder(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	var kinds []string
	for n := range tree.All() {
		if n.Named() {
			kinds = append(kinds, n.RawKind())
		}
	}

	want := []string{
		"translation_unit", "function_definition", "primitive_type", "function_declarator",
		"identifier", "parameter_list", "compound_statement", "return_statement", "number_literal",
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("Got pre-order %v, expected %v", kinds, want)
	}

	count := 0
	for range tree.All() {
		count++
		if count == 3 {
			break
		}
	}

	if count != 3 {
		t.Errorf("Got %d iterations after break, expected 3", count)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	var visited int
	tree.Root().Inspect(func(n Node) bool {
		visited++

		return !n.Is(lang.KindFunction)
	})

	if got, want := visited, 2; got != want {
		t.Errorf("Got %d visited nodes, expected %d", got, want)
	}
}

func TestInconsistentSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		spans []Span
	}{
		{"Inverted", []Span{
			{Start: Point{Line: 1}, End: Point{Line: 5}, EndByte: 40},
			{Start: Point{Line: 3}, End: Point{Line: 2}, StartByte: 20, EndByte: 10},
		}},
		{"OutsideParent", []Span{
			{Start: Point{Line: 1}, End: Point{Line: 2}, EndByte: 10},
			{Start: Point{Line: 1}, End: Point{Line: 4}, EndByte: 30},
		}},
		{"OverlappingSiblings", []Span{
			{Start: Point{Line: 1}, End: Point{Line: 5}, EndByte: 40},
			{Start: Point{Line: 1}, End: Point{Line: 3}, EndByte: 20},
			{Start: Point{Line: 2}, End: Point{Line: 4}, StartByte: 10, EndByte: 30},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBuilder("a.c", lang.C, make([]byte, 40))

			root := b.Add(InvalidNode, "translation_unit", true, "", tt.spans[0])
			var last NodeID
			for _, s := range tt.spans[1:] {
				last = b.Add(root, "expression_statement", true, "", s)
			}
			b.Add(last, "identifier", true, "", tt.spans[len(tt.spans)-1])

			tree := b.Build(false)

			anomalies := tree.Inconsistencies()
			if got, want := len(anomalies), 1; got != want {
				t.Fatalf("Got %d inconsistencies, expected %d", got, want)
			}

			if a := anomalies[0]; a.Node != last || !errors.Is(a, ErrInconsistent) {
				t.Errorf("Got inconsistency %v on node %d, expected node %d", a, a.Node, last)
			}

			for n := range tree.All() {
				if n.ID() >= last {
					t.Errorf("Pruned node %d (%s) is reachable", n.ID(), n.RawKind())
				}
			}

			if tree.Has(lang.KindIdentifier) {
				t.Error("Pruned descendants must not be indexed")
			}
		})
	}
}

func TestInvalidNode(t *testing.T) {
	t.Parallel()

	var n Node
	if n.Valid() || n.ID().Valid() || n.Kind() != lang.KindUnhandled || n.Text() != "" {
		t.Error("Expected the zero node to be invalid")
	}

	for range n.Children() {
		t.Error("Expected no children")
	}

	var tree *Tree
	if tree.Root().Valid() {
		t.Error("Expected invalid root for nil tree")
	}
}
