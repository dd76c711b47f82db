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

// Package match provides node matchers: lazy queries over syntax trees that identify
// nodes of interest, such as functions, calls, returns and resource acquisitions.
//
// Matchers compare only [lang.Kind] values. Nodes of kinds a grammar does not map
// are [lang.KindUnhandled] and never match.
package match

import (
	"iter"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Predicate selects nodes.
type Predicate func(syntax.Node) bool

// Kinds matches nodes of any of the given kinds.
func Kinds(kinds ...lang.Kind) Predicate {
	return func(n syntax.Node) bool { return n.Is(kinds...) }
}

// Find yields all nodes of the subtree matching pred in pre-order, including root itself.
func Find(root syntax.Node, pred Predicate) iter.Seq[syntax.Node] {
	return func(yield func(syntax.Node) bool) {
		for n := range root.Preorder() {
			if pred(n) && !yield(n) {
				return
			}
		}
	}
}

// FindLocal is like [Find], but does not descend into nested functions or lambdas below root.
func FindLocal(root syntax.Node, pred Predicate) iter.Seq[syntax.Node] {
	return func(yield func(syntax.Node) bool) {
		done := false
		root.Inspect(func(n syntax.Node) bool {
			if done {
				return false
			}

			if pred(n) && !yield(n) {
				done = true

				return false
			}

			return n.ID() == root.ID() || !n.Kind().FunctionBoundary()
		})
	}
}

// First returns the first node yielded by seq.
func First(seq iter.Seq[syntax.Node]) syntax.Node {
	for n := range seq {
		return n
	}

	return syntax.Node{}
}

// Any reports whether seq yields at least one node.
func Any(seq iter.Seq[syntax.Node]) bool {
	return First(seq).Valid()
}

// Functions yields all function definitions of the tree, nested ones included. Lambdas are excluded.
func Functions(tree *syntax.Tree) iter.Seq[syntax.Node] {
	return Find(tree.Root(), Kinds(lang.KindFunction))
}

// Classes yields all class definitions of the tree.
func Classes(tree *syntax.Tree) iter.Seq[syntax.Node] {
	return Find(tree.Root(), Kinds(lang.KindClass))
}

// Returns yields the return statements belonging to fn.
func Returns(fn syntax.Node) iter.Seq[syntax.Node] {
	return FindLocal(fn, Kinds(lang.KindReturn))
}

// Body returns the body of a function-like node.
func Body(n syntax.Node) syntax.Node {
	if body := n.ChildByField("body"); body.Valid() {
		return body
	}

	return n.FirstChild(lang.KindBlock)
}

// Unwrap strips parentheses and casts from an expression.
func Unwrap(n syntax.Node) syntax.Node {
	for {
		switch n.Kind() {
		case lang.KindParenthesized:
			inner := syntax.Node{}
			for c := range n.NamedChildren() {
				if !c.Is(lang.KindComment) {
					inner = c
				}
			}

			if !inner.Valid() {
				return n
			}
			n = inner

		case lang.KindCast:
			value := n.ChildByField("value")
			if !value.Valid() {
				return n
			}
			n = value

		default:
			return n
		}
	}
}

// IsNull reports whether the expression is a null pointer literal, including a literal zero.
func IsNull(n syntax.Node) bool {
	n = Unwrap(n)
	switch n.Kind() {
	case lang.KindNull:
		return true

	case lang.KindNumber:
		return n.Text() == "0"

	case lang.KindIdentifier:
		return n.Text() == "NULL"

	default:
		return false
	}
}

// IsConstantTrue reports whether the expression is a literal that always evaluates to true.
func IsConstantTrue(n syntax.Node) bool {
	n = Unwrap(n)
	switch n.Kind() {
	case lang.KindTrue:
		return true

	case lang.KindNumber:
		text := n.Text()

		return text != "" && text != "0" && text != "0.0"

	default:
		return false
	}
}
