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

// Package metric computes structural metrics of function-like syntax tree nodes.
package metric

import (
	"fmt"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// LineSpan returns the number of source lines covered by the node, which is at least 1.
// An inverted span yields an error wrapping [syntax.ErrInconsistent].
func LineSpan(n syntax.Node) (int, error) {
	start, end := n.StartLine(), n.EndLine()
	if end < start {
		return 0, syntax.Inconsistency{
			Node:    n.ID(),
			RawKind: n.RawKind(),
			Span:    n.Span(),
			Reason:  fmt.Sprintf("end line %d precedes start line %d", end, start),
		}
	}

	return end - start + 1, nil
}

// Cyclomatic returns 1 plus the number of decision points in fn.
// Nested functions and lambdas are not descended into.
func Cyclomatic(fn syntax.Node) int {
	complexity := 1

	fn.Inspect(func(n syntax.Node) bool {
		if n.ID() != fn.ID() && n.Kind().FunctionBoundary() {
			return false
		}

		if decision(n) {
			complexity++
		}

		return true
	})

	return complexity
}

// decision reports whether n is a decision point.
func decision(n syntax.Node) bool {
	switch n.Kind() {
	case lang.KindIf, lang.KindElif, lang.KindFor, lang.KindWhile, lang.KindDoWhile,
		lang.KindCatch, lang.KindConditional:
		return true

	case lang.KindCase:
		// C case statements cover both "case" and "default"; only "case" arms branch.
		return !n.HasChild(lang.KindDefaultKeyword)

	case lang.KindBinary:
		return n.HasChild(lang.KindLogicalOperator)

	default:
		return false
	}
}

// MaxNesting returns the maximum number of nested compound statements (conditionals, loops,
// switches and try blocks) on any path from fn to a leaf. Depth does not cross function
// boundaries, and an "else if" continues the chain of its "if" instead of nesting.
func MaxNesting(fn syntax.Node) int {
	var walk func(n syntax.Node, depth int) int
	walk = func(n syntax.Node, depth int) int {
		maxDepth := depth

		for c := range n.Children() {
			if c.Kind().FunctionBoundary() {
				continue
			}

			d := depth
			if c.Kind().Nesting() && !elseIf(c) {
				d++
			}

			maxDepth = max(maxDepth, walk(c, d))
		}

		return maxDepth
	}

	return walk(fn, 0)
}

// elseIf reports whether an if statement is the alternative of another if statement.
func elseIf(n syntax.Node) bool {
	if !n.Is(lang.KindIf) {
		return false
	}

	p := n.Parent()
	switch p.Kind() {
	case lang.KindIf:
		return n.Field() == "alternative"

	case lang.KindElse:
		return p.Parent().Is(lang.KindIf) && soleStatement(p, n)

	default:
		return false
	}
}

func soleStatement(parent, n syntax.Node) bool {
	for c := range parent.NamedChildren() {
		if c.ID() != n.ID() && !c.Is(lang.KindComment) {
			return false
		}
	}

	return true
}
