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

package match

import (
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// NullTest inspects a branch condition testing the variable name against null.
// It reports which branch of the condition is taken when the variable is null.
func NullTest(cond syntax.Node, name string) (nullWhenTrue, ok bool) {
	cond = Unwrap(cond)

	switch cond.Kind() {
	case lang.KindIdentifier:
		if cond.Text() == name {
			return false, true
		}

	case lang.KindUnary:
		if !cond.HasToken("!") && !cond.HasToken("not") {
			break
		}

		if null, ok := NullTest(cond.ChildByField("argument"), name); ok {
			return !null, true
		}

	case lang.KindBinary:
		left, right := Unwrap(cond.ChildByField("left")), Unwrap(cond.ChildByField("right"))
		if IsNull(left) {
			left, right = right, left
		}

		if left.Is(lang.KindAssignment) { // (p = malloc(n)) == NULL
			left, _ = Binding(left)
		}

		if !left.Is(lang.KindIdentifier) || left.Text() != name || !IsNull(right) {
			break
		}

		switch {
		case cond.HasToken("=="):
			return true, true

		case cond.HasToken("!="):
			return false, true
		}
	}

	return false, false
}

// ChecksNull reports whether n tests the variable name for null, either as a condition,
// an operand of a logical operator, or an assertion.
func ChecksNull(n syntax.Node, name string) bool {
	switch n.Kind() {
	case lang.KindIf, lang.KindWhile, lang.KindDoWhile, lang.KindFor, lang.KindConditional:
		return checksNullCondition(n.ChildByField("condition"), name)

	case lang.KindBinary:
		if !n.HasChild(lang.KindLogicalOperator) {
			return false
		}

		return checksNullCondition(n.ChildByField("left"), name) || checksNullCondition(n.ChildByField("right"), name)

	case lang.KindCall:
		switch CallName(n) {
		case "assert", "static_assert", "g_assert", "BUG_ON", "ASSERT":
			return Mentions(n, name)
		}
	}

	return false
}

func checksNullCondition(cond syntax.Node, name string) bool {
	if _, ok := NullTest(cond, name); ok {
		return true
	}

	cond = Unwrap(cond)
	if cond.Is(lang.KindBinary) && cond.HasChild(lang.KindLogicalOperator) {
		return checksNullCondition(cond.ChildByField("left"), name) || checksNullCondition(cond.ChildByField("right"), name)
	}

	return false
}

// Dereferences reports whether n dereferences the pointer variable name
// through "*", "->" or a subscript.
func Dereferences(n syntax.Node, name string) bool {
	var target syntax.Node

	switch n.Kind() {
	case lang.KindPointerExpr:
		if !n.HasToken("*") {
			return false
		}
		target = n.ChildByField("argument")

	case lang.KindField:
		if !n.HasToken("->") {
			return false
		}
		target = n.ChildByField("argument")

	case lang.KindSubscript:
		target = n.ChildByField("argument")

	default:
		return false
	}

	target = Unwrap(target)

	return target.Is(lang.KindIdentifier) && target.Text() == name
}
