// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package graph

import (
	"fillmore-labs.com/structlint/internal/flow/block"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/syntax"
)

// builder constructs the control flow graph of a C or C++ function body.
// It traverses the syntax tree and creates blocks and edges based on control flow semantics.
//
// The append* methods return the next basic [block] where statements should be added.
type builder struct {
	block.Factory                         // All blocks created during traversal
	labels        map[string]*LabelTarget // Maps label names to their target blocks
	targetScopes  branchTargetScopes      // Current break/continue/throw targets
}

// statements yields the statements of a compound statement or the body of a clause,
// skipping comments and an optional label or value field.
func statements(n syntax.Node, skipFields ...string) []syntax.Node {
	var list []syntax.Node

outer:
	for c := range n.NamedChildren() {
		if c.Is(lang.KindComment) {
			continue
		}

		for _, f := range skipFields {
			if c.Field() == f {
				continue outer
			}
		}

		list = append(list, c)
	}

	return list
}

// appendStmtList appends a list of statements to the current block.
func (b *builder) appendStmtList(current *block.Block, list []syntax.Node) *block.Block {
	for _, s := range list {
		current = b.appendStmt(current, s)
	}

	return current
}

// appendStmt appends a single statement to the current block.
func (b *builder) appendStmt(current *block.Block, stmt syntax.Node) *block.Block {
	switch stmt.Kind() {
	case lang.KindBlock:
		return b.appendStmtList(current, statements(stmt))

	case lang.KindBreak, lang.KindContinue:
		return b.appendBranchStmt(current, stmt)

	case lang.KindDoWhile:
		return b.appendDoStmt(current, stmt)

	case lang.KindExpressionStatement:
		current.Add(stmt)

		if expr := match.First(stmt.NamedChildren()); CantReturn(expr) {
			current.Terminate(block.ExitTerminate, stmt)

			return b.New(stmt.EndLine()) // unreachable after non-returning call
		}

		return current

	case lang.KindFor:
		if stmt.ChildByField("right").Valid() {
			return b.appendRangeStmt(current, stmt)
		}

		return b.appendForStmt(current, stmt)

	case lang.KindGoto:
		return b.appendGotoStmt(current, stmt)

	case lang.KindIf:
		return b.appendIfStmt(current, stmt)

	case lang.KindLabeled:
		return b.appendLabeledStmt(current, stmt)

	case lang.KindReturn:
		current.Add(stmt)
		current.Terminate(block.ExitReturn, stmt)

		return b.New(stmt.EndLine()) // unreachable after return

	case lang.KindSwitch:
		return b.appendSwitchStmt(current, stmt)

	case lang.KindThrow:
		return b.appendThrowStmt(current, stmt)

	case lang.KindTry:
		return b.appendTryStmt(current, stmt)

	case lang.KindWhile:
		return b.appendWhileStmt(current, stmt)

	default: // declarations, expressions, preprocessor and error nodes
		current.Add(stmt)

		return current
	}
}

// appendBranchStmt handles break and continue.
func (b *builder) appendBranchStmt(current *block.Block, stmt syntax.Node) *block.Block {
	current.Add(stmt)

	if target := b.targetScopes.branchTarget(stmt.Kind()); target != nil {
		current.Link(target)
	}

	return b.New(stmt.EndLine()) // unreachable after break or continue
}

// appendGotoStmt handles goto statements.
func (b *builder) appendGotoStmt(current *block.Block, stmt syntax.Node) *block.Block {
	current.Add(stmt)

	if label := stmt.ChildByField("label"); label.Valid() {
		current.Link(b.labelTarget(label.Text()).BranchTarget(lang.KindGoto))
	}

	return b.New(stmt.EndLine()) // unreachable after goto
}

// appendLabeledStmt handles labeled statements.
func (b *builder) appendLabeledStmt(current *block.Block, stmt syntax.Node) *block.Block {
	labeled := b.labelTarget(stmt.ChildByField("label").Text())
	if !labeled.Define() {
		return b.appendStmtList(current, statements(stmt, "label")) // duplicate label, error recovery
	}

	body := labeled.Body()
	body.Line = stmt.StartLine()

	current.Link(body)

	return b.appendStmtList(body, statements(stmt, "label"))
}

// labelTarget retrieves or creates a target for the given label.
func (b *builder) labelTarget(label string) *LabelTarget {
	if target, ok := b.labels[label]; ok {
		return target
	}

	body := b.New(0) // forward goto reference
	target := NewLabelTarget(body)
	b.labels[label] = target

	return target
}

// guarded creates a block entered only when cond evaluates to !negated.
func (b *builder) guarded(line int, cond syntax.Node, negated bool) *block.Block {
	g := b.New(line)
	g.Guard, g.Negated = cond, negated

	return g
}

// appendIfStmt handles if statements.
func (b *builder) appendIfStmt(current *block.Block, stmt syntax.Node) *block.Block {
	cond := stmt.ChildByField("condition")
	current.Add(cond)

	after := b.New(stmt.EndLine()) // after if

	consequence := stmt.ChildByField("consequence")
	body := b.guarded(consequence.StartLine(), cond, false) // if body

	afterBody := b.appendStmt(body, consequence)
	afterBody.Link(after)

	alternative := stmt.ChildByField("alternative")
	elseBranch := b.guarded(alternative.StartLine(), cond, true) // else branch

	if alternative.Valid() {
		list := []syntax.Node{alternative}
		if alternative.Is(lang.KindElse) {
			list = statements(alternative)
		}

		afterElse := b.appendStmtList(elseBranch, list)
		afterElse.Link(after)
	} else {
		elseBranch.Link(after)
	}

	current.LinkBranch(body, elseBranch)

	return after
}

// appendSwitchStmt handles switch statements.
func (b *builder) appendSwitchStmt(current *block.Block, stmt syntax.Node) *block.Block {
	current.Add(stmt.ChildByField("condition"))

	var cases []syntax.Node
	for c := range match.Body(stmt).NamedChildren() {
		if c.Is(lang.KindCase, lang.KindDefaultCase) {
			cases = append(cases, c)
		}
	}

	if len(cases) == 0 {
		return current
	}

	after, old := b.newAfterBlock(stmt.EndLine()) // after switch

	// no default, switch can fall through
	defaultTarget := after

	// previous case expressions, linked current -> expr1 -> expr2 -> default
	prevExpr := current

	var prevBody *block.Block // case body

	nextBody := b.New(cases[0].StartLine()) // first switch case

	for i, clause := range cases {
		if value := clause.ChildByField("value"); !value.Valid() {
			defaultTarget = nextBody // default case
		} else {
			caseExpr := b.New(clause.StartLine()) // case expressions
			caseExpr.Add(value)

			// link previous case expressions to previous body and current case expressions, skip default case
			prevExpr.LinkClause(prevBody, caseExpr)
			prevBody, prevExpr = nextBody, caseExpr
		}

		// current case body
		body := nextBody

		// C cases fall through into the next case
		fallthroughTarget := after
		if i < len(cases)-1 {
			nextBody = b.New(cases[i+1].StartLine()) // next switch case
			fallthroughTarget = nextBody
		}

		body = b.appendStmtList(body, statements(clause, "value"))
		body.Link(fallthroughTarget)
	}

	// default case after all expressions
	prevExpr.LinkClause(prevBody, defaultTarget)

	b.targetScopes.popBreak(old)

	return after
}

// appendWhileStmt handles while loops.
func (b *builder) appendWhileStmt(current *block.Block, stmt syntax.Node) *block.Block {
	condition := stmt.ChildByField("condition")

	cond := b.New(condition.StartLine()) // loop condition
	cond.Add(condition)
	current.Link(cond)

	body := b.guarded(stmt.StartLine(), condition, false) // loop body
	after, old := b.newAfterBlock(stmt.EndLine())        // after loop

	if match.IsConstantTrue(condition) {
		cond.Link(body)
	} else {
		cond.LinkBranch(body, after)
	}

	oldc := b.targetScopes.pushContinue(cond)

	bodyEnd := b.appendStmt(body, stmt.ChildByField("body"))
	bodyEnd.Link(cond)

	b.targetScopes.popContinue(oldc)
	b.targetScopes.popBreak(old)

	return after
}

// appendDoStmt handles do-while loops.
func (b *builder) appendDoStmt(current *block.Block, stmt syntax.Node) *block.Block {
	condition := stmt.ChildByField("condition")

	body := b.New(stmt.StartLine())               // loop body
	cond := b.New(condition.StartLine())          // loop condition
	after, old := b.newAfterBlock(stmt.EndLine()) // after loop

	current.Link(body)

	cond.Add(condition)
	if match.IsConstantTrue(condition) {
		cond.Link(body)
	} else {
		cond.LinkBranch(body, after)
	}

	oldc := b.targetScopes.pushContinue(cond)

	bodyEnd := b.appendStmt(body, stmt.ChildByField("body"))
	bodyEnd.Link(cond)

	b.targetScopes.popContinue(oldc)
	b.targetScopes.popBreak(old)

	return after
}

// appendForStmt handles for loops.
func (b *builder) appendForStmt(current *block.Block, stmt syntax.Node) *block.Block {
	if init := stmt.ChildByField("initializer"); init.Valid() {
		current.Add(init)
	}

	condition := stmt.ChildByField("condition")
	forever := !condition.Valid() || match.IsConstantTrue(condition)

	body := b.guarded(stmt.StartLine(), condition, false) // for body
	if forever {
		body.Guard = syntax.Node{}
	}

	after, old := b.newAfterBlock(stmt.EndLine()) // after for

	cond := body
	if !forever {
		cond = b.New(condition.StartLine()) // for condition
		cond.Add(condition)
		cond.LinkBranch(body, after)
	}

	current.Link(cond)

	post := cond
	if update := stmt.ChildByField("update"); update.Valid() {
		post = b.New(update.StartLine()) // for update expression
		post.Add(update)
		post.Link(cond)
	}

	oldc := b.targetScopes.pushContinue(post)

	bodyEnd := b.appendStmt(body, stmt.ChildByField("body"))
	bodyEnd.Link(post)

	b.targetScopes.popContinue(oldc)
	b.targetScopes.popBreak(old)

	return after
}

// appendRangeStmt handles C++ range-based for loops.
func (b *builder) appendRangeStmt(current *block.Block, stmt syntax.Node) *block.Block {
	current.Add(stmt.ChildByField("right"))

	head := b.New(stmt.StartLine())               // next element
	body := b.New(stmt.StartLine())               // range body
	after, old := b.newAfterBlock(stmt.EndLine()) // after range

	current.Link(head)
	head.LinkBranch(body, after)

	oldc := b.targetScopes.pushContinue(head)

	bodyEnd := b.appendStmt(body, stmt.ChildByField("body"))
	bodyEnd.Link(head)

	b.targetScopes.popContinue(oldc)
	b.targetScopes.popBreak(old)

	return after
}

// appendThrowStmt handles throw statements.
func (b *builder) appendThrowStmt(current *block.Block, stmt syntax.Node) *block.Block {
	current.Add(stmt)

	if handler := b.targetScopes.branchTarget(lang.KindThrow); handler != nil {
		current.Link(handler)
	} else {
		current.Terminate(block.ExitThrow, stmt)
	}

	return b.New(stmt.EndLine()) // unreachable after throw
}

// appendTryStmt handles C++ try statements. Only explicit throw statements are assumed to raise.
func (b *builder) appendTryStmt(current *block.Block, stmt syntax.Node) *block.Block {
	after := b.New(stmt.EndLine())      // after try
	dispatch := b.New(stmt.StartLine()) // catch dispatch

	body := b.New(stmt.StartLine()) // try body
	current.Link(body)

	oldt := b.targetScopes.pushThrow(dispatch)

	bodyEnd := b.appendStmt(body, stmt.ChildByField("body"))
	bodyEnd.Link(after)

	b.targetScopes.popThrow(oldt)

	catchAll := false
	for clause := range stmt.Children() {
		if !clause.Is(lang.KindCatch) {
			continue
		}

		handler := b.New(clause.StartLine()) // catch body
		next := b.New(clause.EndLine())      // next handler
		dispatch.LinkClause(handler, next)

		handlerEnd := b.appendStmt(handler, match.Body(clause))
		handlerEnd.Link(after)

		if params := clause.ChildByField("parameters"); params.Valid() && params.HasToken("...") {
			catchAll = true
		}

		dispatch = next
	}

	if !catchAll {
		// uncaught exceptions propagate
		rethrow := b.New(stmt.EndLine())
		dispatch.Link(rethrow)

		if handler := b.targetScopes.branchTarget(lang.KindThrow); handler != nil {
			rethrow.Link(handler)
		} else {
			rethrow.Terminate(block.ExitThrow, stmt)
		}
	}

	return after
}

func (b *builder) newAfterBlock(line int) (after, old *block.Block) {
	after = b.New(line) // after

	old = b.targetScopes.pushBreak(after)

	return after, old
}
