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

// Package block provides the basic blocks of control-flow graphs over syntax trees.
package block

import (
	"fmt"

	"fillmore-labs.com/structlint/internal/syntax"
)

//go:generate go tool stringer -type=Exit -trimprefix=Exit

// Exit describes how control leaves a function at the end of a block.
type Exit uint8

const (
	// ExitNone means control continues with the successors.
	ExitNone Exit = iota

	// ExitReturn is an explicit return statement.
	ExitReturn

	// ExitThrow is an exception not caught within the function.
	ExitThrow

	// ExitTerminate is a call that never returns, like exit or abort.
	ExitTerminate

	// ExitFallOff is the end of the function body reached without a return.
	ExitFallOff
)

// Block represents a [basic Block] in the [control-flow graph].
// It is a sequence of statements and expressions with a single entry and exit point.
//
// [basic Block]: https://en.wikipedia.org/wiki/Basic_block
// [control-flow graph]: https://en.wikipedia.org/wiki/Control-flow_graph
type Block struct {
	Index int // Position in creation order
	Line  int // First source line, 0 for synthetic blocks

	// Nodes evaluated in this block, in order.
	Nodes []syntax.Node

	// Guard is the branch condition under which the block is entered, if any.
	// When Negated is set, the block is entered when the condition is false.
	Guard   syntax.Node
	Negated bool

	// Exit is set when control leaves the function at the end of the block,
	// ExitNode is the statement causing it.
	Exit     Exit
	ExitNode syntax.Node

	// The successors.
	//
	// For unconditional jumps, Successor1 is the only successor.
	// For conditional branches, Successor1 is the "then" branch,
	// Successor2 the "else" branch.
	Successor1, Successor2 *Block
}

// String returns a short description for debugging.
func (b *Block) String() string {
	return fmt.Sprintf("block %d (line %d, %d nodes, exit %v)", b.Index, b.Line, len(b.Nodes), b.Exit)
}

// Add appends a node to the block.
func (b *Block) Add(n syntax.Node) {
	if !n.Valid() {
		return
	}

	if b.Line == 0 {
		b.Line = n.StartLine()
	}

	b.Nodes = append(b.Nodes, n)
}

// Terminate marks the block as leaving the function.
func (b *Block) Terminate(exit Exit, n syntax.Node) {
	b.Exit, b.ExitNode = exit, n
	b.Successor1, b.Successor2 = nil, nil
}

// Terminated reports whether control leaves the function at the end of the block.
func (b *Block) Terminated() bool {
	return b.Exit != ExitNone
}

// Link sets an unconditional successor. Terminated blocks have no successors.
func (b *Block) Link(next *Block) {
	if b.Terminated() {
		return
	}

	b.Successor1, b.Successor2 = next, nil
}

// LinkBranch sets the successors of a conditional branch.
func (b *Block) LinkBranch(then, els *Block) {
	if b.Terminated() {
		return
	}

	b.Successor1, b.Successor2 = then, els
}

// LinkClause sets the successors for a clause in a chain (switch dispatch, catch handlers).
//
// It links the current clause to the next clause in the chain, while optionally
// branching to a body if the clause is not the start of the chain.
//
//	current -> clause -> clause -> ...
//	              |         |
//	              v         v
//	            body      body
func (b *Block) LinkClause(body, next *Block) {
	if body == nil {
		b.Link(next)

		return
	}

	b.LinkBranch(body, next)
}

// Successors returns the non-nil successors.
func (b *Block) Successors() []*Block {
	switch {
	case b.Successor1 == nil && b.Successor2 == nil:
		return nil

	case b.Successor2 == nil:
		return []*Block{b.Successor1}

	case b.Successor1 == nil:
		return []*Block{b.Successor2}

	default:
		return []*Block{b.Successor1, b.Successor2}
	}
}
