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

// Package graph builds control-flow graphs of C and C++ functions and answers
// reachability queries over them.
package graph

import (
	"context"
	"iter"
	"runtime/trace"

	"fillmore-labs.com/structlint/internal/flow/block"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Graph is the control-flow graph of one function.
type Graph struct {
	blocks []*block.Block
	entry  *block.Block

	// Reusable BFS state to avoid allocations on each traversal
	seen  []bool // Visited set
	queue []int  // Ring buffer
}

// Build constructs the control-flow graph of a function definition.
// Reaching the end of the function body is recorded as [block.ExitFallOff] on the last block.
func Build(ctx context.Context, fn syntax.Node) *Graph {
	defer trace.StartRegion(ctx, "Graph").End()

	body := match.Body(fn)

	b := builder{labels: make(map[string]*LabelTarget)}

	entry := b.New(fn.StartLine()) // function entry

	last := b.appendStmt(entry, body)
	last.Terminate(block.ExitFallOff, body)

	blocks := b.All()

	return &Graph{
		blocks: blocks,
		entry:  entry,
		seen:   make([]bool, len(blocks)),
		queue:  make([]int, len(blocks)),
	}
}

// Entry returns the entry block of the function.
func (g *Graph) Entry() *block.Block {
	return g.entry
}

// Blocks returns all blocks, reachable or not, in creation order.
func (g *Graph) Blocks() []*block.Block {
	return g.blocks
}

// Locate finds the block evaluating n, together with the index of the enclosing node in the block.
func (g *Graph) Locate(n syntax.Node) (*block.Block, int, bool) {
	for _, b := range g.blocks {
		for i, stmt := range b.Nodes {
			if within(n, stmt) {
				return b, i, true
			}
		}
	}

	return nil, 0, false
}

// within reports whether n is ancestor-or-self of stmt.
func within(n, stmt syntax.Node) bool {
	for p := n; p.Valid(); p = p.Parent() {
		if p.ID() == stmt.ID() {
			return true
		}
	}

	return false
}

// Reachable yields the blocks reachable from the entry, including the entry itself.
func (g *Graph) Reachable() iter.Seq[*block.Block] {
	return func(yield func(*block.Block) bool) {
		if !yield(g.entry) {
			return
		}

		done := false
		g.Walk(g.entry, func(b *block.Block) bool {
			if done || !yield(b) {
				done = true

				return false
			}

			return true
		})
	}
}

// Walk visits the blocks reachable from the successors of start in breadth-first order.
// visit returns false to stop following paths through the visited block.
// Every block is visited at most once; start itself is visited again only if it lies on a cycle.
func (g *Graph) Walk(start *block.Block, visit func(*block.Block) bool) {
	clear(g.seen) // Reset visited set from previous traversals

	// We use a ring buffer queue to minimize allocations.
	qTail := g.enqueueSuccessors(start, 0)

	for qHead := 0; qHead < qTail; qHead++ {
		curr := g.blocks[g.queue[qHead]]

		if !visit(curr) {
			continue
		}

		qTail = g.enqueueSuccessors(curr, qTail)
	}
}

// enqueueSuccessors adds unseen successors of block s to the queue.
func (g *Graph) enqueueSuccessors(s *block.Block, qTail int) int {
	for _, succ := range [...]*block.Block{s.Successor1, s.Successor2} {
		if succ == nil || g.seen[succ.Index] {
			continue
		}
		g.seen[succ.Index] = true

		g.queue[qTail] = succ.Index
		qTail++
	}

	return qTail
}
