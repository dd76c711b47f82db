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

// Package syntax provides a read-only view over parsed syntax trees.
//
// Trees are produced by an external parser through a [Builder]. Once built, a [Tree]
// is immutable and safe for concurrent use; nodes are lightweight [Node] values
// referring back into the tree's node index.
package syntax

import (
	"iter"

	"fillmore-labs.com/structlint/internal/lang"
)

// NodeID is the index of a node in its tree, assigned in pre-order.
type NodeID int32

// InvalidNode represents an invalid node index.
const InvalidNode NodeID = -1

// Valid checks if this index is valid.
func (n NodeID) Valid() bool {
	return n != InvalidNode
}

// Point is a position in source text. Lines are 1-based, columns are 0-based byte offsets.
type Point struct {
	Line, Column int
}

// Before reports whether p is strictly before q.
func (p Point) Before(q Point) bool {
	return p.Line < q.Line || p.Line == q.Line && p.Column < q.Column
}

// Span is the source range covered by a node.
type Span struct {
	Start, End         Point
	StartByte, EndByte int
}

// Inverted reports whether the span ends before it starts.
func (s Span) Inverted() bool {
	return s.End.Before(s.Start)
}

// Contains reports whether s covers the whole of t.
func (s Span) Contains(t Span) bool {
	return !t.Start.Before(s.Start) && !s.End.Before(t.End)
}

type nodeData struct {
	raw      string
	kind     lang.Kind
	named    bool
	pruned   bool
	field    string
	span     Span
	parent   NodeID
	children []NodeID
}

// Tree is an immutable syntax tree of one source file.
type Tree struct {
	path      string
	language  lang.Language
	source    []byte
	nodes     []nodeData
	partial   bool
	kinds     [256]bool
	anomalies []Inconsistency
}

// Path returns the path of the file the tree was parsed from.
func (t *Tree) Path() string { return t.path }

// Language returns the language of the tree.
func (t *Tree) Language() lang.Language { return t.language }

// Source returns the source text the tree was parsed from.
func (t *Tree) Source() []byte { return t.source }

// Partial reports whether the parser recovered from syntax errors while building the tree.
func (t *Tree) Partial() bool { return t.partial }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node, which is invalid for an empty tree.
func (t *Tree) Root() Node {
	if t == nil || len(t.nodes) == 0 {
		return Node{}
	}

	return Node{tree: t, id: 0}
}

// Node returns the node with the given index.
func (t *Tree) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}
	}

	return Node{tree: t, id: id}
}

// Has reports whether any reachable node of the tree has one of the given kinds.
func (t *Tree) Has(kinds ...lang.Kind) bool {
	for _, k := range kinds {
		if t.kinds[k] {
			return true
		}
	}

	return false
}

// Inconsistencies returns the structurally invalid spans found while building the tree.
// The offending subtrees are excluded from traversal.
func (t *Tree) Inconsistencies() []Inconsistency {
	return t.anomalies
}

// All yields all reachable nodes in pre-order.
func (t *Tree) All() iter.Seq[Node] {
	return t.Root().Preorder()
}
