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

package syntax

import (
	"iter"
	"strings"

	"fillmore-labs.com/structlint/internal/lang"
)

// Node is a view of one node in a [Tree]. The zero value is an invalid node.
type Node struct {
	tree *Tree
	id   NodeID
}

// Valid returns true if the node refers to a node of a tree.
func (n Node) Valid() bool {
	return n.tree != nil
}

func (n Node) data() *nodeData {
	return &n.tree.nodes[n.id]
}

// ID returns the index of the node in its tree.
func (n Node) ID() NodeID {
	if !n.Valid() {
		return InvalidNode
	}

	return n.id
}

// Tree returns the tree the node belongs to.
func (n Node) Tree() *Tree { return n.tree }

// Kind returns the language independent kind of the node.
func (n Node) Kind() lang.Kind {
	if !n.Valid() {
		return lang.KindUnhandled
	}

	return n.data().kind
}

// Is reports whether the node has one of the given kinds.
func (n Node) Is(kinds ...lang.Kind) bool {
	k := n.Kind()
	for _, kind := range kinds {
		if k == kind {
			return n.Valid()
		}
	}

	return false
}

// RawKind returns the grammar specific kind of the node.
func (n Node) RawKind() string {
	if !n.Valid() {
		return ""
	}

	return n.data().raw
}

// Named reports whether the node is a named grammar node rather than an anonymous token.
func (n Node) Named() bool {
	return n.Valid() && n.data().named
}

// Field returns the field name under which the node is stored in its parent.
func (n Node) Field() string {
	if !n.Valid() {
		return ""
	}

	return n.data().field
}

// Span returns the source range of the node.
func (n Node) Span() Span {
	if !n.Valid() {
		return Span{}
	}

	return n.data().span
}

// StartLine returns the 1-based line the node starts on.
func (n Node) StartLine() int { return n.Span().Start.Line }

// EndLine returns the 1-based line the node ends on.
func (n Node) EndLine() int { return n.Span().End.Line }

// StartColumn returns the 0-based column the node starts at.
func (n Node) StartColumn() int { return n.Span().Start.Column }

// EndColumn returns the 0-based column after the end of the node.
func (n Node) EndColumn() int { return n.Span().End.Column }

// Text returns the source text covered by the node.
func (n Node) Text() string {
	if !n.Valid() {
		return ""
	}

	s, src := n.Span(), n.tree.source
	if s.StartByte < 0 || s.EndByte > len(src) || s.StartByte > s.EndByte {
		return ""
	}

	return string(src[s.StartByte:s.EndByte])
}

// FirstLine returns the first line of the node's source text, trimmed.
func (n Node) FirstLine() string {
	text, _, _ := strings.Cut(n.Text(), "\n")

	return strings.TrimSpace(text)
}

// Parent returns the parent node, which is invalid for the root.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}

	return n.tree.Node(n.data().parent)
}

// ChildCount returns the number of reachable children.
func (n Node) ChildCount() int {
	count := 0
	for range n.Children() {
		count++
	}

	return count
}

// Children yields the reachable children in source order.
func (n Node) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if !n.Valid() {
			return
		}

		for _, c := range n.data().children {
			if n.tree.nodes[c].pruned {
				continue
			}

			if !yield(Node{tree: n.tree, id: c}) {
				return
			}
		}
	}
}

// NamedChildren yields the reachable named children in source order.
func (n Node) NamedChildren() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := range n.Children() {
			if !c.Named() {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// ChildByField returns the first child stored under the given field name.
func (n Node) ChildByField(field string) Node {
	for c := range n.Children() {
		if c.Field() == field {
			return c
		}
	}

	return Node{}
}

// ChildrenByField yields all children stored under the given field name.
func (n Node) ChildrenByField(field string) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := range n.Children() {
			if c.Field() != field {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// FirstChild returns the first reachable child with one of the given kinds.
func (n Node) FirstChild(kinds ...lang.Kind) Node {
	for c := range n.Children() {
		if c.Is(kinds...) {
			return c
		}
	}

	return Node{}
}

// HasChild reports whether the node has a direct child with one of the given kinds.
func (n Node) HasChild(kinds ...lang.Kind) bool {
	return n.FirstChild(kinds...).Valid()
}

// HasToken reports whether the node has an anonymous child token with the given text.
func (n Node) HasToken(token string) bool {
	for c := range n.Children() {
		if !c.Named() && c.RawKind() == token {
			return true
		}
	}

	return false
}

// Preorder yields the node and all its reachable descendants, parents before children.
func (n Node) Preorder() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if !n.Valid() {
			return
		}

		n.walk(func(c Node) (descend, ok bool) { return true, yield(c) })
	}
}

// Inspect traverses the subtree in pre-order, calling f for each node.
// If f returns false, the children of that node are skipped.
func (n Node) Inspect(f func(Node) bool) {
	if !n.Valid() {
		return
	}

	n.walk(func(c Node) (descend, ok bool) { return f(c), true })
}

// walk visits the subtree with an explicit stack; visit reports whether to descend and whether to continue.
func (n Node) walk(visit func(Node) (descend, ok bool)) {
	nodes := n.tree.nodes
	stack := []NodeID{n.id}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		descend, ok := visit(Node{tree: n.tree, id: id})
		if !ok {
			return
		}

		if !descend {
			continue
		}

		children := nodes[id].children
		for i := len(children) - 1; i >= 0; i-- {
			if c := children[i]; !nodes[c].pruned {
				stack = append(stack, c)
			}
		}
	}
}

// Enclosing returns the nearest ancestor with one of the given kinds.
func (n Node) Enclosing(kinds ...lang.Kind) Node {
	for p := n.Parent(); p.Valid(); p = p.Parent() {
		if p.Is(kinds...) {
			return p
		}
	}

	return Node{}
}
