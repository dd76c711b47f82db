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
	"errors"
	"fmt"

	"fillmore-labs.com/structlint/internal/lang"
)

// ErrInconsistent is returned or wrapped when a node's span is structurally invalid.
var ErrInconsistent = errors.New("inconsistent syntax tree")

// Inconsistency describes a node whose span contradicts its position in the tree.
type Inconsistency struct {
	Node    NodeID
	RawKind string
	Span    Span
	Reason  string
}

// Error implements [error].
func (i Inconsistency) Error() string {
	return fmt.Sprintf("%s at line %d: %s", i.RawKind, i.Span.Start.Line, i.Reason)
}

// Unwrap makes an [Inconsistency] match [ErrInconsistent].
func (i Inconsistency) Unwrap() error { return ErrInconsistent }

// Builder assembles a [Tree] node by node. Nodes must be added in pre-order,
// the root first, every node after its parent and its preceding siblings.
type Builder struct {
	tree  *Tree
	vocab lang.Vocabulary
}

// NewBuilder creates a builder for a tree of the given file.
func NewBuilder(path string, language lang.Language, source []byte) *Builder {
	return &Builder{
		tree: &Tree{
			path:     path,
			language: language,
			source:   source,
		},
		vocab: lang.VocabularyOf(language),
	}
}

// Add appends a node below parent and returns its index. Pass [InvalidNode] as parent for the root.
func (b *Builder) Add(parent NodeID, raw string, named bool, field string, span Span) NodeID {
	t := b.tree
	id := NodeID(len(t.nodes))

	kind := b.vocab.Kind(raw)
	switch {
	case named, kind == lang.KindLogicalOperator, kind == lang.KindDefaultKeyword:

	default: // anonymous tokens sharing a name with a node type are not that node
		kind = lang.KindUnhandled
	}

	t.nodes = append(t.nodes, nodeData{
		raw:    raw,
		kind:   kind,
		named:  named,
		field:  field,
		span:   span,
		parent: InvalidNode,
	})

	if parent.Valid() && int(parent) < int(id) {
		t.nodes[id].parent = parent
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}

	return id
}

// Build validates the tree and returns it. Subtrees with structurally invalid spans are pruned
// from traversal and reported through [Tree.Inconsistencies].
// The builder must not be used afterwards.
func (b *Builder) Build(partial bool) *Tree {
	t := b.tree
	b.tree = nil

	t.partial = partial

	for id := range t.nodes {
		n := &t.nodes[id]

		if n.parent.Valid() && t.nodes[n.parent].pruned {
			n.pruned = true

			continue
		}

		if reason, bad := t.check(NodeID(id)); bad {
			n.pruned = true
			t.anomalies = append(t.anomalies, Inconsistency{
				Node:    NodeID(id),
				RawKind: n.raw,
				Span:    n.span,
				Reason:  reason,
			})

			continue
		}

		t.kinds[n.kind] = true
	}

	return t
}

// check validates the span of a node against its parent and its previous sibling.
func (t *Tree) check(id NodeID) (string, bool) {
	n := &t.nodes[id]
	if n.span.Inverted() || n.span.EndByte < n.span.StartByte {
		return "end precedes start", true
	}

	if !n.parent.Valid() {
		return "", false
	}

	p := &t.nodes[n.parent]
	if !p.span.Contains(n.span) {
		return "extends outside of its parent", true
	}

	var prev *nodeData
	for _, c := range p.children {
		if c == id {
			break
		}

		if !t.nodes[c].pruned {
			prev = &t.nodes[c]
		}
	}

	if prev != nil && n.span.Start.Before(prev.span.End) {
		return "overlaps its preceding sibling", true
	}

	return "", false
}
