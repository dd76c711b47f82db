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

// Package syntaxtest builds syntax trees for tests without a parser.
//
// Trees are described with [N], [Leaf] and [Tok]; the source text is synthesized by
// placing leaf texts on their declared lines, separated by single spaces.
package syntaxtest

import (
	"strings"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Spec describes a node and its subtree.
type Spec struct {
	raw        string
	named      bool
	field      string
	start, end int
	text       string
	leaf       bool
	children   []Spec
}

// N describes a named interior node spanning lines start through end.
func N(raw string, start, end int, children ...Spec) Spec {
	return Spec{raw: raw, named: true, start: start, end: end, children: children}
}

// Leaf describes a named leaf node with its source text.
func Leaf(raw string, line int, text string) Spec {
	return Spec{raw: raw, named: true, start: line, end: line, text: text, leaf: true}
}

// Tok describes an anonymous token. Its text doubles as its kind.
func Tok(text string, line int) Spec {
	return Spec{raw: text, start: line, end: line, text: text, leaf: true}
}

// Ident is shorthand for an identifier leaf.
func Ident(line int, name string) Spec {
	return Leaf("identifier", line, name)
}

// As stores the node under a field name of its parent.
func (s Spec) As(field string) Spec {
	s.field = field

	return s
}

// EndLine returns the declared last line of the node.
func (s Spec) EndLine() int {
	return s.end
}

// Build creates a tree of the given language.
func Build(language lang.Language, path string, root Spec) *syntax.Tree {
	return build(language, path, root, false)
}

// BuildPartial creates a tree that is marked as recovered from syntax errors.
func BuildPartial(language lang.Language, path string, root Spec) *syntax.Tree {
	return build(language, path, root, true)
}

type layout struct {
	lines     [][]byte
	positions map[*Spec][2]syntax.Point
}

func build(language lang.Language, path string, root Spec, partial bool) *syntax.Tree {
	l := layout{positions: make(map[*Spec][2]syntax.Point)}
	l.place(&root)

	offsets := make([]int, len(l.lines)+1)
	var src strings.Builder
	for i, line := range l.lines {
		offsets[i] = src.Len()
		src.Write(line)
		src.WriteByte('\n')
	}
	offsets[len(l.lines)] = src.Len()

	source := []byte(src.String())
	b := syntax.NewBuilder(path, language, source)

	var add func(parent syntax.NodeID, s *Spec)
	add = func(parent syntax.NodeID, s *Spec) {
		pos := l.positions[s]
		span := syntax.Span{
			Start:     pos[0],
			End:       pos[1],
			StartByte: offsets[pos[0].Line-1] + pos[0].Column,
			EndByte:   offsets[pos[1].Line-1] + pos[1].Column,
		}

		id := b.Add(parent, s.raw, s.named, s.field, span)
		for i := range s.children {
			add(id, &s.children[i])
		}
	}
	add(syntax.InvalidNode, &root)

	return b.Build(partial)
}

func (l *layout) line(n int) []byte {
	if n < 1 {
		panic("syntaxtest: lines are 1-based")
	}

	for len(l.lines) < n {
		l.lines = append(l.lines, nil)
	}

	return l.lines[n-1]
}

// place assigns positions in pre-order so leaves appear in source order.
func (l *layout) place(s *Spec) {
	if s.leaf {
		if strings.ContainsRune(s.text, '\n') {
			panic("syntaxtest: leaf text must be a single line")
		}

		buf := l.line(s.start)
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}

		col := len(buf)
		l.lines[s.start-1] = append(buf, s.text...)
		l.positions[s] = [2]syntax.Point{{Line: s.start, Column: col}, {Line: s.start, Column: col + len(s.text)}}

		return
	}

	l.line(s.end)

	start := syntax.Point{Line: s.start}
	end := syntax.Point{Line: s.end}
	for i := range s.children {
		c := &s.children[i]
		l.place(c)

		pos := l.positions[c]
		if i == 0 && pos[0].Line == s.start {
			start = pos[0]
		}

		if pos[1].Line == s.end && !pos[1].Before(end) {
			end = pos[1]
		}
	}

	l.positions[s] = [2]syntax.Point{start, end}
}
