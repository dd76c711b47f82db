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

// Package parser adapts tree-sitter grammars to [syntax.Tree] values.
package parser

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// ErrUnsupported is returned for languages without a grammar.
var ErrUnsupported = errors.New("no grammar for language")

// Parser produces syntax trees from source text.
type Parser interface {
	// Parse returns the syntax tree of a source file. A tree recovered from syntax errors
	// is returned with [syntax.Tree.Partial] set, not as an error.
	Parse(ctx context.Context, path string, source []byte, language lang.Language) (*syntax.Tree, error)
}

// TreeSitter parses with the tree-sitter grammars for C, C++, Python and Go.
// It is safe for concurrent use; parsers are pooled per language.
type TreeSitter struct {
	pools map[lang.Language]*sync.Pool
}

var _ Parser = (*TreeSitter)(nil)

// New creates a tree-sitter based parser.
func New() *TreeSitter {
	grammars := map[lang.Language]func() *sitter.Language{
		lang.C:      c.GetLanguage,
		lang.CPP:    cpp.GetLanguage,
		lang.Python: python.GetLanguage,
		lang.Go:     golang.GetLanguage,
	}

	pools := make(map[lang.Language]*sync.Pool, len(grammars))
	for l, grammar := range grammars {
		language := grammar()
		pools[l] = &sync.Pool{
			New: func() any {
				p := sitter.NewParser()
				p.SetLanguage(language)

				return p
			},
		}
	}

	return &TreeSitter{pools: pools}
}

// Supports reports whether a grammar for the language is available.
func (t *TreeSitter) Supports(language lang.Language) bool {
	_, ok := t.pools[language]

	return ok
}

// Parse implements [Parser].
func (t *TreeSitter) Parse(ctx context.Context, path string, source []byte, language lang.Language) (*syntax.Tree, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	pool, ok := t.pools[language]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnsupported, language)
	}

	p, _ := pool.Get().(*sitter.Parser)
	defer func() {
		p.Reset()
		pool.Put(p)
	}()

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("can't parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	b := syntax.NewBuilder(path, language, source)
	convert(b, root)

	return b.Build(root.HasError()), nil
}

// convert adds the nodes below root to the builder in pre-order.
func convert(b *syntax.Builder, root *sitter.Node) {
	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	parents := []syntax.NodeID{syntax.InvalidNode}
	for {
		n := cursor.CurrentNode()
		id := b.Add(parents[len(parents)-1], n.Type(), n.IsNamed(), cursor.CurrentFieldName(), span(n))

		if cursor.GoToFirstChild() {
			parents = append(parents, id)

			continue
		}

		for !cursor.GoToNextSibling() {
			if !cursor.GoToParent() {
				return
			}
			parents = parents[:len(parents)-1]
		}
	}
}

func span(n *sitter.Node) syntax.Span {
	start, end := n.StartPoint(), n.EndPoint()

	return syntax.Span{
		Start:     syntax.Point{Line: int(start.Row) + 1, Column: int(start.Column)},
		End:       syntax.Point{Line: int(end.Row) + 1, Column: int(end.Column)},
		StartByte: int(n.StartByte()),
		EndByte:   int(n.EndByte()),
	}
}
