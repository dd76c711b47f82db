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
	"iter"
	"strings"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// declaratorChild returns the declarator wrapped by a pointer, reference or function declarator.
func declaratorChild(n syntax.Node) syntax.Node {
	if d := n.ChildByField("declarator"); d.Valid() {
		return d
	}

	var last syntax.Node
	for c := range n.NamedChildren() {
		if !c.Is(lang.KindComment) {
			last = c
		}
	}

	return last
}

// DeclaredIdentifier follows a chain of C declarators to the declared name.
func DeclaredIdentifier(declarator syntax.Node) syntax.Node {
	n := declarator
	for n.Valid() {
		switch n.Kind() {
		case lang.KindPointerDeclarator, lang.KindReferenceDeclarator,
			lang.KindFunctionDeclarator, lang.KindInitDeclarator, lang.KindParenthesized:
			n = declaratorChild(n)

		case lang.KindIdentifier, lang.KindFieldIdentifier, lang.KindQualifiedIdentifier:
			return n

		default:
			d := n.ChildByField("declarator") // array declarators and other wrappers
			if !d.Valid() {
				return n
			}
			n = d
		}
	}

	return syntax.Node{}
}

// FunctionDeclarator returns the function declarator of a C function definition.
func FunctionDeclarator(fn syntax.Node) syntax.Node {
	for n := fn.ChildByField("declarator"); n.Valid(); n = declaratorChild(n) {
		switch n.Kind() {
		case lang.KindFunctionDeclarator:
			return n

		case lang.KindPointerDeclarator, lang.KindReferenceDeclarator, lang.KindParenthesized:

		default:
			return syntax.Node{}
		}
	}

	return syntax.Node{}
}

// ReturnsPointer reports whether a C function definition declares a pointer or reference result.
func ReturnsPointer(fn syntax.Node) bool {
	d := fn.ChildByField("declarator")

	return d.Is(lang.KindPointerDeclarator, lang.KindReferenceDeclarator)
}

// FunctionName returns the name of a function-like node.
func FunctionName(fn syntax.Node) string {
	if fn.Is(lang.KindLambda) {
		return "<lambda>"
	}

	if name := fn.ChildByField("name"); name.Valid() {
		return name.Text()
	}

	if decl := FunctionDeclarator(fn); decl.Valid() {
		return DeclaredIdentifier(decl).Text()
	}

	return "<anonymous>"
}

// ShortName returns the last component of a qualified name.
func ShortName(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}

	return name
}

// Parameters yields the parameter nodes of a function-like node.
func Parameters(fn syntax.Node) iter.Seq[syntax.Node] {
	list := fn.ChildByField("parameters")
	if !list.Valid() {
		if decl := FunctionDeclarator(fn); decl.Valid() {
			list = decl.ChildByField("parameters")
		}
	}

	return func(yield func(syntax.Node) bool) {
		for c := range list.NamedChildren() {
			if c.Is(lang.KindComment) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// ParameterName returns the identifier node naming a parameter.
func ParameterName(param syntax.Node) syntax.Node {
	switch param.Kind() {
	case lang.KindIdentifier:
		return param

	case lang.KindParameter:
		return DeclaredIdentifier(param.ChildByField("declarator"))

	case lang.KindDefaultParameter, lang.KindTypedDefaultParameter:
		return param.ChildByField("name")

	case lang.KindTypedParameter, lang.KindSplatParameter:
		return param.FirstChild(lang.KindIdentifier, lang.KindSplatParameter)

	default:
		return syntax.Node{}
	}
}

// CallName returns the callee of a call expression as written, e.g. "free", "std::exit" or "close".
// Member calls yield the member name.
func CallName(call syntax.Node) string {
	fn := Unwrap(call.ChildByField("function"))
	if !fn.Valid() {
		fn = call.FirstChild(lang.KindIdentifier, lang.KindQualifiedIdentifier, lang.KindField, lang.KindAttribute)
	}

	switch fn.Kind() {
	case lang.KindField:
		return fn.ChildByField("field").Text()

	case lang.KindAttribute:
		return fn.ChildByField("attribute").Text()

	case lang.KindIdentifier, lang.KindQualifiedIdentifier:
		return strings.Join(strings.Fields(fn.Text()), "")

	default:
		return ""
	}
}

// Arguments yields the argument expressions of a call.
func Arguments(call syntax.Node) iter.Seq[syntax.Node] {
	args := call.ChildByField("arguments")

	return func(yield func(syntax.Node) bool) {
		for c := range args.NamedChildren() {
			if c.Is(lang.KindComment) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}
