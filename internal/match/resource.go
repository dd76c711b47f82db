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

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Family groups acquisition calls with the calls that release their result.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyHeap
	FamilyStream
	FamilyPipe
	FamilyDirectory
	FamilyDescriptor
	FamilyObject
)

var _acquisitions = map[string]Family{
	"malloc":        FamilyHeap,
	"calloc":        FamilyHeap,
	"realloc":       FamilyHeap,
	"strdup":        FamilyHeap,
	"strndup":       FamilyHeap,
	"aligned_alloc": FamilyHeap,
	"fopen":         FamilyStream,
	"fdopen":        FamilyStream,
	"freopen":       FamilyStream,
	"tmpfile":       FamilyStream,
	"popen":         FamilyPipe,
	"opendir":       FamilyDirectory,
	"fdopendir":     FamilyDirectory,
	"open":          FamilyDescriptor,
	"openat":        FamilyDescriptor,
	"creat":         FamilyDescriptor,
	"socket":        FamilyDescriptor,
	"accept":        FamilyDescriptor,
	"dup":           FamilyDescriptor,
}

var _releases = map[string]Family{
	"free":     FamilyHeap,
	"fclose":   FamilyStream,
	"pclose":   FamilyPipe,
	"closedir": FamilyDirectory,
	"close":    FamilyDescriptor,
}

// Acquisition is a resource acquired by a call or a new expression and bound to a variable.
type Acquisition struct {
	Node   syntax.Node // the call or new expression
	Name   string      // the variable holding the resource
	Family Family
	Array  bool // allocated by an array new expression
}

// AcquisitionFamily returns the family of an acquiring expression, or [FamilyNone].
func AcquisitionFamily(expr syntax.Node) Family {
	expr = Unwrap(expr)
	switch expr.Kind() {
	case lang.KindNew:
		return FamilyObject

	case lang.KindCall:
		return _acquisitions[ShortName(CallName(expr))]

	default:
		return FamilyNone
	}
}

// ArrayNew reports whether expr is a new expression allocating an array.
func ArrayNew(expr syntax.Node) bool {
	return expr.Is(lang.KindNew) && expr.ChildByField("declarator").RawKind() == "new_declarator"
}

// Acquisitions yields the resources acquired by fn and bound to a plain variable, in source order.
// Acquisitions in nested functions or lambdas are excluded.
func Acquisitions(fn syntax.Node) iter.Seq[Acquisition] {
	return func(yield func(Acquisition) bool) {
		for n := range FindLocal(Body(fn), Kinds(lang.KindInitDeclarator, lang.KindAssignment)) {
			target, value := Binding(n)
			if !target.Is(lang.KindIdentifier) {
				continue
			}

			family := AcquisitionFamily(value)
			if family == FamilyNone {
				continue
			}

			value = Unwrap(value)
			if !yield(Acquisition{Node: value, Name: target.Text(), Family: family, Array: ArrayNew(value)}) {
				return
			}
		}
	}
}

// Binding returns the bound identifier and value of an init declarator or a plain assignment.
func Binding(n syntax.Node) (target, value syntax.Node) {
	switch n.Kind() {
	case lang.KindInitDeclarator:
		return DeclaredIdentifier(n.ChildByField("declarator")), n.ChildByField("value")

	case lang.KindAssignment:
		if !n.HasToken("=") {
			return syntax.Node{}, syntax.Node{}
		}

		return Unwrap(n.ChildByField("left")), n.ChildByField("right")

	default:
		return syntax.Node{}, syntax.Node{}
	}
}

// Releases reports whether n releases the variable name of the given family.
func Releases(n syntax.Node, name string, family Family) bool {
	switch n.Kind() {
	case lang.KindDelete:
		if family != FamilyObject {
			return false
		}

		for c := range n.NamedChildren() {
			if c := Unwrap(c); c.Is(lang.KindIdentifier) && c.Text() == name {
				return true
			}
		}

		return false

	case lang.KindCall:
		if _releases[ShortName(CallName(n))] != family {
			return false
		}

		arg := Unwrap(First(Arguments(n)))

		return arg.Is(lang.KindIdentifier) && arg.Text() == name

	default:
		return false
	}
}

// Mentions reports whether the subtree references the identifier name.
func Mentions(n syntax.Node, name string) bool {
	return Any(Find(n, func(c syntax.Node) bool { return c.Is(lang.KindIdentifier) && c.Text() == name }))
}
