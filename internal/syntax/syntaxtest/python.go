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

package syntaxtest

import "strings"

// Constructors for common Python tree shapes.

// PyModule wraps top-level statements.
func PyModule(start, end int, stmts ...Spec) Spec {
	return N("module", start, end, stmts...)
}

// PyBlock describes an indented block.
func PyBlock(start, end int, stmts ...Spec) Spec {
	return N("block", start, end, stmts...)
}

// PyDef describes a function definition. The body starts on the line after the signature.
func PyDef(start, end int, name string, params []Spec, body ...Spec) Spec {
	return PyDefReturns(start, end, name, params, Spec{}, body...)
}

// PyDefReturns describes a function definition with a return annotation.
func PyDefReturns(start, end int, name string, params []Spec, returns Spec, body ...Spec) Spec {
	list := []Spec{Tok("(", start)}
	for i, p := range params {
		if i > 0 {
			list = append(list, Tok(",", start))
		}
		list = append(list, p)
	}
	list = append(list, Tok(")", start))

	def := []Spec{Tok("def", start), Ident(start, name).As("name"), N("parameters", start, start, list...).As("parameters")}
	if returns.raw != "" {
		def = append(def, Tok("->", start), N("type", start, start, returns).As("return_type"))
	}
	def = append(def, Tok(":", start), PyBlock(start+1, end, body...).As("body"))

	return N("function_definition", start, end, def...)
}

// PyClass describes a class definition.
func PyClass(start, end int, name string, body ...Spec) Spec {
	return N("class_definition", start, end,
		Tok("class", start), Ident(start, name).As("name"), Tok(":", start), PyBlock(start+1, end, body...).As("body"),
	)
}

// PyDefault describes a parameter with a default value.
func PyDefault(line int, name string, value Spec) Spec {
	return N("default_parameter", line, line, Ident(line, name).As("name"), Tok("=", line), value.As("value"))
}

// PyTyped describes an annotated parameter.
func PyTyped(line int, name, typ string) Spec {
	return N("typed_parameter", line, line, Ident(line, name), Tok(":", line), N("type", line, line, Ident(line, typ)).As("type"))
}

// PyList describes a list display of the given elements.
func PyList(line int, elems ...Spec) Spec {
	list := []Spec{Tok("[", line)}
	for i, e := range elems {
		if i > 0 {
			list = append(list, Tok(",", line))
		}
		list = append(list, e)
	}

	return N("list", line, line, append(list, Tok("]", line))...)
}

// PyDict describes an empty dictionary display.
func PyDict(line int) Spec {
	return N("dictionary", line, line, Tok("{", line), Tok("}", line))
}

// PyString describes a string literal.
func PyString(line int, text string) Spec {
	return Leaf("string", line, text)
}

// PyDocstring describes a docstring statement.
func PyDocstring(line int, text string) Spec {
	return PyExpr(line, PyString(line, `"""`+text+`"""`))
}

// PyExpr describes an expression statement.
func PyExpr(line int, expr Spec) Spec {
	return N("expression_statement", line, line, expr)
}

// PyPass describes a pass statement.
func PyPass(line int) Spec {
	return N("pass_statement", line, line, Tok("pass", line))
}

// PyReturn describes a return statement with an optional value.
func PyReturn(line int, value ...Spec) Spec {
	return N("return_statement", line, line, append([]Spec{Tok("return", line)}, value...)...)
}

// PyRaise describes a raise statement with an optional exception.
func PyRaise(line int, value ...Spec) Spec {
	return N("raise_statement", line, line, append([]Spec{Tok("raise", line)}, value...)...)
}

// PyCall describes a call of a possibly dotted name.
func PyCall(line int, fn string, args ...Spec) Spec {
	list := []Spec{Tok("(", line)}
	for i, a := range args {
		if i > 0 {
			list = append(list, Tok(",", line))
		}
		list = append(list, a)
	}
	list = append(list, Tok(")", line))

	return N("call", line, line, PyName(line, fn).As("function"), N("argument_list", line, line, list...).As("arguments"))
}

// PyName describes an identifier or an attribute chain like "os.path.join".
func PyName(line int, name string) Spec {
	parts := strings.Split(name, ".")

	expr := Ident(line, parts[0])
	for _, p := range parts[1:] {
		expr = N("attribute", line, line, expr.As("object"), Tok(".", line), Ident(line, p).As("attribute"))
	}

	return expr
}

// PyAssign describes an assignment statement.
func PyAssign(line int, name string, value Spec) Spec {
	return PyExpr(line, N("assignment", line, line, Ident(line, name).As("left"), Tok("=", line), value.As("right")))
}

// PyTry describes a try statement with its handlers.
func PyTry(start, end int, body Spec, handlers ...Spec) Spec {
	return N("try_statement", start, end, append([]Spec{Tok("try", start), Tok(":", start), body.As("body")}, handlers...)...)
}

// PyExcept describes an except clause. An empty typ describes a bare except.
func PyExcept(start, end int, typ string, body ...Spec) Spec {
	list := []Spec{Tok("except", start)}
	if typ != "" {
		list = append(list, PyName(start, typ))
	}
	list = append(list, Tok(":", start), PyBlock(start+1, end, body...))

	return N("except_clause", start, end, list...)
}

// PyImport describes "import a.b, c as d". Aliases are written "c as d".
func PyImport(line int, names ...string) Spec {
	list := []Spec{Tok("import", line)}
	for i, name := range names {
		if i > 0 {
			list = append(list, Tok(",", line))
		}
		list = append(list, importName(line, name).As("name"))
	}

	return N("import_statement", line, line, list...)
}

// PyFromImport describes "from module import names". A name "*" describes a wildcard import.
func PyFromImport(line int, module string, names ...string) Spec {
	list := []Spec{Tok("from", line), dotted(line, module).As("module_name"), Tok("import", line)}
	for i, name := range names {
		if i > 0 {
			list = append(list, Tok(",", line))
		}

		if name == "*" {
			list = append(list, N("wildcard_import", line, line, Tok("*", line)))

			continue
		}
		list = append(list, importName(line, name).As("name"))
	}

	return N("import_from_statement", line, line, list...)
}

func importName(line int, name string) Spec {
	name, alias, ok := strings.Cut(name, " as ")
	if !ok {
		return dotted(line, name)
	}

	return N("aliased_import", line, line, dotted(line, name).As("name"), Tok("as", line), Ident(line, alias).As("alias"))
}

func dotted(line int, name string) Spec {
	var list []Spec
	for i, p := range strings.Split(name, ".") {
		if i > 0 {
			list = append(list, Tok(".", line))
		}
		list = append(list, Ident(line, p))
	}

	return N("dotted_name", line, line, list...)
}
