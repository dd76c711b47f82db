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

// Constructors for common C and C++ tree shapes. Statement constructors take the lines they span;
// expression constructors are placed on a single line.

// CFunction describes a function definition with its braces on the start and end lines.
func CFunction(start, end int, result string, pointer bool, name string, params []Spec, body ...Spec) Spec {
	list := []Spec{Tok("(", start)}
	for i, p := range params {
		if i > 0 {
			list = append(list, Tok(",", start))
		}
		list = append(list, p)
	}
	list = append(list, Tok(")", start))

	declarator := N("function_declarator", start, start,
		Ident(start, name).As("declarator"),
		N("parameter_list", start, start, list...).As("parameters"),
	)

	if pointer {
		declarator = N("pointer_declarator", start, start, Tok("*", start), declarator.As("declarator"))
	}

	return N("function_definition", start, end,
		typeSpec(start, result).As("type"),
		declarator.As("declarator"),
		CCompound(start, end, body...).As("body"),
	)
}

func typeSpec(line int, name string) Spec {
	switch name {
	case "auto":
		return N("placeholder_type_specifier", line, line, Leaf("auto", line, "auto"))

	case "int", "void", "char", "long", "double", "float", "bool", "size_t":
		return Leaf("primitive_type", line, name)

	default:
		return Leaf("type_identifier", line, name)
	}
}

// CParam describes a parameter declaration.
func CParam(line int, typ, name string, pointer bool) Spec {
	declarator := Ident(line, name)
	if pointer {
		declarator = N("pointer_declarator", line, line, Tok("*", line), declarator.As("declarator"))
	}

	return N("parameter_declaration", line, line, typeSpec(line, typ).As("type"), declarator.As("declarator"))
}

// CTranslationUnit wraps top-level definitions.
func CTranslationUnit(start, end int, defs ...Spec) Spec {
	return N("translation_unit", start, end, defs...)
}

// CCompound describes a compound statement.
func CCompound(start, end int, stmts ...Spec) Spec {
	list := append([]Spec{Tok("{", start)}, stmts...)

	return N("compound_statement", start, end, append(list, Tok("}", end))...)
}

// CReturn describes a return statement with an optional value.
func CReturn(line int, value ...Spec) Spec {
	list := append([]Spec{Tok("return", line)}, value...)

	return N("return_statement", line, line, append(list, Tok(";", line))...)
}

// CExpr describes an expression statement.
func CExpr(line int, expr Spec) Spec {
	return N("expression_statement", line, line, expr, Tok(";", line))
}

// CParen wraps an expression in parentheses.
func CParen(line int, expr Spec) Spec {
	return N("parenthesized_expression", line, line, Tok("(", line), expr, Tok(")", line))
}

// CIf describes an if statement with an optional else branch.
func CIf(start, end int, cond, then Spec, els ...Spec) Spec {
	list := []Spec{Tok("if", start), CParen(start, cond).As("condition"), then.As("consequence")}
	if len(els) > 0 {
		e := els[0]
		list = append(list, N("else_clause", e.start, e.end, Tok("else", e.start), e).As("alternative"))
	}

	return N("if_statement", start, end, list...)
}

// CWhile describes a while loop.
func CWhile(start, end int, cond, body Spec) Spec {
	return N("while_statement", start, end, Tok("while", start), CParen(start, cond).As("condition"), body.As("body"))
}

// CForever describes a for loop without condition.
func CForever(start, end int, body Spec) Spec {
	return N("for_statement", start, end,
		Tok("for", start), Tok("(", start), Tok(";", start), Tok(";", start), Tok(")", start),
		body.As("body"),
	)
}

// CSwitch describes a switch statement over cases.
func CSwitch(start, end int, cond Spec, cases ...Spec) Spec {
	return N("switch_statement", start, end,
		Tok("switch", start), CParen(start, cond).As("condition"), CCompound(start, end, cases...).As("body"),
	)
}

// CCase describes a case label with its statements.
func CCase(start, end int, value Spec, stmts ...Spec) Spec {
	list := append([]Spec{Tok("case", start), value.As("value"), Tok(":", start)}, stmts...)

	return N("case_statement", start, end, list...)
}

// CDefault describes a default label with its statements.
func CDefault(start, end int, stmts ...Spec) Spec {
	list := append([]Spec{Tok("default", start), Tok(":", start)}, stmts...)

	return N("case_statement", start, end, list...)
}

// CBreak describes a break statement.
func CBreak(line int) Spec {
	return N("break_statement", line, line, Tok("break", line), Tok(";", line))
}

// CCall describes a call expression.
func CCall(line int, fn string, args ...Spec) Spec {
	list := []Spec{Tok("(", line)}
	for i, a := range args {
		if i > 0 {
			list = append(list, Tok(",", line))
		}
		list = append(list, a)
	}
	list = append(list, Tok(")", line))

	callee := Ident(line, fn)
	if strings.Contains(fn, "::") {
		callee = Leaf("qualified_identifier", line, fn)
	}

	return N("call_expression", line, line, callee.As("function"), N("argument_list", line, line, list...).As("arguments"))
}

// CDecl describes a declaration with an initializer.
func CDecl(line int, typ, name string, pointer bool, value Spec) Spec {
	declarator := Ident(line, name)
	if pointer {
		declarator = N("pointer_declarator", line, line, Tok("*", line), declarator.As("declarator"))
	}

	return N("declaration", line, line,
		typeSpec(line, typ).As("type"),
		N("init_declarator", line, line, declarator.As("declarator"), Tok("=", line), value.As("value")).As("declarator"),
		Tok(";", line),
	)
}

// CAssign describes an assignment expression.
func CAssign(line int, left, right Spec) Spec {
	return N("assignment_expression", line, line, left.As("left"), Tok("=", line).As("operator"), right.As("right"))
}

// CBinary describes a binary expression.
func CBinary(line int, left Spec, op string, right Spec) Spec {
	return N("binary_expression", line, line, left.As("left"), Tok(op, line).As("operator"), right.As("right"))
}

// CNot describes a logical negation.
func CNot(line int, arg Spec) Spec {
	return N("unary_expression", line, line, Tok("!", line).As("operator"), arg.As("argument"))
}

// CNull describes the NULL macro.
func CNull(line int) Spec {
	return Leaf("null", line, "NULL")
}

// CNumber describes a number literal.
func CNumber(line int, text string) Spec {
	return Leaf("number_literal", line, text)
}

// CDeref describes a pointer dereference *name.
func CDeref(line int, name string) Spec {
	return N("pointer_expression", line, line, Tok("*", line).As("operator"), Ident(line, name).As("argument"))
}

// CArrow describes a member access name->field.
func CArrow(line int, name, field string) Spec {
	return N("field_expression", line, line,
		Ident(line, name).As("argument"), Tok("->", line).As("operator"), Leaf("field_identifier", line, field).As("field"),
	)
}

// CNew describes a new expression. A length makes it an array allocation.
func CNew(line int, typ string, length ...Spec) Spec {
	children := []Spec{Tok("new", line), typeSpec(line, typ).As("type")}
	if len(length) > 0 {
		children = append(children,
			N("new_declarator", line, line, Tok("[", line), length[0].As("length"), Tok("]", line)).As("declarator"))
	}

	return N("new_expression", line, line, children...)
}

// CDelete describes a delete expression.
func CDelete(line int, name string, array bool) Spec {
	children := []Spec{Tok("delete", line)}
	if array {
		children = append(children, Tok("[", line), Tok("]", line))
	}

	return N("delete_expression", line, line, append(children, Ident(line, name))...)
}
