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

package lang

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is the grammatical role of a syntax tree node, independent of the grammar that produced it.
//
// Raw node kinds of each grammar are mapped to a [Kind] by a [Vocabulary].
// Raw kinds without a mapping are [KindUnhandled], so rules never fail on unknown grammar nodes.
type Kind uint8

const (
	KindUnhandled Kind = iota
	KindError
	KindComment
	KindFunction
	KindLambda
	KindClass
	KindBlock
	KindIf
	KindElse
	KindElif
	KindFor
	KindWhile
	KindDoWhile
	KindSwitch
	KindCase
	KindDefaultCase
	KindTry
	KindCatch
	KindFinally
	KindConditional
	KindBinary
	KindUnary
	KindLogicalOperator
	KindReturn
	KindBreak
	KindContinue
	KindGoto
	KindLabeled
	KindThrow
	KindCall
	KindNew
	KindDelete
	KindCast
	KindParenthesized
	KindIdentifier
	KindFieldIdentifier
	KindQualifiedIdentifier
	KindField
	KindSubscript
	KindPointerExpr
	KindPointerDeclarator
	KindReferenceDeclarator
	KindFunctionDeclarator
	KindInitDeclarator
	KindDeclaration
	KindAssignment
	KindExpressionStatement
	KindParameters
	KindParameter
	KindDefaultParameter
	KindTypedParameter
	KindTypedDefaultParameter
	KindSplatParameter
	KindPrimitiveType
	KindTypeIdentifier
	KindPlaceholderType
	KindTypeAnnotation
	KindImport
	KindImportFrom
	KindFutureImport
	KindAliasedImport
	KindDottedName
	KindWildcardImport
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
	KindList
	KindDictionary
	KindSet
	KindComprehension
	KindAttribute
	KindPreprocessor
	KindDefaultKeyword
	KindDecorated
	KindModule
)

// Vocabulary maps raw node kinds of one grammar to [Kind] values.
type Vocabulary map[string]Kind

// Kind returns the [Kind] for a raw grammar node kind.
func (v Vocabulary) Kind(raw string) Kind {
	return v[raw] // missing entries yield KindUnhandled
}

// cFamilyVocabulary returns the node kinds shared by the C and C++ grammars.
func cFamilyVocabulary() Vocabulary {
	return Vocabulary{
		"ERROR":                    KindError,
		"comment":                  KindComment,
		"translation_unit":         KindModule,
		"function_definition":      KindFunction,
		"compound_statement":       KindBlock,
		"if_statement":             KindIf,
		"else_clause":              KindElse,
		"for_statement":            KindFor,
		"while_statement":          KindWhile,
		"do_statement":             KindDoWhile,
		"switch_statement":         KindSwitch,
		"case_statement":           KindCase,
		"conditional_expression":   KindConditional,
		"binary_expression":        KindBinary,
		"unary_expression":         KindUnary,
		"&&":                       KindLogicalOperator,
		"||":                       KindLogicalOperator,
		"return_statement":         KindReturn,
		"break_statement":          KindBreak,
		"continue_statement":       KindContinue,
		"goto_statement":           KindGoto,
		"labeled_statement":        KindLabeled,
		"call_expression":          KindCall,
		"cast_expression":          KindCast,
		"parenthesized_expression": KindParenthesized,
		"identifier":               KindIdentifier,
		"field_identifier":         KindFieldIdentifier,
		"field_expression":         KindField,
		"subscript_expression":     KindSubscript,
		"pointer_expression":       KindPointerExpr,
		"pointer_declarator":       KindPointerDeclarator,
		"function_declarator":      KindFunctionDeclarator,
		"init_declarator":          KindInitDeclarator,
		"declaration":              KindDeclaration,
		"assignment_expression":    KindAssignment,
		"expression_statement":     KindExpressionStatement,
		"parameter_list":           KindParameters,
		"parameter_declaration":    KindParameter,
		"primitive_type":           KindPrimitiveType,
		"type_identifier":          KindTypeIdentifier,
		"sized_type_specifier":     KindPrimitiveType,
		"string_literal":           KindString,
		"number_literal":           KindNumber,
		"true":                     KindTrue,
		"false":                    KindFalse,
		"null":                     KindNull,
		"default":                  KindDefaultKeyword,
		"preproc_if":               KindPreprocessor,
		"preproc_ifdef":            KindPreprocessor,
		"preproc_elif":             KindPreprocessor,
		"preproc_else":             KindPreprocessor,
		"preproc_call":             KindPreprocessor,
		"preproc_def":              KindPreprocessor,
		"preproc_function_def":     KindPreprocessor,
	}
}

// cppVocabulary extends [cFamilyVocabulary] with C++ node kinds.
func cppVocabulary() Vocabulary {
	v := cFamilyVocabulary()

	for raw, kind := range map[string]Kind{
		"lambda_expression":              KindLambda,
		"class_specifier":                KindClass,
		"struct_specifier":               KindClass,
		"for_range_loop":                 KindFor,
		"try_statement":                  KindTry,
		"catch_clause":                   KindCatch,
		"throw_statement":                KindThrow,
		"new_expression":                 KindNew,
		"delete_expression":              KindDelete,
		"qualified_identifier":           KindQualifiedIdentifier,
		"reference_declarator":           KindReferenceDeclarator,
		"placeholder_type_specifier":     KindPlaceholderType,
		"auto":                           KindPlaceholderType,
		"nullptr":                        KindNull,
		"condition_clause":               KindParenthesized,
		"optional_parameter_declaration": KindParameter,
		"and":                            KindLogicalOperator,
		"or":                             KindLogicalOperator,
	} {
		v[raw] = kind
	}

	return v
}

func pythonVocabulary() Vocabulary {
	return Vocabulary{
		"ERROR":                    KindError,
		"comment":                  KindComment,
		"module":                   KindModule,
		"function_definition":      KindFunction,
		"lambda":                   KindLambda,
		"class_definition":         KindClass,
		"decorated_definition":     KindDecorated,
		"block":                    KindBlock,
		"if_statement":             KindIf,
		"elif_clause":              KindElif,
		"else_clause":              KindElse,
		"for_statement":            KindFor,
		"while_statement":          KindWhile,
		"match_statement":          KindSwitch,
		"case_clause":              KindCase,
		"try_statement":            KindTry,
		"except_clause":            KindCatch,
		"except_group_clause":      KindCatch,
		"finally_clause":           KindFinally,
		"conditional_expression":   KindConditional,
		"boolean_operator":         KindBinary,
		"not_operator":             KindUnary,
		"and":                      KindLogicalOperator,
		"or":                       KindLogicalOperator,
		"return_statement":         KindReturn,
		"break_statement":          KindBreak,
		"continue_statement":       KindContinue,
		"raise_statement":          KindThrow,
		"call":                     KindCall,
		"identifier":               KindIdentifier,
		"attribute":                KindAttribute,
		"subscript":                KindSubscript,
		"assignment":               KindAssignment,
		"augmented_assignment":     KindAssignment,
		"expression_statement":     KindExpressionStatement,
		"parameters":               KindParameters,
		"default_parameter":        KindDefaultParameter,
		"typed_parameter":          KindTypedParameter,
		"typed_default_parameter":  KindTypedDefaultParameter,
		"list_splat_pattern":       KindSplatParameter,
		"dictionary_splat_pattern": KindSplatParameter,
		"type":                     KindTypeAnnotation,
		"import_statement":         KindImport,
		"import_from_statement":    KindImportFrom,
		"future_import_statement":  KindFutureImport,
		"aliased_import":           KindAliasedImport,
		"dotted_name":              KindDottedName,
		"wildcard_import":          KindWildcardImport,
		"string":                   KindString,
		"integer":                  KindNumber,
		"float":                    KindNumber,
		"true":                     KindTrue,
		"false":                    KindFalse,
		"none":                     KindNull,
		"list":                     KindList,
		"dictionary":               KindDictionary,
		"set":                      KindSet,
		"list_comprehension":       KindComprehension,
		"dictionary_comprehension": KindComprehension,
		"set_comprehension":        KindComprehension,
	}
}

func goVocabulary() Vocabulary {
	return Vocabulary{
		"ERROR":                       KindError,
		"comment":                     KindComment,
		"source_file":                 KindModule,
		"function_declaration":        KindFunction,
		"method_declaration":          KindFunction,
		"func_literal":                KindLambda,
		"block":                       KindBlock,
		"if_statement":                KindIf,
		"for_statement":               KindFor,
		"expression_switch_statement": KindSwitch,
		"type_switch_statement":       KindSwitch,
		"select_statement":            KindSwitch,
		"expression_case":             KindCase,
		"type_case":                   KindCase,
		"communication_case":          KindCase,
		"default_case":                KindDefaultCase,
		"binary_expression":           KindBinary,
		"unary_expression":            KindUnary,
		"&&":                          KindLogicalOperator,
		"||":                          KindLogicalOperator,
		"return_statement":            KindReturn,
		"break_statement":             KindBreak,
		"continue_statement":          KindContinue,
		"goto_statement":              KindGoto,
		"labeled_statement":           KindLabeled,
		"call_expression":             KindCall,
		"identifier":                  KindIdentifier,
		"field_identifier":            KindFieldIdentifier,
		"selector_expression":         KindField,
		"parenthesized_expression":    KindParenthesized,
		"parameter_list":              KindParameters,
		"parameter_declaration":       KindParameter,
		"expression_statement":        KindExpressionStatement,
		"interpreted_string_literal":  KindString,
		"raw_string_literal":          KindString,
		"int_literal":                 KindNumber,
		"true":                        KindTrue,
		"false":                       KindFalse,
		"nil":                         KindNull,
	}
}

var _vocabularies = map[Language]Vocabulary{
	C:      cFamilyVocabulary(),
	CPP:    cppVocabulary(),
	Python: pythonVocabulary(),
	Go:     goVocabulary(),
}

// VocabularyOf returns the node kind vocabulary of a language.
// Languages without a grammar get an empty vocabulary that maps every kind to [KindUnhandled].
func VocabularyOf(l Language) Vocabulary {
	return _vocabularies[l]
}

// Nesting reports whether the kind opens a nested compound statement.
func (k Kind) Nesting() bool {
	switch k {
	case KindIf, KindFor, KindWhile, KindDoWhile, KindSwitch, KindTry:
		return true

	default:
		return false
	}
}

// FunctionBoundary reports whether the kind starts a separately scored function.
func (k Kind) FunctionBoundary() bool {
	return k == KindFunction || k == KindLambda
}

// Loop reports whether the kind is a loop statement.
func (k Kind) Loop() bool {
	return k == KindFor || k == KindWhile || k == KindDoWhile
}
