// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package graph

import (
	"strings"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/syntax"
)

// FuncName is a possibly namespace qualified function name.
type FuncName struct {
	Namespace, Name string
}

// _knownFuncs are functions that do not return.
var _knownFuncs = map[FuncName]struct{}{
	{Name: "exit"}:                  {},
	{Name: "_exit"}:                 {},
	{Name: "_Exit"}:                 {},
	{Name: "quick_exit"}:            {},
	{Name: "abort"}:                 {},
	{Name: "longjmp"}:               {},
	{Name: "siglongjmp"}:            {},
	{Name: "__builtin_unreachable"}: {},
	{Name: "__builtin_trap"}:        {},
	{Name: "__assert_fail"}:         {},
	{Name: "err"}:                   {},
	{Name: "errx"}:                  {},

	{Namespace: "std", Name: "exit"}:              {},
	{Namespace: "std", Name: "_Exit"}:             {},
	{Namespace: "std", Name: "quick_exit"}:        {},
	{Namespace: "std", Name: "abort"}:             {},
	{Namespace: "std", Name: "terminate"}:         {},
	{Namespace: "std", Name: "unreachable"}:       {},
	{Namespace: "std", Name: "longjmp"}:           {},
	{Namespace: "std", Name: "rethrow_exception"}: {},
	{Namespace: "std", Name: "throw_with_nested"}: {},
}

// ParseFuncName splits a callee like "std::exit" or "::exit" into namespace and name.
func ParseFuncName(callee string) FuncName {
	callee = strings.TrimPrefix(callee, "::")

	i := strings.LastIndex(callee, "::")
	if i < 0 {
		return FuncName{Name: callee}
	}

	return FuncName{Namespace: callee[:i], Name: callee[i+2:]}
}

// CantReturn reports whether the expression is a call of a function that does not return.
func CantReturn(expr syntax.Node) bool {
	call := match.Unwrap(expr)
	if !call.Is(lang.KindCall) {
		return false
	}

	_, ok := _knownFuncs[ParseFuncName(match.CallName(call))]

	return ok
}
