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

// Package python contains rules for Python sources.
package python

import (
	"context"
	"fmt"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Rule ids.
const (
	BareExceptID        = "BARE_EXCEPT"
	MutableDefaultArgID = "MUTABLE_DEFAULT_ARG"
	UnusedImportID      = "UNUSED_IMPORT"
	MissingDocstringID  = "MISSING_DOCSTRING"
	MissingTypeHintsID  = "MISSING_TYPE_HINTS"
)

// Rules returns the Python rules.
func Rules() []rule.Rule {
	return []rule.Rule{BareExcept(), MutableDefaultArg(), UnusedImport(), MissingDocstring(), MissingTypeHints()}
}

// BareExceptRule reports except clauses without an exception type that do not re-raise.
type BareExceptRule struct{ rule.Base }

// BareExcept creates the BARE_EXCEPT rule.
func BareExcept() BareExceptRule {
	return BareExceptRule{rule.NewBase(BareExceptID, issue.ErrorHandling, rule.Python,
		config.CheckExceptionHandling, lang.KindCatch)}
}

// Inspect implements [rule.Rule].
func (r BareExceptRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for clause := range match.Find(tree.Root(), match.Kinds(lang.KindCatch)) {
		if !bare(clause) {
			continue
		}

		if match.Any(match.FindLocal(match.Body(clause), match.Kinds(lang.KindThrow))) {
			continue // cleanup and re-raise
		}

		issues = append(issues, r.Issue(clause, issue.Warning,
			"Bare except catches all exceptions, including SystemExit and KeyboardInterrupt",
			"Catch a specific exception type, or use \"except Exception:\""))
	}

	return issues
}

// bare reports whether an except clause names no exception type.
func bare(clause syntax.Node) bool {
	for c := range clause.NamedChildren() {
		if !c.Is(lang.KindBlock, lang.KindComment) {
			return false
		}
	}

	return true
}

// MutableDefaultArgRule reports parameters defaulting to a mutable value, which is shared between calls.
type MutableDefaultArgRule struct{ rule.Base }

// MutableDefaultArg creates the MUTABLE_DEFAULT_ARG rule.
func MutableDefaultArg() MutableDefaultArgRule {
	return MutableDefaultArgRule{rule.NewBase(MutableDefaultArgID, issue.PotentialBug, rule.Python, 0,
		lang.KindDefaultParameter, lang.KindTypedDefaultParameter)}
}

// Inspect implements [rule.Rule].
func (r MutableDefaultArgRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for fn := range match.Find(tree.Root(), match.Kinds(lang.KindFunction, lang.KindLambda)) {
		for param := range match.Parameters(fn) {
			if !param.Is(lang.KindDefaultParameter, lang.KindTypedDefaultParameter) {
				continue
			}

			value := param.ChildByField("value")
			if !mutable(value) {
				continue
			}

			name := match.ParameterName(param).Text()
			msg := fmt.Sprintf("Parameter %q of %q has a mutable default value", name, match.FunctionName(fn))
			issues = append(issues, r.Issue(value, issue.Warning, msg,
				fmt.Sprintf("Default to None and create the value in the function body: if %s is None: %s = %s",
					name, name, value.Text())))
		}
	}

	return issues
}

// mutable reports whether an expression creates a new mutable container.
func mutable(value syntax.Node) bool {
	switch value.Kind() {
	case lang.KindList, lang.KindDictionary, lang.KindSet, lang.KindComprehension:
		return true

	case lang.KindCall:
		switch match.CallName(value) {
		case "list", "dict", "set", "bytearray", "defaultdict", "OrderedDict", "deque":
			return true
		}
	}

	return false
}

// MissingDocstringRule reports public functions and classes without a docstring.
type MissingDocstringRule struct{ rule.Base }

// MissingDocstring creates the MISSING_DOCSTRING rule.
func MissingDocstring() MissingDocstringRule {
	return MissingDocstringRule{rule.NewBase(MissingDocstringID, issue.Documentation, rule.Python,
		config.RequireDocstrings, lang.KindFunction, lang.KindClass)}
}

// Inspect implements [rule.Rule].
func (r MissingDocstringRule) Inspect(ctx context.Context, tree *syntax.Tree, cfg config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for def := range match.Find(tree.Root(), match.Kinds(lang.KindFunction, lang.KindClass)) {
		name := def.ChildByField("name").Text()
		if strings.HasPrefix(name, "_") || def.Enclosing(lang.KindFunction).Valid() {
			continue // private, dunder or local definition
		}

		body := match.Body(def)
		if docstring(body) {
			continue
		}

		if span := body.EndLine() - def.StartLine() + 1; def.Is(lang.KindFunction) && span < cfg.MinDocstringLines() {
			continue // short functions document themselves
		}

		what := "Function"
		if def.Is(lang.KindClass) {
			what = "Class"
		}

		msg := fmt.Sprintf("%s %q is missing a docstring", what, name)
		issues = append(issues, r.Issue(def, issue.Info, msg, "Add a docstring describing its purpose"))
	}

	return issues
}

// docstring reports whether a block starts with a string literal statement.
func docstring(body syntax.Node) bool {
	for stmt := range body.NamedChildren() {
		if stmt.Is(lang.KindComment) {
			continue
		}

		expr := match.First(stmt.NamedChildren())

		return stmt.Is(lang.KindExpressionStatement) && expr.Is(lang.KindString)
	}

	return false
}

// MissingTypeHintsRule reports functions with unannotated parameters or return values.
type MissingTypeHintsRule struct{ rule.Base }

// MissingTypeHints creates the MISSING_TYPE_HINTS rule.
func MissingTypeHints() MissingTypeHintsRule {
	return MissingTypeHintsRule{rule.NewBase(MissingTypeHintsID, issue.Style, rule.Python,
		config.EnforceTypeHints, lang.KindFunction)}
}

// Inspect implements [rule.Rule].
func (r MissingTypeHintsRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for fn := range match.Functions(tree) {
		name := match.FunctionName(fn)
		method := fn.Enclosing(lang.KindClass, lang.KindFunction).Is(lang.KindClass)

		var missing []string
		for i, param := range enumerate(match.Parameters(fn)) {
			if !param.Is(lang.KindIdentifier, lang.KindDefaultParameter, lang.KindSplatParameter) {
				continue // annotated, or a separator like "*" and "/"
			}

			p := match.ParameterName(param)
			if !p.Valid() {
				p = param.FirstChild(lang.KindIdentifier)
			}

			pname := p.Text()
			if i == 0 && method && (pname == "self" || pname == "cls") {
				continue
			}

			missing = append(missing, pname)
		}

		if !fn.ChildByField("return_type").Valid() && name != "__init__" {
			missing = append(missing, "return value")
		}

		if len(missing) == 0 {
			continue
		}

		msg := fmt.Sprintf("Function %q is missing type hints for %s", name, strings.Join(missing, ", "))
		issues = append(issues, r.Issue(fn, issue.Info, msg, "Annotate parameters and the return type"))
	}

	return issues
}
