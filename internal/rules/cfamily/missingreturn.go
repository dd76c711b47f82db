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

package cfamily

import (
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/flow/block"
	"fillmore-labs.com/structlint/internal/flow/graph"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// MissingReturnRule reports non-void functions with a path that reaches the end of the body
// or returns without a value.
type MissingReturnRule struct{ rule.Base }

var _ rule.Rule = MissingReturnRule{}

// MissingReturn creates the MISSING_RETURN rule.
func MissingReturn() MissingReturnRule {
	return MissingReturnRule{rule.NewBase(MissingReturnID, issue.PotentialBug, rule.CFamily, 0, lang.KindReturn, lang.KindFunction)}
}

// Inspect implements [rule.Rule].
func (r MissingReturnRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for fn := range match.Functions(tree) {
		body := match.Body(fn)
		if !body.Is(lang.KindBlock) || !returnsValue(fn) || uncertain(fn) {
			continue
		}

		name := match.FunctionName(fn)

		g := graph.Build(ctx, fn)
		for b := range g.Reachable() {
			switch b.Exit {
			case block.ExitFallOff:
				msg := fmt.Sprintf("Function %q can reach its end without returning a value", name)
				issues = append(issues, r.Issue(closingBrace(body), issue.Error, msg,
					"Return a value on every path or add a final return statement"))

			case block.ExitReturn:
				if value := match.First(b.ExitNode.NamedChildren()); value.Valid() && !value.Is(lang.KindComment) {
					continue
				}

				msg := fmt.Sprintf("Function %q returns without a value", name)
				issues = append(issues, r.Issue(b.ExitNode, issue.Error, msg, "Return a value of the declared type"))
			}
		}
	}

	return issues
}

// returnsValue reports whether fn declares a result that must be returned.
func returnsValue(fn syntax.Node) bool {
	typ := fn.ChildByField("type")

	switch {
	case !typ.Valid(): // constructors, destructors and conversion operators
		return false

	case typ.Is(lang.KindPlaceholderType): // deduced result
		return false

	case match.ReturnsPointer(fn):
		return true

	case typ.Is(lang.KindPrimitiveType) && typ.Text() == "void":
		return false
	}

	// main implicitly returns 0
	return match.ShortName(match.FunctionName(fn)) != "main"
}

// uncertain reports whether the function body contains recovered syntax errors or
// conditional compilation, which make the control flow unreliable.
func uncertain(fn syntax.Node) bool {
	return match.Any(match.FindLocal(fn, match.Kinds(lang.KindError, lang.KindPreprocessor)))
}

// closingBrace returns the last token of a compound statement.
func closingBrace(body syntax.Node) syntax.Node {
	last := body
	for c := range body.Children() {
		last = c
	}

	return last
}
