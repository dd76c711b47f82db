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
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// MissingNullCheckRule reports pointer parameters dereferenced before any null test.
type MissingNullCheckRule struct{ rule.Base }

var _ rule.Rule = MissingNullCheckRule{}

// MissingNullCheck creates the MISSING_NULL_CHECK rule.
func MissingNullCheck() MissingNullCheckRule {
	return MissingNullCheckRule{rule.NewBase(MissingNullCheckID, issue.Safety, rule.CFamily,
		config.CheckMemorySafety, lang.KindPointerExpr, lang.KindField, lang.KindSubscript)}
}

// Inspect implements [rule.Rule].
func (r MissingNullCheckRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for fn := range match.Functions(tree) {
		body := match.Body(fn)
		if !body.Valid() || match.ShortName(match.FunctionName(fn)) == "main" {
			continue
		}

		for param := range match.Parameters(fn) {
			if !param.Is(lang.KindParameter) || !param.ChildByField("declarator").Is(lang.KindPointerDeclarator) {
				continue
			}

			name := match.ParameterName(param).Text()
			if name == "" {
				continue
			}

			deref := uncheckedDereference(body, name)
			if !deref.Valid() {
				continue
			}

			msg := fmt.Sprintf("Pointer parameter %q is dereferenced without a null check", name)
			issues = append(issues, r.Issue(deref, issue.Warning, msg,
				fmt.Sprintf("Check %s against NULL before dereferencing it", name)))
		}
	}

	return issues
}

// uncheckedDereference returns the first dereference of name in source order, unless a
// null test or an assignment of the variable comes first.
func uncheckedDereference(body syntax.Node, name string) syntax.Node {
	for n := range match.FindLocal(body, func(syntax.Node) bool { return true }) {
		switch {
		case match.ChecksNull(n, name):
			return syntax.Node{}

		case match.Dereferences(n, name):
			return n

		case n.Is(lang.KindAssignment):
			if target, _ := match.Binding(n); target.Is(lang.KindIdentifier) && target.Text() == name {
				return syntax.Node{}
			}
		}
	}

	return syntax.Node{}
}
