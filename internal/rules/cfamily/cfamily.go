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

// Package cfamily contains rules for C and C++ sources.
package cfamily

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Rule ids.
const (
	MissingReturnID    = "MISSING_RETURN"
	ResourceLeakID     = "RESOURCE_LEAK"
	MissingNullCheckID = "MISSING_NULL_CHECK"
	EmptyCatchID       = "EMPTY_CATCH"
)

// Rules returns the C and C++ rules.
func Rules() []rule.Rule {
	return []rule.Rule{MissingReturn(), ResourceLeak(), MissingNullCheck(), EmptyCatch()}
}

// EmptyCatchRule reports C++ catch clauses that silently swallow exceptions.
type EmptyCatchRule struct{ rule.Base }

var _ rule.Rule = EmptyCatchRule{}

// EmptyCatch creates the EMPTY_CATCH rule.
func EmptyCatch() EmptyCatchRule {
	return EmptyCatchRule{rule.NewBase(EmptyCatchID, issue.ErrorHandling, rule.CFamily,
		config.RequireErrorHandling, lang.KindCatch)}
}

// Inspect implements [rule.Rule].
func (r EmptyCatchRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	var issues []issue.Issue
	for clause := range match.Find(tree.Root(), match.Kinds(lang.KindCatch)) {
		body := match.Body(clause)
		if !body.Valid() || !empty(body) {
			continue
		}

		issues = append(issues, r.Issue(clause, issue.Warning, "Exception is caught and silently ignored",
			"Handle, log or rethrow the exception; comment the block if ignoring it is intended"))
	}

	return issues
}

// empty reports whether a block has neither statements nor comments.
func empty(body syntax.Node) bool {
	for range body.NamedChildren() {
		return false
	}

	return true
}
