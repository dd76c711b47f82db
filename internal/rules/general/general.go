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

// Package general contains language-independent rules based on structural metrics.
package general

import (
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/metric"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Rule ids.
const (
	FuncTooLongID    = "FUNC_TOO_LONG"
	HighComplexityID = "HIGH_COMPLEXITY"
	DeepNestingID    = "DEEP_NESTING"
)

// Rules returns the general rules.
func Rules() []rule.Rule {
	return []rule.Rule{FuncTooLong(), HighComplexity(), DeepNesting()}
}

// Metric is a rule reporting functions whose metric exceeds a configured threshold.
type Metric struct {
	rule.Base
	measure   func(fn syntax.Node) (int, error)
	threshold func(cfg config.RuleConfig) int
	message   string
	advice    string
}

var _ rule.Rule = Metric{}

// FuncTooLong reports functions spanning more lines than max_function_length.
func FuncTooLong() Metric {
	return Metric{
		Base:      rule.NewBase(FuncTooLongID, issue.Complexity, rule.General, 0, lang.KindFunction),
		measure:   metric.LineSpan,
		threshold: config.RuleConfig.MaxFunctionLength,
		message:   "Function %q is %d lines long (max %d)",
		advice:    "Split the function into smaller functions with a single responsibility",
	}
}

// HighComplexity reports functions with a cyclomatic complexity above max_complexity.
func HighComplexity() Metric {
	return Metric{
		Base:      rule.NewBase(HighComplexityID, issue.Complexity, rule.General, 0, lang.KindFunction),
		measure:   func(fn syntax.Node) (int, error) { return metric.Cyclomatic(fn), nil },
		threshold: config.RuleConfig.MaxComplexity,
		message:   "Function %q has cyclomatic complexity %d (max %d)",
		advice:    "Reduce branching by extracting conditions or using early returns",
	}
}

// DeepNesting reports functions nesting control structures deeper than max_nesting_depth.
func DeepNesting() Metric {
	return Metric{
		Base:      rule.NewBase(DeepNestingID, issue.Complexity, rule.General, 0, lang.KindFunction),
		measure:   func(fn syntax.Node) (int, error) { return metric.MaxNesting(fn), nil },
		threshold: config.RuleConfig.MaxNestingDepth,
		message:   "Function %q has nesting depth %d (max %d)",
		advice:    "Flatten the control flow with guard clauses or extract nested blocks",
	}
}

// Inspect implements [rule.Rule].
func (r Metric) Inspect(ctx context.Context, tree *syntax.Tree, cfg config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	limit := r.threshold(cfg)

	var issues []issue.Issue
	for fn := range match.Functions(tree) {
		value, err := r.measure(fn)
		if err != nil {
			if diag, ok := issue.Inconsistent(tree.Path(), err); ok {
				issues = append(issues, diag)

				continue
			}

			panic(err) // converted to a fault by the engine
		}

		if value <= limit {
			continue
		}

		msg := fmt.Sprintf(r.message, match.FunctionName(fn), value, limit)
		issues = append(issues, r.Issue(fn, issue.Warning, msg, r.advice))
	}

	return issues
}
