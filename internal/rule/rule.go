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

// Package rule defines the capability shared by all rules and the rule sets the engine runs.
package rule

import (
	"context"
	"slices"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/syntax"
)

//go:generate go tool stringer -type=Variant -linecomment

// Variant tags the family a rule belongs to.
type Variant uint8

const (
	General Variant = iota // general
	CFamily                // cfamily
	Python                 // python
)

// Rule inspects a syntax tree and reports issues.
//
// Rules are stateless: each invocation receives only the tree and the configuration
// and returns a fresh issue list.
type Rule interface {
	// ID is the stable identifier of the rule, e.g. "FUNC_TOO_LONG".
	ID() string

	// Category is the category of the issues the rule reports.
	Category() issue.Category

	// Variant is the family of the rule.
	Variant() Variant

	// Requires lists node kinds of which at least one must be present for the rule to apply.
	// An empty list means the rule applies to every tree.
	Requires() []lang.Kind

	// Enabled reports whether the rule is switched on by the configuration.
	Enabled(cfg config.RuleConfig) bool

	// Inspect runs the rule.
	Inspect(ctx context.Context, tree *syntax.Tree, cfg config.RuleConfig) []issue.Issue
}

// Base carries the static properties of a rule.
type Base struct {
	id       string
	category issue.Category
	variant  Variant
	requires []lang.Kind
	toggle   config.Check
}

// NewBase creates the static properties of a rule. A zero toggle means the rule is always enabled.
func NewBase(id string, category issue.Category, variant Variant, toggle config.Check, requires ...lang.Kind) Base {
	return Base{id: id, category: category, variant: variant, requires: requires, toggle: toggle}
}

// ID implements [Rule].
func (b Base) ID() string { return b.id }

// Category implements [Rule].
func (b Base) Category() issue.Category { return b.category }

// Variant implements [Rule].
func (b Base) Variant() Variant { return b.variant }

// Requires implements [Rule].
func (b Base) Requires() []lang.Kind { return b.requires }

// Enabled implements [Rule].
func (b Base) Enabled(cfg config.RuleConfig) bool {
	return b.toggle == 0 || cfg.Enabled(b.toggle)
}

// Issue creates an issue of this rule located at n.
func (b Base) Issue(n syntax.Node, severity issue.Severity, message, suggestion string) issue.Issue {
	return issue.At(n, b.id, severity, b.category, message, suggestion)
}

// Set is an immutable list of rules for one language.
type Set struct {
	language lang.Language
	rules    []Rule
}

// NewSet creates a rule set for a language.
func NewSet(language lang.Language, rules ...Rule) Set {
	return Set{language: language, rules: slices.Clone(rules)}
}

// Language returns the language of the set.
func (s Set) Language() lang.Language { return s.language }

// Rules returns the rules of the set.
func (s Set) Rules() []Rule { return slices.Clone(s.rules) }

// Len returns the number of rules.
func (s Set) Len() int { return len(s.rules) }

// Without returns a copy of the set without the rules with the given ids.
func (s Set) Without(ids ...string) Set {
	rules := slices.DeleteFunc(slices.Clone(s.rules), func(r Rule) bool { return slices.Contains(ids, r.ID()) })

	return Set{language: s.language, rules: rules}
}

// With returns a copy of the set with additional rules.
func (s Set) With(rules ...Rule) Set {
	return Set{language: s.language, rules: slices.Concat(s.rules, rules)}
}

// Sets maps languages to their rule sets.
type Sets map[lang.Language]Set

// NewSets indexes rule sets by language.
func NewSets(sets ...Set) Sets {
	m := make(Sets, len(sets))
	for _, s := range sets {
		m[s.language] = s
	}

	return m
}

// For returns the rule set of a language.
func (s Sets) For(language lang.Language) (Set, bool) {
	set, ok := s[language]

	return set, ok
}
