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

package issue

import (
	"regexp"
	"strings"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/syntax"
)

// Linter is the name of the linter in suppression directives.
const Linter = "structlint"

// Suppressions records the lines carrying nolint directives and the names they list.
type Suppressions map[int][]string

var nolintPattern = regexp.MustCompile(`^(?://|#|/\*)\s*nolint:([a-zA-Z0-9_-]+(?:\s*,\s*[a-zA-Z0-9_-]+)*)`)

// ParseDirective extracts linter or rule names from a nolint comment.
func ParseDirective(comment string) []string {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return nil
	}

	var names []string
	for name := range strings.SplitSeq(matches[1], ",") {
		if name := strings.ToLower(strings.TrimSpace(name)); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// CollectSuppressions finds all nolint directives in the comments of a tree.
func CollectSuppressions(tree *syntax.Tree) Suppressions {
	var s Suppressions
	for c := range match.Find(tree.Root(), match.Kinds(lang.KindComment)) {
		names := ParseDirective(c.Text())
		if len(names) == 0 {
			continue
		}

		if s == nil {
			s = make(Suppressions)
		}

		line := c.StartLine()
		s[line] = append(s[line], names...)
	}

	return s
}

// Suppressed reports whether a directive on the issue's line covers its rule.
func (s Suppressions) Suppressed(i Issue) bool {
	id := strings.ToLower(i.RuleID)
	for _, name := range s[i.Line] {
		if name == Linter || name == "all" || name == id {
			return true
		}
	}

	return false
}
