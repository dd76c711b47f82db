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

package python

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"runtime/trace"
	"strings"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// UnusedImportRule reports imported names that are never referenced in the module.
type UnusedImportRule struct{ rule.Base }

// UnusedImport creates the UNUSED_IMPORT rule.
func UnusedImport() UnusedImportRule {
	return UnusedImportRule{rule.NewBase(UnusedImportID, issue.Style, rule.Python, 0,
		lang.KindImport, lang.KindImportFrom)}
}

// Inspect implements [rule.Rule].
func (r UnusedImportRule) Inspect(ctx context.Context, tree *syntax.Tree, _ config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	if filepath.Base(tree.Path()) == "__init__.py" {
		return nil // re-exports
	}

	root := tree.Root()
	used := usedNames(root)

	var issues []issue.Issue
	for stmt := range match.Find(root, match.Kinds(lang.KindImport, lang.KindImportFrom)) {
		var unused []string
		for name := range boundNames(stmt) {
			if _, ok := used[name]; !ok {
				unused = append(unused, name)
			}
		}

		if len(unused) == 0 {
			continue
		}

		msg := fmt.Sprintf("Unused import %s", strings.Join(unused, ", "))
		if len(unused) > 1 {
			msg = fmt.Sprintf("Unused imports %s", strings.Join(unused, ", "))
		}

		issues = append(issues, r.Issue(stmt, issue.Info, msg, "Remove the import or add the name to __all__"))
	}

	return issues
}

// boundNames yields the names an import statement binds in the module namespace.
// Wildcard imports bind nothing visible.
func boundNames(stmt syntax.Node) iter.Seq[string] {
	from := stmt.Is(lang.KindImportFrom)

	return func(yield func(string) bool) {
		for name := range stmt.ChildrenByField("name") {
			var bound string

			switch name.Kind() {
			case lang.KindAliasedImport:
				bound = name.ChildByField("alias").Text()

			case lang.KindDottedName:
				var parts []string
				for id := range name.NamedChildren() {
					parts = append(parts, id.Text())
				}

				if len(parts) == 0 {
					continue
				}

				bound = parts[0] // import a.b binds a
				if from {
					bound = parts[len(parts)-1]
				}

			default:
				continue
			}

			if bound != "" && !yield(bound) {
				return
			}
		}
	}
}

// usedNames collects the identifiers referenced outside of import statements,
// together with the names exported through __all__.
func usedNames(root syntax.Node) map[string]struct{} {
	used := make(map[string]struct{})

	root.Inspect(func(n syntax.Node) bool {
		switch n.Kind() {
		case lang.KindImport, lang.KindImportFrom, lang.KindFutureImport:
			return false

		case lang.KindIdentifier:
			used[n.Text()] = struct{}{}

		case lang.KindAssignment:
			if left := n.ChildByField("left"); left.Is(lang.KindIdentifier) && left.Text() == "__all__" {
				for s := range match.Find(n.ChildByField("right"), match.Kinds(lang.KindString)) {
					used[strings.Trim(s.Text(), `"'`)] = struct{}{}
				}
			}
		}

		return true
	})

	return used
}

// enumerate numbers the elements of a sequence.
func enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
