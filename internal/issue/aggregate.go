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

package issue

import (
	"cmp"
	"maps"
	"slices"
)

// Aggregate concatenates per-rule issue lists, drops issues with a duplicate
// (rule, file, line) key keeping the first, and stable-sorts the result by
// line, column and severity rank.
func Aggregate(lists ...[]Issue) []Issue {
	var n int
	for _, l := range lists {
		n += len(l)
	}

	result := make([]Issue, 0, n)
	seen := make(map[Key]struct{}, n)

	for _, l := range lists {
		for _, i := range l {
			k := i.Key()
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}
			result = append(result, i)
		}
	}

	slices.SortStableFunc(result, Compare)

	return result
}

// Compare orders issues by line, column and severity rank.
func Compare(a, b Issue) int {
	return cmp.Or(
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Column, b.Column),
		cmp.Compare(a.Severity.Rank(), b.Severity.Rank()),
	)
}

// Filter returns the issues for which keep returns true, preserving order.
func Filter(issues []Issue, keep func(Issue) bool) []Issue {
	return slices.DeleteFunc(slices.Clone(issues), func(i Issue) bool { return !keep(i) })
}

// Summary counts issues by severity and category.
type Summary struct {
	Total      int              `json:"total"`
	BySeverity map[Severity]int `json:"by_severity"`
	ByCategory map[Category]int `json:"by_category"`
}

// Summarize counts the issues of all given lists.
func Summarize(lists ...[]Issue) Summary {
	s := Summary{
		BySeverity: make(map[Severity]int),
		ByCategory: make(map[Category]int),
	}

	for _, l := range lists {
		for _, i := range l {
			s.Total++
			s.BySeverity[i.Severity]++
			s.ByCategory[i.Category]++
		}
	}

	return s
}

// Categories returns the categories present in the summary, sorted.
func (s Summary) Categories() []Category {
	return slices.Sorted(maps.Keys(s.ByCategory))
}

// GroupBy partitions issues by a key, preserving the order of issues within each group.
func GroupBy[K comparable](issues []Issue, key func(Issue) K) map[K][]Issue {
	groups := make(map[K][]Issue)
	for _, i := range issues {
		k := key(i)
		groups[k] = append(groups[k], i)
	}

	return groups
}
