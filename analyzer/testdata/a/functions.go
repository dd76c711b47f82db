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

package a

func shallow(x int) int {
	if x > 0 {
		return 1
	}

	return 0
}

func deep(xs []int) int { // want `Function "deep" has nesting depth 3 \(max 2\)`
	n := 0
	for _, x := range xs {
		if x > 0 {
			if x > 10 {
				n++
			}
		}
	}

	return n
}

func elseChain(x int) string {
	if x == 1 {
		return "one"
	} else if x == 2 {
		return "two"
	} else if x == 3 {
		return "three"
	}

	return "many"
}

func branches(a, b, c bool) int { // want `Function "branches" has cyclomatic complexity 5 \(max 4\)`
	if a && b {
		return 1
	}

	if b || c {
		return 2
	}

	return 0
}

func classify(x int) string {
	switch x {
	case 1:
		return "one"
	case 2:
		return "two"
	default:
		return "other"
	}
}

func long() int { // want `Function "long" is 14 lines long \(max 12\)`
	a := 1
	a++
	a++
	a++
	a++
	a++
	a++
	a++
	a++
	a++
	a++
	return a
}
