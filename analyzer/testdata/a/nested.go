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

type counter struct{ n int }

func (c *counter) deepMethod(xs []int) { // want `Function "deepMethod" has nesting depth 3 \(max 2\)`
	for _, x := range xs {
		for i := 0; i < x; i++ {
			if i > 1 {
				c.n++
			}
		}
	}
}

func outer() func() int {
	return func() int {
		for i := 0; i < 3; i++ {
			if i > 1 {
				if i > 2 {
					return i
				}
			}
		}
		return 0
	}
}

func suppressed(xs []int) int { //nolint:structlint
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
