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

// Package analyzer implements the structlint static analysis pass for Go.
//
// # Overview
//
// structlint reports structural problems in functions: excessive length, high cyclomatic
// complexity and deep nesting of control structures. The same rules run over C, C++ and
// Python files through the batch command; this package exposes them to the Go toolchain.
//
// # Example
//
// With -max-nesting-depth=2:
//
//	func process(items []item) {  // Function "process" has nesting depth 3 (max 2)
//	    for _, it := range items {
//	        if it.valid {
//	            for _, c := range it.children {
//	                handle(c)
//	            }
//	        }
//	    }
//	}
//
// # Suppression
//
// A comment "//nolint:structlint" or "//nolint:deep_nesting" on the reported line suppresses
// the diagnostic.
package analyzer
