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

package graph

import (
	"fmt"

	"fillmore-labs.com/structlint/internal/flow/block"
	"fillmore-labs.com/structlint/internal/lang"
)

// LabelTarget represents the control flow target of a labeled statement.
// In C and C++ a label can only be the target of goto statements.
type LabelTarget struct {
	statement *block.Block // The labeled statement itself
	defined   bool
}

// NewLabelTarget creates a new label target with the given body block.
func NewLabelTarget(body *block.Block) *LabelTarget {
	return &LabelTarget{statement: body}
}

// Body returns the block of the labeled statement itself.
func (l *LabelTarget) Body() *block.Block {
	return l.statement
}

// Define marks the label as defined by a labeled statement, returning false if it already was.
func (l *LabelTarget) Define() bool {
	if l.defined {
		return false
	}
	l.defined = true

	return true
}

// BranchTarget returns the block that a branch statement of the given kind jumps to.
func (l *LabelTarget) BranchTarget(kind lang.Kind) *block.Block {
	switch kind {
	case lang.KindGoto:
		return l.statement

	default:
		panic(fmt.Sprintf("unexpected labeled branch kind: %s", kind))
	}
}
