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

// branchTargetScopes maintains the current branch targets representing nested
// control structures (loops, switches, try blocks).
type branchTargetScopes struct {
	currentBreak *block.Block

	currentContinue *block.Block

	currentThrow *block.Block // catch dispatch of the innermost try, nil outside of try blocks
}

func (s *branchTargetScopes) branchTarget(kind lang.Kind) *block.Block {
	switch kind {
	case lang.KindBreak:
		return s.currentBreak

	case lang.KindContinue:
		return s.currentContinue

	case lang.KindThrow:
		return s.currentThrow

	default:
		panic(fmt.Sprintf("unexpected branch kind: %s", kind))
	}
}

// pushBreak sets the current "break" branch target scope, returning the old.
func (s *branchTargetScopes) pushBreak(b *block.Block) (old *block.Block) {
	old, s.currentBreak = s.currentBreak, b
	return old
}

// popBreak restores the previous "break" branch target scope.
func (s *branchTargetScopes) popBreak(old *block.Block) {
	s.currentBreak = old
}

// pushContinue sets the current "continue" branch target scope, returning the old.
func (s *branchTargetScopes) pushContinue(b *block.Block) (old *block.Block) {
	old, s.currentContinue = s.currentContinue, b
	return old
}

// popContinue restores the previous "continue" branch target scope.
func (s *branchTargetScopes) popContinue(old *block.Block) {
	s.currentContinue = old
}

// pushThrow sets the current exception handler scope, returning the old.
func (s *branchTargetScopes) pushThrow(b *block.Block) (old *block.Block) {
	old, s.currentThrow = s.currentThrow, b
	return old
}

// popThrow restores the previous exception handler scope.
func (s *branchTargetScopes) popThrow(old *block.Block) {
	s.currentThrow = old
}
