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

// Package rules assembles the built-in rule sets.
package rules

import (
	"slices"

	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/rules/cfamily"
	"fillmore-labs.com/structlint/internal/rules/general"
	"fillmore-labs.com/structlint/internal/rules/python"
)

// Default returns the built-in rule sets for all languages with a grammar.
func Default() rule.Sets {
	return rule.NewSets(
		rule.NewSet(lang.C, slices.Concat(general.Rules(), cfamily.Rules())...),
		rule.NewSet(lang.CPP, slices.Concat(general.Rules(), cfamily.Rules())...),
		rule.NewSet(lang.Python, slices.Concat(general.Rules(), python.Rules())...),
		rule.NewSet(lang.Go, general.Rules()...),
	)
}
