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

package rule_test

import (
	"context"
	"testing"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	. "fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

type fake struct{ Base }

func (fake) Inspect(context.Context, *syntax.Tree, config.RuleConfig) []issue.Issue { return nil }

func TestBase(t *testing.T) {
	t.Parallel()

	always := fake{NewBase("ALWAYS", issue.Style, General, 0)}
	toggled := fake{NewBase("TOGGLED", issue.Style, Python, config.EnforceTypeHints, lang.KindFunction)}

	if !always.Enabled(config.Default()) {
		t.Error("Expected untoggled rule to be enabled")
	}

	if toggled.Enabled(config.Default()) {
		t.Error("Expected toggled rule to follow its default")
	}

	if got := toggled.Requires(); len(got) != 1 || got[0] != lang.KindFunction {
		t.Errorf("Got requirements %v, expected [Function]", got)
	}

	if got, want := toggled.Variant().String(), "python"; got != want {
		t.Errorf("Got variant %q, expected %q", got, want)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	a := fake{NewBase("A", issue.Style, General, 0)}
	b := fake{NewBase("B", issue.Style, General, 0)}

	set := NewSet(lang.Go, a)
	extended := set.With(b)

	if set.Len() != 1 || extended.Len() != 2 {
		t.Errorf("Got %d and %d rules, expected 1 and 2", set.Len(), extended.Len())
	}

	if got := extended.Without("A").Rules(); len(got) != 1 || got[0].ID() != "B" {
		t.Errorf("Got %v, expected only rule B", got)
	}

	sets := NewSets(set)
	if got, ok := sets.For(lang.Go); !ok || got.Language() != lang.Go {
		t.Errorf("Got %v, %t, expected the Go set", got, ok)
	}
}
