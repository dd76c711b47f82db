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

package cfamily

import (
	"context"
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/flow/block"
	"fillmore-labs.com/structlint/internal/flow/graph"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
	"fillmore-labs.com/structlint/internal/match"
	"fillmore-labs.com/structlint/internal/rule"
	"fillmore-labs.com/structlint/internal/syntax"
)

// ResourceLeakRule reports resources bound to a local variable that are not released
// on every path leaving the function.
type ResourceLeakRule struct{ rule.Base }

var _ rule.Rule = ResourceLeakRule{}

// ResourceLeak creates the RESOURCE_LEAK rule.
func ResourceLeak() ResourceLeakRule {
	return ResourceLeakRule{rule.NewBase(ResourceLeakID, issue.ResourceManagement, rule.CFamily,
		config.CheckResourceLeaks, lang.KindCall, lang.KindNew)}
}

var _releaseHints = map[match.Family]string{
	match.FamilyHeap:       "free(%s)",
	match.FamilyStream:     "fclose(%s)",
	match.FamilyPipe:       "pclose(%s)",
	match.FamilyDirectory:  "closedir(%s)",
	match.FamilyDescriptor: "close(%s)",
	match.FamilyObject:     "delete %s",
}

// Inspect implements [rule.Rule].
func (r ResourceLeakRule) Inspect(ctx context.Context, tree *syntax.Tree, cfg config.RuleConfig) []issue.Issue {
	defer trace.StartRegion(ctx, r.ID()).End()

	transfer := cfg.Enabled(config.LeakOwnershipTransfer)

	var issues []issue.Issue
	for fn := range match.Functions(tree) {
		var g *graph.Graph // built on first acquisition

		for acq := range match.Acquisitions(fn) {
			if g == nil {
				g = graph.Build(ctx, fn)
			}

			t := tracker{name: acq.Name, family: acq.Family, transfer: transfer}
			if !t.leaks(g, acq.Node) {
				continue
			}

			hint := _releaseHints[acq.Family]
			if acq.Array {
				hint = "delete[] %s"
			}

			release := fmt.Sprintf(hint, acq.Name)
			msg := fmt.Sprintf("Resource %q is not released on every path, missing %s", acq.Name, release)
			issues = append(issues, r.Issue(acq.Node, issue.Warning, msg,
				fmt.Sprintf("Call %s before every return, or transfer ownership explicitly", release)))
		}
	}

	return issues
}

// tracker follows one acquired resource through the control-flow graph.
type tracker struct {
	name     string
	family   match.Family
	transfer bool
}

// leaks reports whether a path from the acquisition reaches a function exit without
// releasing the resource.
func (t tracker) leaks(g *graph.Graph, acquisition syntax.Node) bool {
	start, index, ok := g.Locate(acquisition)
	if !ok {
		return false // unreachable code
	}

	if t.ends(start.Nodes[index+1:]) {
		return false
	}

	if leakingExit(start.Exit) {
		return true
	}

	leak := false
	g.Walk(start, func(b *block.Block) bool {
		switch {
		case leak:
			return false

		case t.null(b), t.ends(b.Nodes):
			return false

		case leakingExit(b.Exit):
			leak = true

			return false

		default:
			return true
		}
	})

	return leak
}

// leakingExit reports whether leaving a function this way leaks held resources.
// Non-returning calls end the process or jump away, so they are not counted.
func leakingExit(exit block.Exit) bool {
	switch exit {
	case block.ExitReturn, block.ExitThrow, block.ExitFallOff:
		return true

	default:
		return false
	}
}

// null reports whether the block is only entered when the resource is null,
// so there is nothing to release.
func (t tracker) null(b *block.Block) bool {
	if !b.Guard.Valid() {
		return false
	}

	nullWhenTrue, ok := match.NullTest(b.Guard, t.name)

	return ok && nullWhenTrue != b.Negated
}

// ends reports whether any of the nodes releases, transfers or overwrites the resource.
func (t tracker) ends(nodes []syntax.Node) bool {
	for _, stmt := range nodes {
		found := false

		stmt.Inspect(func(n syntax.Node) bool {
			if found || n.ID() != stmt.ID() && n.Kind().FunctionBoundary() {
				return false
			}

			found = match.Releases(n, t.name, t.family) || t.overwrites(n) || t.transfer && t.transfers(n)

			return !found
		})

		if found {
			return true
		}
	}

	return false
}

// overwrites reports whether n assigns a new value to the variable.
func (t tracker) overwrites(n syntax.Node) bool {
	target, value := match.Binding(n)

	return value.Valid() && target.Is(lang.KindIdentifier) && target.Text() == t.name
}

// transfers reports whether n hands the resource to another owner by returning it
// or storing it elsewhere.
func (t tracker) transfers(n syntax.Node) bool {
	var value syntax.Node

	switch n.Kind() {
	case lang.KindReturn:
		value = match.First(n.NamedChildren())

	case lang.KindInitDeclarator, lang.KindAssignment:
		_, value = match.Binding(n)

	default:
		return false
	}

	value = match.Unwrap(value)

	return value.Is(lang.KindIdentifier) && value.Text() == t.name
}
