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

package analyzer

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/structlint/internal/engine"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
)

// run executes the structlint rules over the Go files of a package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	languages, err := r.ruleConfig()
	if err != nil {
		return nil, fmt.Errorf("structlint: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "StructLint")
	defer task.End()

	e := engine.New(
		engine.WithLanguages(languages),
		engine.WithTimeout(r.timeout),
		engine.WithWorkers(1),
		engine.WithLogger(slog.New(slog.DiscardHandler)),
	)

	for _, f := range p.Files {
		if !r.generated && ast.IsGenerated(f) {
			continue
		}

		tf := p.Fset.File(f.Pos())
		if tf == nil {
			continue
		}

		source, err := p.ReadFile(tf.Name())
		if err != nil {
			return nil, fmt.Errorf("structlint: can't read %s: %w", tf.Name(), err)
		}

		result := e.AnalyzeFile(ctx, engine.FileChange{
			Path:     tf.Name(),
			Language: lang.Go.String(),
			Source:   source,
		})

		for _, i := range result.Issues {
			if i.Severity.Rank() > r.minSeverity.Rank() {
				continue
			}

			p.Report(analysis.Diagnostic{
				Pos:      position(tf, f, i),
				Category: i.RuleID,
				Message:  i.Message,
				URL:      url,
			})
		}
	}

	return nil, nil
}

// position converts a 1-based line and column into a [token.Pos].
// File-level diagnostics are reported at the package clause.
func position(tf *token.File, f *ast.File, i issue.Issue) token.Pos {
	if i.Line < 1 || i.Line > tf.LineCount() {
		return f.Package
	}

	pos := tf.LineStart(i.Line)
	if i.Column > 1 && tf.Offset(pos)+i.Column-1 <= tf.Size() {
		pos += token.Pos(i.Column - 1)
	}

	return pos
}
