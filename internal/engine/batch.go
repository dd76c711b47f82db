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

package engine

import (
	"context"
	"log/slog"
	"runtime/trace"
	"time"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
)

// Review is the combined result of a batch.
type Review struct {
	Results         []AnalysisResult `json:"results"`
	Excluded        []string         `json:"excluded,omitempty"`
	Summary         issue.Summary    `json:"summary"`
	TotalFiles      int              `json:"total_files"`
	FilesAnalyzed   int              `json:"files_analyzed"`
	FilesWithIssues int              `json:"files_with_issues"`
	Elapsed         time.Duration    `json:"elapsed"`
}

// AnalyzeBatch analyzes files concurrently and returns one result per non-excluded file,
// in input order.
//
// It returns [ErrNoInput] when there are no files or none has content. After cancellation
// the review is still returned together with the context error; files not analyzed carry
// an ANALYSIS_CANCELED diagnostic.
func (e *Engine) AnalyzeBatch(ctx context.Context, changes []FileChange) (Review, error) {
	ctx, task := trace.NewTask(ctx, "AnalyzeBatch")
	defer task.End()

	if !hasInput(changes) {
		return Review{}, ErrNoInput
	}

	start := time.Now()

	review := Review{TotalFiles: len(changes)}

	files := make([]FileChange, 0, len(changes))
	for _, c := range changes {
		if e.Excluded(c.Path) {
			review.Excluded = append(review.Excluded, c.Path)

			continue
		}

		files = append(files, c)
	}

	results := make([]AnalysisResult, len(files))

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i, c := range files {
		if ctx.Err() != nil {
			results[i] = canceled(c, context.Cause(ctx))

			continue
		}

		g.Go(func() error {
			results[i] = e.AnalyzeFile(ctx, c)

			return nil
		})
	}

	_ = g.Wait() // per-file failures are issues, never errors

	review.Results = results
	review.summarize()
	review.Elapsed = time.Since(start)

	e.log(ctx, slog.LevelInfo, "Analyzed batch",
		slog.Int("files", review.TotalFiles),
		slog.Int("analyzed", review.FilesAnalyzed),
		slog.Int("excluded", len(review.Excluded)),
		slog.Int("issues", review.Summary.Total),
		slog.Duration("elapsed", review.Elapsed),
	)

	return review, ctx.Err()
}

func (r *Review) summarize() {
	lists := make([][]issue.Issue, 0, len(r.Results))
	for _, res := range r.Results {
		lists = append(lists, res.Issues)

		if !res.Skipped {
			r.FilesAnalyzed++
		}

		if len(res.Issues) > 0 {
			r.FilesWithIssues++
		}
	}

	r.Summary = issue.Summarize(lists...)
}

func hasInput(changes []FileChange) bool {
	for _, c := range changes {
		if len(c.Source) > 0 {
			return true
		}
	}

	return false
}

func canceled(c FileChange, cause error) AnalysisResult {
	return AnalysisResult{
		Path:     c.Path,
		Language: lang.Resolve(c.Language, c.Path),
		Issues: []issue.Issue{
			issue.Diagnostic(c.Path, issue.AnalysisCanceled, issue.Info, "Analysis canceled before completion: "+cause.Error()),
		},
		Skipped: true,
	}
}
