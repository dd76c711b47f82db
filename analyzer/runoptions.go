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
	"time"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/structlint/analyzer/level"
	"fillmore-labs.com/structlint/internal/config"
)

// runOptions represent configuration runOptions for the structlint analyzer.
type runOptions struct {
	// thresholds holds explicitly set rule thresholds, keyed by option name.
	thresholds map[string]int

	// generated enables diagnostics in generated files.
	generated bool

	// minSeverity is the lowest severity reported.
	minSeverity level.Severity

	// timeout is the per-file parse budget.
	timeout time.Duration
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		thresholds:  make(map[string]int),
		minSeverity: level.Info,
	}
}

// ruleConfig validates the thresholds against the rule configuration.
func (r *runOptions) ruleConfig() (config.Languages, error) {
	options := make(map[string]any, len(r.thresholds))
	for k, v := range r.thresholds {
		options[k] = v
	}

	return config.ResolveLanguages(options, nil)
}

// analyzer returns a structlint *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		Run:  r.run,
	}

	return a
}
