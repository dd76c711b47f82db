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

// Package issue defines located findings and their aggregation into ordered,
// deduplicated per-file results.
package issue

import (
	"fmt"

	"fillmore-labs.com/structlint/internal/syntax"
)

// Category classifies the concern of an issue.
type Category string

const (
	Complexity         Category = "complexity"
	Style              Category = "style"
	Safety             Category = "safety"
	Documentation      Category = "documentation"
	PotentialBug       Category = "potential_bug"
	ResourceManagement Category = "resource_management"
	ErrorHandling      Category = "error_handling"
	Internal           Category = "internal"
)

// Issue is an immutable, located finding. Lines and columns are 1-based.
type Issue struct {
	RuleID     string   `json:"rule_id"`
	Severity   Severity `json:"severity"`
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	FilePath   string   `json:"file_path"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	EndLine    int      `json:"end_line,omitempty"`
	Snippet    string   `json:"snippet,omitempty"`
}

// Key identifies duplicate issues.
type Key struct {
	RuleID, FilePath string
	Line             int
}

// Key returns the deduplication key of the issue.
func (i Issue) Key() Key {
	return Key{RuleID: i.RuleID, FilePath: i.FilePath, Line: i.Line}
}

// String returns a compiler-style representation of the issue.
func (i Issue) String() string {
	return fmt.Sprintf("%s:%d:%d: %s [%s] %s", i.FilePath, i.Line, i.Column, i.Severity, i.RuleID, i.Message)
}

// At creates an issue located at a node. The snippet is the first line of the node's text.
func At(n syntax.Node, ruleID string, severity Severity, category Category, message, suggestion string) Issue {
	path := ""
	if tree := n.Tree(); tree != nil {
		path = tree.Path()
	}

	return Issue{
		RuleID:     ruleID,
		Severity:   severity,
		Category:   category,
		Message:    message,
		Suggestion: suggestion,
		FilePath:   path,
		Line:       n.StartLine(),
		Column:     n.StartColumn() + 1,
		EndLine:    n.EndLine(),
		Snippet:    n.FirstLine(),
	}
}

// InternalError creates an issue for a fault in the analysis logic rather than in the analyzed code.
func InternalError(filePath, ruleID string, line int, format string, args ...any) Issue {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	return Issue{
		RuleID:   ruleID,
		Severity: Error,
		Category: Internal,
		Message:  string(msg),
		FilePath: filePath,
		Line:     line,
	}
}
