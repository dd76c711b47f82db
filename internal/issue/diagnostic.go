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

package issue

import (
	"errors"

	"fillmore-labs.com/structlint/internal/syntax"
)

// Rule ids of engine diagnostics.
const (
	ParseInconsistency  = "PARSE_INCONSISTENCY"
	ParseTimeout        = "PARSE_TIMEOUT"
	ParseError          = "PARSE_ERROR"
	ParseFailed         = "PARSE_FAILED"
	RuleInternalFault   = "RULE_INTERNAL_FAULT"
	UnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	AnalysisCanceled    = "ANALYSIS_CANCELED"
)

// Diagnostic creates a file-level issue reported by the engine instead of a rule.
func Diagnostic(filePath, ruleID string, severity Severity, message string) Issue {
	return Issue{
		RuleID:   ruleID,
		Severity: severity,
		Category: Internal,
		Message:  message,
		FilePath: filePath,
	}
}

// Inconsistent converts a span inconsistency into a PARSE_INCONSISTENCY issue.
// It reports false when err does not describe an inconsistency.
func Inconsistent(filePath string, err error) (Issue, bool) {
	var inc syntax.Inconsistency
	if !errors.As(err, &inc) {
		return Issue{}, false
	}

	return Issue{
		RuleID:   ParseInconsistency,
		Severity: Warning,
		Category: Internal,
		Message:  "Parser returned an invalid span, subtree skipped: " + inc.Error(),
		FilePath: filePath,
		Line:     inc.Span.Start.Line,
		Column:   inc.Span.Start.Column + 1,
	}, true
}
