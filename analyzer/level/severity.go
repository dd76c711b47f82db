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

// Package level defines the report levels of the structlint analyzer.
package level

import (
	"fmt"
	"strings"
)

// Severity specifies the minimum severity of reported issues.
type Severity uint8

const (
	// Info reports all issues, including style and documentation hints.
	Info Severity = iota

	// Warning reports heuristic findings, threshold violations and errors.
	Warning

	// Error reports only issues that are very likely bugs.
	Error
)

// Rank returns the highest issue rank reported at this level, ordered like issue severities:
// 1 for errors, 2 for warnings and 3 for infos.
func (o Severity) Rank() int {
	switch o {
	case Error:
		return 1

	case Warning:
		return 2

	default:
		return 3
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (o Severity) MarshalText() ([]byte, error) {
	switch o {
	case Info:
		return []byte("info"), nil

	case Warning:
		return []byte("warning"), nil

	case Error:
		return []byte("error"), nil

	default:
		return nil, fmt.Errorf("unknown severity level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "info", "all":
		*o = Info

	case "warning", "warn":
		*o = Warning

	case "error":
		*o = Error

	default:
		return fmt.Errorf("unknown severity level %q", string(text))
	}

	return nil
}
