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

import "fmt"

//go:generate go tool stringer -type=Severity -linecomment

// Severity orders issues by display priority; lower values are more severe.
type Severity uint8

const (
	// Error marks defects that are very likely bugs.
	Error Severity = iota + 1 // ERROR

	// Warning marks heuristic findings and threshold violations.
	Warning // WARNING

	// Info marks style and documentation hints as well as engine notes.
	Info // INFO
)

// Rank returns the sort rank of the severity. Unknown severities sort last.
func (s Severity) Rank() int {
	if s < Error || s > Info {
		return int(Info) + 1
	}

	return int(s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ERROR", "error":
		*s = Error

	case "WARNING", "warning":
		*s = Warning

	case "INFO", "info":
		*s = Info

	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}

	return nil
}
