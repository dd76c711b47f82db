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

package lang

import (
	"fmt"
	"path"
	"strings"
)

//go:generate go tool stringer -type=Language -linecomment

// Language identifies the source language of a file.
type Language uint8

const (
	Unknown    Language = iota // unknown
	C                          // c
	CPP                        // cpp
	Python                     // python
	Go                         // go
	Java                       // java
	JavaScript                 // javascript
	TypeScript                 // typescript
)

var _extensions = map[string]Language{
	".c":    C,
	".h":    C,
	".cpp":  CPP,
	".cc":   CPP,
	".cxx":  CPP,
	".hpp":  CPP,
	".hh":   CPP,
	".hxx":  CPP,
	".py":   Python,
	".pyi":  Python,
	".go":   Go,
	".java": Java,
	".js":   JavaScript,
	".mjs":  JavaScript,
	".ts":   TypeScript,
}

// Detect determines the language of a file from its extension.
func Detect(filePath string) Language {
	ext := strings.ToLower(path.Ext(filePath))

	return _extensions[ext]
}

// Parse returns the [Language] for a language tag like "cpp" or "python".
func Parse(tag string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "c":
		return C, true

	case "cpp", "c++", "cxx":
		return CPP, true

	case "python", "py":
		return Python, true

	case "go", "golang":
		return Go, true

	case "java":
		return Java, true

	case "javascript", "js":
		return JavaScript, true

	case "typescript", "ts":
		return TypeScript, true

	default:
		return Unknown, false
	}
}

// Resolve picks the language for a file: an explicit known tag wins over detection.
func Resolve(tag, filePath string) Language {
	if l, ok := Parse(tag); ok {
		return l
	}

	return Detect(filePath)
}

// CFamily reports whether the language belongs to the C family.
func (l Language) CFamily() bool {
	return l == C || l == CPP
}

// MarshalText implements [encoding.TextMarshaler].
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Language) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown language %q", string(text))
	}

	*l = v

	return nil
}
