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

package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"fillmore-labs.com/structlint/internal/lang"
)

// OptExclude is the option holding file exclusion globs.
const OptExclude = "exclude"

// Languages is the resolved configuration of a run: one [RuleConfig] per language and
// the exclusion globs applied before files reach the engine.
type Languages struct {
	base      RuleConfig
	overrides map[lang.Language]RuleConfig
	exclude   []string
}

// DefaultLanguages returns the default configuration for all languages and no exclusions.
func DefaultLanguages() Languages {
	return Languages{base: Default()}
}

// ResolveLanguages validates a base option mapping and per-language overrides.
// The base mapping may hold an [OptExclude] entry with a list of doublestar glob patterns.
func ResolveLanguages(base map[string]any, overrides map[lang.Language]map[string]any) (Languages, error) {
	options := make(map[string]any, len(base))
	var exclude []string

	for k, v := range base {
		if k != OptExclude {
			options[k] = v

			continue
		}

		patterns, err := toPatterns(v)
		if err != nil {
			return Languages{}, err
		}
		exclude = patterns
	}

	cfg, err := Resolve(options)
	if err != nil {
		return Languages{}, err
	}

	l := Languages{base: cfg, exclude: exclude}

	for language, o := range overrides {
		c, err := cfg.With(o)
		if err != nil {
			return Languages{}, fmt.Errorf("%s: %w", language, err)
		}

		if l.overrides == nil {
			l.overrides = make(map[lang.Language]RuleConfig)
		}
		l.overrides[language] = c
	}

	return l, nil
}

func toPatterns(value any) ([]string, error) {
	var patterns []string

	switch v := value.(type) {
	case []string:
		patterns = v

	case []any:
		for _, p := range v {
			s, ok := p.(string)
			if !ok {
				return nil, fmt.Errorf("%w %s: expected string pattern, got %T", ErrInvalidOption, OptExclude, p)
			}
			patterns = append(patterns, s)
		}

	case string:
		for p := range strings.SplitSeq(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				patterns = append(patterns, p)
			}
		}

	default:
		return nil, fmt.Errorf("%w %s: expected list of patterns, got %T", ErrInvalidOption, OptExclude, value)
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w %s: malformed pattern %q", ErrInvalidOption, OptExclude, p)
		}
	}

	return patterns, nil
}

// For returns the configuration of a language.
func (l Languages) For(language lang.Language) RuleConfig {
	if c, ok := l.overrides[language]; ok {
		return c
	}

	return l.base
}

// Excluded reports whether a file path matches one of the exclusion globs.
// Patterns without a slash also match the base name, so "*.pb.c" excludes generated files in any directory.
func (l Languages) Excluded(filePath string) bool {
	filePath = path.Clean(strings.ReplaceAll(filePath, "\\", "/"))
	base := path.Base(filePath)

	for _, p := range l.exclude {
		if doublestar.MatchUnvalidated(p, filePath) {
			return true
		}

		if !strings.Contains(p, "/") && doublestar.MatchUnvalidated(p, base) {
			return true
		}
	}

	return false
}

// Exclusions returns the exclusion globs.
func (l Languages) Exclusions() []string {
	return l.exclude
}
