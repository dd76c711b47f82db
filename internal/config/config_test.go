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

package config_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/lang"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(CheckResourceLeaks, EnforceTypeHints)

	if !b.Enabled(CheckResourceLeaks) || !b.Enabled(EnforceTypeHints) || b.Enabled(ChangedLinesOnly) {
		t.Errorf("Unexpected flags in %v", b)
	}

	c := b.With(CheckResourceLeaks, false).With(ChangedLinesOnly, true)
	if c.Enabled(CheckResourceLeaks) || !c.Enabled(ChangedLinesOnly) {
		t.Errorf("Unexpected flags in %v", c)
	}

	if !b.Enabled(CheckResourceLeaks) {
		t.Error("With must not modify the original")
	}

	if got, want := c.Count(), 2; got != want {
		t.Errorf("Got %d flags, expected %d", got, want)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()

	if c.MaxFunctionLength() != 50 || c.MaxNestingDepth() != 4 || c.MaxComplexity() != 15 {
		t.Errorf("Unexpected thresholds %v", c.LogValue())
	}

	for _, check := range []Check{CheckResourceLeaks, RequireErrorHandling, CheckMemorySafety, CheckExceptionHandling} {
		if !c.Enabled(check) {
			t.Errorf("Expected check %d to be enabled by default", check)
		}
	}

	if c.Enabled(EnforceTypeHints) || c.Enabled(ChangedLinesOnly) {
		t.Error("Expected opt-in checks to be disabled")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options map[string]any
		wantErr bool
		check   func(RuleConfig) bool
	}{
		{"Empty", nil, false, func(c RuleConfig) bool { return c == Default() }},
		{"Thresholds", map[string]any{OptMaxFunctionLength: 80, OptMaxComplexity: float64(10)}, false,
			func(c RuleConfig) bool { return c.MaxFunctionLength() == 80 && c.MaxComplexity() == 10 }},
		{"Toggles", map[string]any{OptEnforceTypeHints: true, OptCheckResourceLeaks: false}, false,
			func(c RuleConfig) bool { return c.Enabled(EnforceTypeHints) && !c.Enabled(CheckResourceLeaks) }},
		{"Negative", map[string]any{OptMaxNestingDepth: -1}, true, nil},
		{"Fraction", map[string]any{OptMaxComplexity: 2.5}, true, nil},
		{"WrongType", map[string]any{OptCheckMemorySafety: "yes"}, true, nil},
		{"Unknown", map[string]any{"max_line_length": 120}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Resolve(tt.options)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) {
					t.Errorf("Got error %v, expected %v", err, ErrInvalidOption)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if !tt.check(c) {
				t.Errorf("Unexpected configuration %v", c.LogValue())
			}
		})
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	l, err := ResolveLanguages(
		map[string]any{OptMaxFunctionLength: 60, OptExclude: []any{"vendor/**", "*_pb2.py"}},
		map[lang.Language]map[string]any{lang.Python: {OptMaxFunctionLength: 30}},
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, want := l.For(lang.C).MaxFunctionLength(), 60; got != want {
		t.Errorf("Got C length %d, expected %d", got, want)
	}

	if got, want := l.For(lang.Python).MaxFunctionLength(), 30; got != want {
		t.Errorf("Got Python length %d, expected %d", got, want)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"vendor/lib/a.c", true},
		{"src/api/service_pb2.py", true},
		{"src/main.c", false},
		{"src/vendor/a.c", false},
	}

	for _, tt := range tests {
		if got := l.Excluded(tt.path); got != tt.want {
			t.Errorf("Got excluded=%t for %s, expected %t", got, tt.path, tt.want)
		}
	}
}

func TestLanguagesInvalid(t *testing.T) {
	t.Parallel()

	if _, err := ResolveLanguages(map[string]any{OptExclude: []any{"[a-"}}, nil); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Got error %v for malformed pattern, expected %v", err, ErrInvalidOption)
	}

	_, err := ResolveLanguages(nil, map[lang.Language]map[string]any{lang.C: {OptMaxComplexity: -3}})
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Got error %v for override, expected %v", err, ErrInvalidOption)
	}
}
