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

package gclplugin

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	structlint "fillmore-labs.com/structlint/analyzer"
)

func init() { register.Plugin("structlint", New) }

// New creates a [Plugin] from the raw linter settings of a golangci configuration.
// Invalid thresholds or timeouts fail here, before any package is loaded.
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("structlint settings: %w", err)
	}

	opts := append(settings.Options(), structlint.WithGenerated(true))

	return Plugin{opts: opts}, nil
}

// Plugin is the structlint linter as a [register.LinterPlugin].
type Plugin struct {
	opts structlint.Options
}

// GetLoadMode returns the golangci load mode. The rules work on source text only.
func (Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers returns the single structlint analyzer configured by the settings.
// golangci filters generated files itself, so the analyzer reports on all of them.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{structlint.New(p.opts...)}, nil
}
