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
	"flag"

	"fillmore-labs.com/structlint/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.BoolVar(&r.generated, "generated", r.generated, "check generated files")
	flags.Var(NewThresholdValue(r.thresholds, config.OptMaxFunctionLength, config.DefaultMaxFunctionLength),
		"max-function-length", "maximum number of lines of a function")
	flags.Var(NewThresholdValue(r.thresholds, config.OptMaxNestingDepth, config.DefaultMaxNestingDepth),
		"max-nesting-depth", "maximum nesting depth of control structures")
	flags.Var(NewThresholdValue(r.thresholds, config.OptMaxComplexity, config.DefaultMaxComplexity),
		"max-complexity", "maximum cyclomatic complexity of a function")
	flags.TextVar(&r.minSeverity, "min-severity", r.minSeverity, "lowest reported severity: info, warning or error")
	flags.DurationVar(&r.timeout, "timeout", r.timeout, "per-file parse budget (0 for the default)")
}
