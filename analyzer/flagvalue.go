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
	"fmt"
	"strconv"
)

// ThresholdValue is a [flag.Getter] storing a non-negative threshold under an option name.
type ThresholdValue struct {
	values map[string]int
	name   string
	def    int
}

var _ flag.Getter = ThresholdValue{}

// NewThresholdValue creates a flag value writing to values[name]. Unset values report def.
func NewThresholdValue(values map[string]int, name string, def int) ThresholdValue {
	return ThresholdValue{values: values, name: name, def: def}
}

// Set implements [flag.Value].
func (f ThresholdValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	if n < 0 {
		return fmt.Errorf("%s must not be negative, got %d", f.name, n)
	}

	f.values[f.name] = n

	return nil
}

// String implements [flag.Value].
func (f ThresholdValue) String() string {
	return strconv.Itoa(f.value())
}

// Get implements [flag.Getter].
func (f ThresholdValue) Get() any {
	return f.value()
}

func (f ThresholdValue) value() int {
	if f.values == nil {
		return f.def
	}

	if n, ok := f.values[f.name]; ok {
		return n
	}

	return f.def
}
