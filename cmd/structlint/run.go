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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fillmore-labs.com/structlint/internal/config"
	"fillmore-labs.com/structlint/internal/engine"
	"fillmore-labs.com/structlint/internal/issue"
	"fillmore-labs.com/structlint/internal/lang"
)

const (
	exitOK     = 0
	exitIssues = 1
	exitUsage  = 2
)

// settings collects repeated -set name=value flags.
type settings map[string]any

// String implements [flag.Value].
func (s settings) String() string {
	pairs := make([]string, 0, len(s))
	for k, v := range s {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}

	return strings.Join(pairs, ",")
}

// Set implements [flag.Value]. Values are parsed as booleans, integers or strings, in this order.
func (s settings) Set(value string) error {
	name, raw, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", value)
	}

	if b, err := strconv.ParseBool(raw); err == nil {
		s[name] = b

		return nil
	}

	if n, err := strconv.Atoi(raw); err == nil {
		s[name] = n

		return nil
	}

	s[name] = raw

	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("structlint", flag.ContinueOnError)
	flags.SetOutput(stderr)

	options := settings{}
	flags.Var(options, "set", "rule option `name=value` (repeatable)")

	var (
		language = flags.String("language", "", "language tag overriding detection (c, cpp, python, go)")
		exclude  = flags.String("exclude", "", "comma-separated doublestar globs of files to skip")
		timeout  = flags.Duration("timeout", engine.DefaultTimeout, "per-file parse budget")
		workers  = flags.Int("workers", 0, "files analyzed concurrently (0 for the number of CPUs)")
		verbose  = flags.Bool("v", false, "log rule execution")
		output   = flags.String("o", "", "write the review to `file` instead of stdout")
	)

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *exclude != "" {
		options[config.OptExclude] = *exclude
	}

	languages, err := config.ResolveLanguages(options, nil)
	if err != nil {
		logger.Error("Invalid configuration", slog.Any("error", err))

		return exitUsage
	}

	changes, err := collect(flags.Args(), *language)
	if err != nil {
		logger.Error("Can't read input", slog.Any("error", err))

		return exitUsage
	}

	e := engine.New(
		engine.WithLanguages(languages),
		engine.WithTimeout(*timeout),
		engine.WithWorkers(*workers),
		engine.WithLogger(logger),
	)

	review, err := e.AnalyzeBatch(ctx, changes)
	switch {
	case errors.Is(err, engine.ErrNoInput):
		logger.Error("No input files", slog.Any("paths", flags.Args()))

		return exitUsage

	case err != nil:
		logger.Warn("Analysis incomplete", slog.Any("error", err))
	}

	if err := write(*output, stdout, review); err != nil {
		logger.Error("Can't write review", slog.Any("error", err))

		return exitUsage
	}

	if review.Summary.BySeverity[issue.Error] > 0 {
		return exitIssues
	}

	return exitOK
}

// collect reads the files named by paths. Directories are walked, keeping files of known languages.
func collect(paths []string, tag string) ([]engine.FileChange, error) {
	var changes []engine.FileChange

	add := func(path string) error {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		changes = append(changes, engine.FileChange{Path: filepath.ToSlash(path), Language: tag, Source: source})

		return nil
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := add(root); err != nil {
				return nil, err
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil

			case lang.Resolve(tag, path) == lang.Unknown:
				return nil

			default:
				return add(path)
			}
		})
		if err != nil {
			return nil, err
		}
	}

	return changes, nil
}

func write(output string, stdout io.Writer, review engine.Review) (err error) {
	w := stdout

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, f.Close()) }()

		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(review)
}
