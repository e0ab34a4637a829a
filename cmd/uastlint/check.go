// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/uastlint"
	"github.com/bufbuild/uastlint/internal/config"
	"github.com/bufbuild/uastlint/report"
	"github.com/bufbuild/uastlint/reporter"
)

// errFindings is returned by the check command when there is at least one
// error-level diagnostic. It has already been rendered by then.
var errFindings = errors.New("found problems")

func cmdCheck() *cobra.Command {
	var colorize, compact bool
	addFlags := func(cmd *cobra.Command) {
		cmd.Flags().BoolVar(&colorize, "color", colorize, "colorize output")
		cmd.Flags().BoolVar(&compact, "compact", compact, "print one line per diagnostic")
	}
	var cmd = &cobra.Command{
		Use:   "check [path...]",
		Short: "check files and directories (default: the current directory)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			checks, err := cfg.Checks()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"."}
			}
			files, err := expand(cfg, args)
			if err != nil {
				return err
			}
			slog.Debug("expanded", "args", len(args), "files", len(files))

			// Files that fail to parse become diagnostics rather than aborting
			// the run.
			var mu sync.Mutex
			problems := new(report.Report)
			at := func(d *report.Diagnostic, err reporter.ErrorWithPos) {
				pos := err.GetPosition()
				d.With(report.InFile(pos.Filename))
				d.Start = report.Position{Line: pos.Line, Column: pos.Col}
				d.End = d.Start
			}
			analyzer := &uastlint.Analyzer{
				Checks:         checks,
				MaxParallelism: cfg.Parallelism,
				Logger:         slog.Default(),
				Reporter: reporter.NewReporter(
					func(err reporter.ErrorWithPos) error {
						mu.Lock()
						defer mu.Unlock()
						at(problems.Errorf("%v", err.Unwrap()), err)
						return nil
					},
					func(err reporter.ErrorWithPos) {
						mu.Lock()
						defer mu.Unlock()
						at(problems.Warnf("%v", err.Unwrap()), err)
					},
				),
			}

			rep, err := analyzer.Analyze(cmd.Context(), files...)
			if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
				return err
			}
			rep.Merge(problems)
			rep.Sort()

			renderer := report.Renderer{Colorize: colorize, Compact: compact}
			errs, _, err := renderer.Render(rep, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if errs > 0 {
				return errFindings
			}
			return nil
		},
	}
	addFlags(cmd)
	return cmd
}

// loadConfig reads the file named by --config, or the default file in the
// working directory if there is one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load(config.FileName)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no configuration file", "path", config.FileName)
		return config.Default(), nil
	}
	if err == nil {
		slog.Debug("loaded configuration", "path", config.FileName)
	}
	return cfg, err
}

// expand replaces each directory in args with the files under it that the
// configuration selects. Files named explicitly are always kept.
func expand(cfg *config.Config, args []string) ([]string, error) {
	found := make([][]string, len(args))
	var g errgroup.Group
	for i, arg := range args {
		g.Go(func() error {
			info, err := os.Stat(arg)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				found[i] = []string{arg}
				return nil
			}
			names, err := cfg.Expand(os.DirFS(arg))
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			for _, name := range names {
				found[i] = append(found[i], filepath.Join(arg, filepath.FromSlash(name)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(found...), nil
}
