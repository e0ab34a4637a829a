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

// Command uastlint runs language-independent checks over source files.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/uastlint/internal/config"
)

func main() {
	if err := cmdRoot().Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintf(os.Stderr, "uastlint: %v\n", err)
		}
		os.Exit(1)
	}
}

func cmdRoot() *cobra.Command {
	addFlags := func(cmd *cobra.Command) {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().String("config", "", "load configuration from file (default: ./"+config.FileName+" if present)")
	}
	var cmd = &cobra.Command{
		Use:   "uastlint",
		Short: "Check source files for common mistakes",
		Long: `uastlint parses source files into a language-independent syntax tree
and runs a set of rules over it.

Findings on a line can be suppressed with a "nolint" comment on that line,
either for all rules or for a list of them, as in "nolint:no-self-assignment".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			quiet, _ := cmd.Flags().GetBool("quiet")
			level := slog.LevelInfo
			switch {
			case debug:
				level = slog.LevelDebug
			case quiet:
				level = slog.LevelWarn
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	addFlags(cmd)

	cmd.AddCommand(cmdCheck())
	cmd.AddCommand(cmdDump())
	cmd.AddCommand(cmdJoin())
	cmd.AddCommand(cmdAt())
	cmd.AddCommand(cmdRules())
	return cmd
}
