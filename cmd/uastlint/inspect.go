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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bufbuild/uastlint"
	"github.com/bufbuild/uastlint/uast"
	"github.com/bufbuild/uastlint/uast/index"
)

func cmdDump() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseFile(args[0])
			if err != nil {
				return err
			}
			return uast.Fprint(cmd.OutOrStdout(), tree)
		},
	}
}

func cmdJoin() *cobra.Command {
	return &cobra.Command{
		Use:   "join <file>",
		Short: "print a file as rebuilt from its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseFile(args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), tree.JoinTokens())
			return err
		},
	}
}

func cmdAt() *cobra.Command {
	return &cobra.Command{
		Use:   "at <file> <line> <column>",
		Short: "print the nodes enclosing a position, outermost first",
		Long: `Prints the nodes enclosing a position, outermost first.

Lines and columns start at 1; columns count Unicode code points.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line %q", args[1])
			}
			column, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q", args[2])
			}
			tree, err := parseFile(args[0])
			if err != nil {
				return err
			}

			path, ok := index.New(tree).At(line, column)
			if !ok {
				return fmt.Errorf("%s:%d:%d: no token at this position", args[0], line, column)
			}
			out := cmd.OutOrStdout()
			for depth, n := range path {
				indent := strings.Repeat("  ", depth)
				if tok, ok := n.Token(); ok {
					fmt.Fprintf(out, "%s%v %s %v\n", indent, n.Kinds(), n.NativeNode(), tok)
				} else {
					fmt.Fprintf(out, "%s%v %s\n", indent, n.Kinds(), n.NativeNode())
				}
			}
			return nil
		},
	}
}

func parseFile(path string) (*uast.Node, error) {
	frontend, ok := uastlint.DefaultFrontends()[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, uastlint.ErrNoFrontend)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return frontend.Parse(path, src)
}
