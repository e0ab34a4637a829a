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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bufbuild/uastlint/checks"
)

func cmdRules() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "list the available rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, check := range checks.All() {
				configurable := ""
				if _, ok := check.(checks.Configurable); ok {
					configurable = "(configurable)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", check.Name(), check.Description(), configurable)
			}
			return w.Flush()
		},
	}
}
