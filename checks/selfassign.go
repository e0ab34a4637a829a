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

package checks

import "github.com/bufbuild/uastlint/uast"

// NoSelfAssignment reports assignments of a variable to itself, such as
// x = x.
//
// Declarations are not reported: in many languages x := x declares a new
// variable shadowing the old one.
type NoSelfAssignment struct{}

// Name implements [Check].
func (*NoSelfAssignment) Name() string {
	return "no-self-assignment"
}

// Description implements [Check].
func (*NoSelfAssignment) Description() string {
	return "Variables should not be self-assigned"
}

// Check implements [Check].
func (c *NoSelfAssignment) Check(unit *uast.Node) []Issue {
	var issues []Issue
	unit.Descendants(uast.Assignment, func(n *uast.Node) {
		if n.Is(uast.CompoundAssignment) || n.Is(uast.Declaration) {
			return
		}
		targets, values, ok := pairs(n)
		if !ok {
			return
		}
		for i, target := range targets {
			if uast.Equivalent(target, values[i]) {
				issues = append(issues, Issue{
					Rule:    c.Name(),
					Message: "Remove or correct this useless self-assignment.",
					Primary: target,
				})
			}
		}
	})
	return issues
}
