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

import (
	"fmt"

	"github.com/bufbuild/uastlint/uast"
)

// identicalOperandOperators are the operators for which identical operands
// are always a mistake: the result is constant, or one side is redundant.
var identicalOperandOperators = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"&&": true, "||": true,
	"&": true, "|": true, "^": true, "&^": true,
	"-": true, "/": true, "%": true,
}

// BinaryOperatorIdenticalExpressions reports binary expressions such as
// a == a, whose operands are the same expression.
type BinaryOperatorIdenticalExpressions struct{}

// Name implements [Check].
func (*BinaryOperatorIdenticalExpressions) Name() string {
	return "binary-operator-identical-expressions"
}

// Description implements [Check].
func (*BinaryOperatorIdenticalExpressions) Description() string {
	return "Identical expressions should not be used on both sides of a binary operator"
}

// Check implements [Check].
func (c *BinaryOperatorIdenticalExpressions) Check(unit *uast.Node) []Issue {
	var issues []Issue
	unit.Descendants(uast.BinaryExpression, func(n *uast.Node) {
		left, op, right, ok := operands(n)
		if !ok || !identicalOperandOperators[tokenValue(op)] {
			return
		}
		if !uast.Equivalent(left, right) {
			return
		}
		issues = append(issues, Issue{
			Rule:      c.Name(),
			Message:   fmt.Sprintf("Correct one of the identical sub-expressions on both sides of operator %q.", tokenValue(op)),
			Primary:   right,
			Secondary: []Secondary{{Node: left}},
		})
	})
	return issues
}
