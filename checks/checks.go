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

// Package checks contains the rules that run over universal syntax trees.
//
// A check only looks at roles and tokens, never at native labels, so the same
// check works for any front-end.
package checks

import (
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/uastlint/seq"
	"github.com/bufbuild/uastlint/uast"
)

// Check is a single rule.
//
// Implementations hold no state between calls to Check and may be used from
// several goroutines at once.
type Check interface {
	// Name is the rule's identifier, as used in configuration files and
	// suppression comments.
	Name() string
	// Description is a one line summary of what the rule reports.
	Description() string
	// Check returns the issues found in a compilation unit, in the order they
	// were found.
	Check(unit *uast.Node) []Issue
}

// Configurable is a [Check] that accepts options.
type Configurable interface {
	Check

	// Configure decodes the check's options from a YAML mapping, or a
	// document holding one. Keys the check does not know about are an error,
	// and the previous options are kept.
	Configure(value *yaml.Node) error
}

// Issue is a problem found by a [Check].
type Issue struct {
	Rule    string
	Message string

	// The node the issue is about.
	Primary *uast.Node
	// Other nodes that help explain the issue, such as the original of a
	// duplicate.
	Secondary []Secondary
}

// Secondary is a node related to an [Issue].
type Secondary struct {
	Node    *uast.Node
	Message string
}

// All returns a new instance of every known check, with default options, in a
// fixed order.
func All() []Check {
	return []Check{
		new(BinaryOperatorIdenticalExpressions),
		NewNoIdenticalFunctions(),
		NewNoHardcodedCredentials(),
		new(NoSelfAssignment),
		NewTooManyParameters(),
	}
}

// Lookup returns a new instance of the check with the given name.
func Lookup(name string) (Check, bool) {
	for _, check := range All() {
		if check.Name() == name {
			return check, true
		}
	}
	return nil, false
}

// operands splits a binary expression into its left operand, its operator
// token and its right operand. Comments are skipped.
func operands(n *uast.Node) (left, op, right *uast.Node, ok bool) {
	var rest []*uast.Node
	for child := range seq.Values(n.Children()) {
		if !child.Is(uast.Comment) {
			rest = append(rest, child)
		}
	}
	if len(rest) != 3 || !rest[1].Is(uast.Operator) {
		return nil, nil, nil, false
	}
	if _, ok := rest[1].Token(); !ok {
		return nil, nil, nil, false
	}
	return rest[0], rest[1], rest[2], true
}

// pairs returns the targets and values of an assignment. ok is false unless
// there is one value per target.
func pairs(n *uast.Node) (targets, values []*uast.Node, ok bool) {
	targets = seq.ToSlice(n.ChildrenOf(uast.AssignmentTarget))
	values = seq.ToSlice(n.ChildrenOf(uast.AssignmentValue))
	return targets, values, len(targets) > 0 && len(targets) == len(values)
}

// tokenValue returns the text of a leaf.
func tokenValue(n *uast.Node) string {
	tok, _ := n.Token()
	return tok.Value
}
