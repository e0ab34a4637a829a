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

package uast

import (
	"iter"
	"slices"
)

// Tokens returns an iterator over the tokens of this subtree in source order,
// skipping tokens that belong to [Comment] nodes, like [Node.FirstToken]
// does.
func (n *Node) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		n.tokens(yield)
	}
}

func (n *Node) tokens(yield func(Token) bool) bool {
	if n.hasToken && !n.kinds.Has(Comment) && !yield(n.token) {
		return false
	}
	for _, child := range n.children {
		if !child.tokens(yield) {
			return false
		}
	}
	return true
}

// Equal returns whether a and b are identical trees: same roles, labels,
// tokens (including positions) and children.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kinds != b.kinds || a.native != b.native ||
		a.hasToken != b.hasToken || a.token != b.token {
		return false
	}
	return slices.EqualFunc(a.children, b.children, Equal)
}

// Equivalent returns whether a and b spell the same code: their non-comment
// tokens have the same values in the same order. Positions, roles and labels
// are ignored.
func Equivalent(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	nextB, stop := iter.Pull(b.Tokens())
	defer stop()
	for tokA := range a.Tokens() {
		tokB, ok := nextB()
		if !ok || tokA.Value != tokB.Value {
			return false
		}
	}
	_, more := nextB()
	return !more
}
