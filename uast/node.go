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
	"slices"

	"github.com/bufbuild/uastlint/seq"
)

// Node is a node in a universal syntax tree.
//
// A node carries a set of roles, a label naming the native construct it was
// built from, an optional token, and its children in source order. Nodes are
// immutable once built, so a tree may be shared between goroutines freely.
//
// By convention a node has either a token or children, but not both.
type Node struct {
	kinds    Kinds
	native   string
	token    Token
	hasToken bool
	children []*Node
}

// NewNode builds a node. A nil tok means the node has no token.
//
// The node takes ownership of its children: each child must belong to
// exactly one parent. The children slice itself is copied.
func NewNode(kinds Kinds, native string, tok *Token, children ...*Node) *Node {
	n := &Node{
		kinds:    kinds,
		native:   native,
		children: slices.Clip(slices.Clone(children)),
	}
	if tok != nil {
		n.token = *tok
		n.hasToken = true
	}
	return n
}

// NewLeaf builds a node with a token and no children.
func NewLeaf(kinds Kinds, native string, tok Token) *Node {
	return NewNode(kinds, native, &tok)
}

// Kinds returns the roles this node plays.
func (n *Node) Kinds() Kinds {
	return n.kinds
}

// NativeNode returns the label of the native construct this node was built
// from. It is only meant for diagnostics and debugging.
func (n *Node) NativeNode() string {
	return n.native
}

// Token returns this node's token, if it has one.
func (n *Node) Token() (Token, bool) {
	return n.token, n.hasToken
}

// Children returns this node's children in source order.
func (n *Node) Children() seq.Indexer[*Node] {
	return seq.NewSlice(n.children)
}

// Child returns the first direct child carrying k.
func (n *Node) Child(k Kind) (*Node, bool) {
	for _, child := range n.children {
		if child.kinds.Has(k) {
			return child, true
		}
	}
	return nil, false
}

// ChildrenOf returns the direct children carrying any of kinds, in source
// order.
func (n *Node) ChildrenOf(kinds ...Kind) seq.Indexer[*Node] {
	want := NewKinds(kinds...)
	var out []*Node
	for _, child := range n.children {
		if child.kinds.Intersects(want) {
			out = append(out, child)
		}
	}
	return seq.NewSlice(out)
}

// Descendants calls visit on every node of this subtree carrying k, in
// pre-order: a node is visited before its children, and children are visited
// left to right. This node itself is included.
//
// If any stop kinds are given, a node carrying one of them is skipped along
// with its whole subtree before it is tested against k. This applies to the
// receiver too. For example, passing [Function] as a stop kind searches the
// body of a function without entering nested functions.
func (n *Node) Descendants(k Kind, visit func(*Node), stop ...Kind) {
	n.descendants(k, visit, NewKinds(stop...))
}

func (n *Node) descendants(k Kind, visit func(*Node), stop Kinds) {
	if n.kinds.Intersects(stop) {
		return
	}
	if n.kinds.Has(k) {
		visit(n)
	}
	for _, child := range n.children {
		child.descendants(k, visit, stop)
	}
}

// Is returns whether this node carries any of kinds. Descendants are not
// considered.
func (n *Node) Is(kinds ...Kind) bool {
	return n.kinds.HasAny(kinds...)
}

// IsNot is the negation of [Node.Is].
func (n *Node) IsNot(kinds ...Kind) bool {
	return !n.Is(kinds...)
}

// FirstToken returns the first token in this subtree, skipping tokens that
// belong to [Comment] nodes.
func (n *Node) FirstToken() (Token, bool) {
	if n.hasToken && !n.kinds.Has(Comment) {
		return n.token, true
	}
	for _, child := range n.children {
		if tok, ok := child.FirstToken(); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// LastToken returns the last token in this subtree, skipping tokens that
// belong to [Comment] nodes.
func (n *Node) LastToken() (Token, bool) {
	if n.hasToken && !n.kinds.Has(Comment) {
		return n.token, true
	}
	for _, child := range seq.Backward(n.Children()) {
		if tok, ok := child.LastToken(); ok {
			return tok, true
		}
	}
	return Token{}, false
}

// String implements [fmt.Stringer].
//
// A node with a token prints as that token. Other nodes print their roles
// followed by the text of their first token, if any.
func (n *Node) String() string {
	if n.hasToken {
		return n.token.String()
	}
	first, _ := n.FirstToken()
	return n.kinds.String() + first.Value
}
