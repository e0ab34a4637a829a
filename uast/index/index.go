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

// Package index provides position lookups over a [uast.Node] tree.
//
// Nodes do not know their parents, so the index records, for every token in
// the tree, the path of nodes leading to it.
package index

import (
	"iter"
	"slices"

	"github.com/tidwall/btree"

	"github.com/bufbuild/uastlint/uast"
)

// Index maps source positions to the tokens of a tree.
//
// An Index is immutable once built and safe for concurrent use.
type Index struct {
	// Keyed by the start position of each token; see key.
	tokens btree.Map[int64, uast.Path]
}

// New indexes every token in the tree rooted at root, comments included.
//
// Tokens are assumed not to overlap, as in a tree produced by a front-end. If
// two tokens start at the same position, the later one wins.
func New(root *uast.Node) *Index {
	x := new(Index)
	root.Walk(func(p uast.Path) bool {
		if tok, ok := p.Node().Token(); ok {
			x.tokens.Set(key(tok.Line, tok.Column), slices.Clip(slices.Clone(p)))
		}
		return true
	})
	return x
}

// Len returns the number of tokens in the index.
func (x *Index) Len() int {
	return x.tokens.Len()
}

// At returns the path to the token that covers the given position. Empty
// tokens, such as EOF, cover nothing.
func (x *Index) At(line, column int) (uast.Path, bool) {
	iter := x.tokens.Iter()
	pos := key(line, column)
	// The candidate is the last token starting at or before pos.
	switch {
	case iter.Seek(pos):
		if iter.Key() != pos && !iter.Prev() {
			return nil, false
		}
	case !iter.Last():
		return nil, false
	}

	path := iter.Value()
	tok, _ := path.Node().Token()
	if key(tok.EndLine, tok.EndColumn) < pos {
		return nil, false
	}
	return path, true
}

// Line returns an iterator over the paths to tokens starting on the given
// line, in column order.
func (x *Index) Line(line int) iter.Seq[uast.Path] {
	return func(yield func(uast.Path) bool) {
		iter := x.tokens.Iter()
		for more := iter.Seek(key(line, 0)); more && iter.Key() < key(line+1, 0); more = iter.Next() {
			if !yield(iter.Value()) {
				return
			}
		}
	}
}

// Comments returns an iterator over all [uast.Comment] tokens, in source
// order.
func (x *Index) Comments() iter.Seq[uast.Token] {
	return func(yield func(uast.Token) bool) {
		iter := x.tokens.Iter()
		for more := iter.First(); more; more = iter.Next() {
			n := iter.Value().Node()
			if !n.Is(uast.Comment) {
				continue
			}
			tok, _ := n.Token()
			if !yield(tok) {
				return
			}
		}
	}
}

// key packs a position into a single ordered key. Columns may be zero here,
// for the end of empty tokens.
func key(line, column int) int64 {
	return int64(line)<<32 | int64(uint32(column))
}
