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
	"math/bits"
	"strings"
)

//go:generate go run github.com/bufbuild/uastlint/internal/enum kind.yaml

// Every Kind must fit in a bit of Kinds.
var _ [64 - kindCount]struct{}

// Kinds is a set of [Kind]s.
//
// The zero value is the empty set.
type Kinds uint64

// NewKinds returns the set containing the given kinds.
func NewKinds(kinds ...Kind) Kinds {
	var s Kinds
	return s.With(kinds...)
}

// With returns a copy of s with the given kinds added.
func (s Kinds) With(kinds ...Kind) Kinds {
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has returns whether s contains k.
func (s Kinds) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// HasAny returns whether s contains at least one of kinds.
func (s Kinds) HasAny(kinds ...Kind) bool {
	return s.Intersects(NewKinds(kinds...))
}

// Intersects returns whether s and t have a kind in common.
func (s Kinds) Intersects(t Kinds) bool {
	return s&t != 0
}

// Len returns the number of kinds in s.
func (s Kinds) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns whether s contains no kinds.
func (s Kinds) IsEmpty() bool {
	return s == 0
}

// All returns an iterator over the kinds in s, in declaration order.
func (s Kinds) All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for rest := uint64(s); rest != 0; rest &= rest - 1 {
			if !yield(Kind(bits.TrailingZeros64(rest))) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (s Kinds) String() string {
	var out strings.Builder
	out.WriteByte('[')
	for k := range s.All() {
		if out.Len() > 1 {
			out.WriteByte(' ')
		}
		out.WriteString(k.String())
	}
	out.WriteByte(']')
	return out.String()
}

// HasRole reports whether n carries the role k.
//
// A nil node carries no roles.
func HasRole(k Kind, n *Node) bool {
	return n != nil && n.kinds.Has(k)
}
