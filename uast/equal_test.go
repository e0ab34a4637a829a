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

package uast_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/uastlint/uast"
)

func TestEqual(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(uast.Equal(sampleFunction(), sampleFunction()))
	assert.True(uast.Equal(nil, nil))
	assert.False(uast.Equal(sampleFunction(), nil))

	moved := node(kinds(uast.Block), leaf(uast.Identifier, 1, 2, "a"))
	assert.False(uast.Equal(node(kinds(uast.Block), leaf(uast.Identifier, 1, 1, "a")), moved))
	assert.False(uast.Equal(node(kinds(uast.Block)), node(kinds(uast.Statement))))
	assert.False(uast.Equal(node(kinds(uast.Block)), moved))
}

func TestEquivalent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := node(kinds(uast.BinaryExpression),
		leaf(uast.Identifier, 1, 1, "x"),
		leaf(uast.Comment, 1, 3, "/* c */"),
		leaf(uast.Operator, 1, 11, "+"),
		leaf(uast.Identifier, 1, 13, "y"),
	)
	b := node(kinds(uast.Expression),
		node(kinds(uast.Expression), leaf(uast.Identifier, 7, 4, "x")),
		leaf(uast.Operator, 8, 1, "+"),
		leaf(uast.Literal, 8, 3, "y"),
	)
	assert.True(uast.Equivalent(a, b))
	assert.True(uast.Equivalent(b, a))

	shorter := node(kinds(uast.Expression), leaf(uast.Identifier, 1, 1, "x"), leaf(uast.Operator, 1, 3, "+"))
	assert.False(uast.Equivalent(a, shorter))
	assert.False(uast.Equivalent(shorter, a))

	other := node(kinds(uast.Expression), leaf(uast.Identifier, 1, 1, "x"), leaf(uast.Operator, 1, 3, "-"), leaf(uast.Identifier, 1, 5, "y"))
	assert.False(uast.Equivalent(a, other))

	assert.True(uast.Equivalent(nil, nil))
	assert.False(uast.Equivalent(a, nil))
}

func TestTokens(t *testing.T) {
	t.Parallel()

	values := slices.Collect(func(yield func(string) bool) {
		for tok := range sampleFunction().Tokens() {
			if !yield(tok.Value) {
				return
			}
		}
	})
	want := []string{
		"func", "f", "(", ")", "{",
		"a", "=", "1",
		"g", ":=", "func", "(", ")", "{", "b", "=", "2", "}",
		"}",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	// Early exit from the iterator.
	var first []uast.Token
	for tok := range sampleFunction().Tokens() {
		first = append(first, tok)
		if len(first) == 2 {
			break
		}
	}
	require.Len(t, first, 2)
	assert.Equal(t, uast.MustToken(1, 6, "f"), first[1])
}
