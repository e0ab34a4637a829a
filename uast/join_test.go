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
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/uastlint/uast"
)

func TestJoinTokens(t *testing.T) {
	t.Parallel()

	unit := func(children ...*uast.Node) *uast.Node {
		return node(kinds(uast.CompilationUnit), children...)
	}

	tests := []struct {
		name string
		tree *uast.Node
		want string
	}{
		{
			name: "if",
			tree: unit(
				node(kinds(uast.If, uast.Statement),
					leaf(uast.Keyword, 1, 1, "if"),
					leaf(uast.Identifier, 1, 4, "x"),
					node(kinds(uast.Block),
						leaf(uast.Punctuator, 1, 6, "{"),
						leaf(uast.Identifier, 2, 3, "y"),
					),
				),
			),
			want: "if x {\n  y",
		},
		{
			name: "empty unit",
			tree: unit(),
			want: "",
		},
		{
			name: "leading padding",
			tree: unit(leaf(uast.Identifier, 3, 5, "a"), leaf(uast.Identifier, 3, 7, "b"), leaf(uast.Identifier, 4, 1, "c")),
			want: "\n\n    a b\nc",
		},
		{
			name: "fragment",
			tree: node(kinds(uast.Block), leaf(uast.Identifier, 3, 5, "a"), leaf(uast.Identifier, 3, 7, "b"), leaf(uast.Identifier, 4, 1, "c")),
			want: "a b\nc",
		},
		{
			name: "multi-line comment",
			tree: unit(
				leaf(uast.Identifier, 1, 1, "x"),
				leaf(uast.Comment, 1, 3, "/* a\n   b */"),
				leaf(uast.Identifier, 2, 9, "y"),
			),
			want: "x /* a\n   b */ y",
		},
		{
			name: "multi-line crlf",
			tree: unit(
				leaf(uast.Literal, 1, 1, "`a\r\nb`"),
				leaf(uast.Punctuator, 2, 3, ";"),
			),
			want: "`a\r\nb`;",
		},
		{
			name: "eof",
			tree: unit(leaf(uast.Identifier, 1, 1, "a"), leaf(uast.EOF, 2, 1, "")),
			want: "a\n",
		},
		{
			name: "eof on last line",
			tree: unit(leaf(uast.Identifier, 1, 1, "a"), leaf(uast.EOF, 1, 2, "")),
			want: "a",
		},
		{
			name: "unicode columns",
			tree: unit(leaf(uast.Literal, 1, 1, `"héllo😀"`), leaf(uast.Operator, 1, 10, "+"), leaf(uast.Identifier, 1, 12, "x")),
			want: `"héllo😀" + x`,
		},
		{
			name: "token before children",
			tree: unit(uast.NewNode(kinds(uast.Identifier), "odd", ptr(uast.MustToken(1, 1, "a")),
				leaf(uast.Identifier, 1, 3, "b"),
			)),
			want: "a b",
		},
		{
			name: "overlapping positions are not rewound",
			tree: unit(leaf(uast.Identifier, 2, 5, "abc"), leaf(uast.Identifier, 1, 1, "d")),
			want: "\n    abcd",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, test.tree.JoinTokens())
		})
	}
}

func TestJoinTokensIdempotent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	fn := sampleFunction()
	first := fn.JoinTokens()
	assert.Equal(first, fn.JoinTokens())
	assert.Equal("func f() {\n  a = 1\n  g := func() { b = 2 }\n}", first)
}

func TestJoinTokensRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"a",
		"a b  c\n\n  d",
		"\n\n   x = y\n",
		"héllo wörld\n  😀 ok\n",
		"func main() {\n    fmt.Println( msg )\n}\n",
		"  lead\n   spaces  ",
	}
	for _, src := range sources {
		unit := lexWords(src)
		assert.Equal(t, src, unit.JoinTokens(), "%q", src)
	}
}

// lexWords tokenizes src into space-separated words, recording codepoint
// positions, and ends the unit with an EOF token.
func lexWords(src string) *uast.Node {
	var children []*uast.Node
	line, column := 0, 1
	for _, text := range strings.Split(src, "\n") {
		line, column = line+1, 1
		for text != "" {
			if text[0] == ' ' {
				text = text[1:]
				column++
				continue
			}
			word, _, _ := strings.Cut(text, " ")
			children = append(children, leaf(uast.Identifier, line, column, word))
			column += utf8.RuneCountInString(word)
			text = text[len(word):]
		}
	}
	children = append(children, leaf(uast.EOF, line, column, ""))
	return node(kinds(uast.CompilationUnit), children...)
}

func ptr[T any](v T) *T {
	return &v
}
