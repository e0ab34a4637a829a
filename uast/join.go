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

import "strings"

// JoinTokens reconstructs the source text of this subtree from its tokens.
//
// Gaps between tokens are filled with newlines and spaces according to the
// tokens' positions. For a [CompilationUnit] whose tokens carry their
// original positions, the result is the original source with whitespace
// outside tokens normalized: a tab or space before a token comes back as one
// space, and whitespace at the end of a line is dropped.
//
// Any other node is treated as a fragment: no padding is emitted before its
// first token, and gaps are only filled after it.
func (n *Node) JoinTokens() string {
	var j joiner
	if n.kinds.Has(CompilationUnit) {
		j.line, j.column = 1, 1
	}
	j.join(n)
	return j.out.String()
}

// joiner is the cursor state of a JoinTokens call. A zero line means no
// token has been placed yet, so no padding is emitted.
type joiner struct {
	out          strings.Builder
	line, column int
}

func (j *joiner) join(n *Node) {
	if n.hasToken {
		j.place(n.token)
	}
	for _, child := range n.children {
		j.join(child)
	}
}

func (j *joiner) place(tok Token) {
	if j.line != 0 {
		for j.line < tok.Line {
			j.out.WriteByte('\n')
			j.line++
			j.column = 1
		}
		for j.column < tok.Column {
			j.out.WriteByte(' ')
			j.column++
		}
	}
	j.out.WriteString(tok.Value)
	j.line = tok.EndLine
	j.column = tok.EndColumn + 1
}
