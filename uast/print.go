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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fprint writes a debugging dump of the tree rooted at n to w, one node per
// line, with children indented under their parent:
//
//	[COMPILATION_UNIT] *ast.File
//	  [KEYWORD] token.package 1:1-1:7 "package"
func Fprint(w io.Writer, n *Node) error {
	out := bufio.NewWriter(w)
	var indent []byte
	n.Walk(func(p Path) bool {
		indent = indent[:0]
		for range len(p) - 1 {
			indent = append(indent, "  "...)
		}
		node := p.Node()
		fmt.Fprintf(out, "%s%v %s", indent, node.kinds, node.native)
		if node.hasToken {
			t := node.token
			fmt.Fprintf(out, " %d:%d-%d:%d %q", t.Line, t.Column, t.EndLine, t.EndColumn, t.Value)
		}
		out.WriteByte('\n')
		return true
	})
	return out.Flush()
}

// Sprint is like [Fprint], but returns a string.
func Sprint(n *Node) string {
	var out strings.Builder
	_ = Fprint(&out, n)
	return out.String()
}
