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

package goparser

import (
	"sort"
	"unicode/utf8"
)

// lineTable converts byte offsets into 1-based line and codepoint column
// pairs. go/token counts columns in bytes, which is not what a tree wants.
type lineTable struct {
	src    []byte
	starts []int // Offset of the first byte of each line.
}

func newLineTable(src []byte) *lineTable {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineTable{src: src, starts: starts}
}

func (l *lineTable) position(offset int) (line, column int) {
	offset = min(max(offset, 0), len(l.src))
	i := sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > offset }) - 1
	return i + 1, utf8.RuneCount(l.src[l.starts[i]:offset]) + 1
}
