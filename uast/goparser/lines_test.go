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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTable(t *testing.T) {
	t.Parallel()

	lines := newLineTable([]byte("aé\nb"))
	tests := []struct {
		offset, line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 1, 3},
		{4, 2, 1},
		{5, 2, 2},
		{99, 2, 2},
		{-1, 1, 1},
	}
	for _, test := range tests {
		line, column := lines.position(test.offset)
		assert.Equal(t, test.line, line, "offset %d", test.offset)
		assert.Equal(t, test.column, column, "offset %d", test.offset)
	}
}
