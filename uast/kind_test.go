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
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/uastlint/uast"
)

func TestKindNames(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("BINARY_EXPRESSION", uast.BinaryExpression.String())
	assert.Equal("COMPILATION_UNIT", uast.CompilationUnit.String())
	assert.Equal("EOF", uast.EOF.String())
	assert.Equal("uast.StringLiteral", fmt.Sprintf("%#v", uast.StringLiteral))
	assert.Equal("Kind(200)", uast.Kind(200).String())

	for _, k := range []uast.Kind{uast.Assignment, uast.Comment, uast.Unsupported, uast.Punctuator} {
		got, ok := uast.KindByName(k.String())
		assert.True(ok)
		assert.Equal(k, got)
	}
	_, ok := uast.KindByName("Assignment")
	assert.False(ok)
}

func TestKinds(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var empty uast.Kinds
	assert.True(empty.IsEmpty())
	assert.Equal(0, empty.Len())
	assert.Equal("[]", empty.String())
	assert.False(empty.HasAny(uast.If))

	s := uast.NewKinds(uast.Statement, uast.If, uast.If)
	assert.False(s.IsEmpty())
	assert.Equal(2, s.Len())
	assert.True(s.Has(uast.If))
	assert.True(s.Has(uast.Statement))
	assert.False(s.Has(uast.Else))
	assert.True(s.HasAny(uast.Else, uast.If))
	assert.False(s.HasAny())
	assert.Equal("[IF STATEMENT]", s.String())
	assert.Equal([]uast.Kind{uast.If, uast.Statement}, slices.Collect(s.All()))

	t2 := s.With(uast.Else)
	assert.Equal(3, t2.Len())
	assert.Equal(2, s.Len(), "With must not modify its receiver")
	assert.True(s.Intersects(t2))
	assert.False(s.Intersects(uast.NewKinds(uast.Class)))

	last := uast.NewKinds(uast.Punctuator, uast.Assignment)
	assert.Equal("[ASSIGNMENT PUNCTUATOR]", last.String())
}
