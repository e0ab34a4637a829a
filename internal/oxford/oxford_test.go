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

package oxford_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/uastlint/internal/oxford"
)

func TestList(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("", fmt.Sprint(oxford.Or[string]()))
	assert.Equal("a", fmt.Sprint(oxford.Or("a")))
	assert.Equal("a or b", fmt.Sprint(oxford.Or("a", "b")))
	assert.Equal("a, b, or c", fmt.Sprint(oxford.Or("a", "b", "c")))
	assert.Equal("1, 2, 3, and 4", fmt.Sprintf("%v", oxford.And(1, 2, 3, 4)))
	assert.Equal(`"x" and "y"`, fmt.Sprintf("%q", oxford.And("x", "y")))
}
