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

package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	underlying := errors.New("expected ';'")
	err := Error(SourcePos{Filename: "a.go", Line: 3, Col: 7}, underlying)
	assert.Equal("a.go:3:7: expected ';'", err.Error())
	assert.Equal(3, err.GetPosition().Line)
	assert.ErrorIs(err, underlying)

	err = Errorf(SourcePos{Filename: "b.go", Line: 2}, "bad %s", "thing")
	assert.Equal("b.go:2: bad thing", err.Error())
	assert.Equal("b.go", SourcePos{Filename: "b.go"}.String())
}

func TestHandlerDefaultAborts(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)
	first := h.HandleErrorf(SourcePos{Filename: "a.go", Line: 1, Col: 1}, "first")
	require.Error(t, first)
	second := h.HandleErrorf(SourcePos{Filename: "a.go", Line: 2, Col: 1}, "second")
	assert.Equal(t, first, second, "the first error sticks")
	assert.Equal(t, first, h.Error())
	assert.Equal(t, first, h.ReporterError())
}

func TestHandlerCollects(t *testing.T) {
	t.Parallel()

	var errs []ErrorWithPos
	var warnings []ErrorWithPos
	h := NewHandler(NewReporter(
		func(err ErrorWithPos) error {
			errs = append(errs, err)
			return nil
		},
		func(err ErrorWithPos) {
			warnings = append(warnings, err)
		},
	))
	assert.NoError(t, h.Error())

	h.HandleWarning(SourcePos{Filename: "a.go", Line: 1}, errors.New("careful"))
	assert.NoError(t, h.HandleErrorf(SourcePos{Filename: "a.go", Line: 1, Col: 1}, "one"))
	assert.NoError(t, h.HandleError(Errorf(SourcePos{Filename: "a.go", Line: 2, Col: 1}, "two")))

	assert.Len(t, errs, 2)
	assert.Len(t, warnings, 1)
	assert.ErrorIs(t, h.Error(), ErrInvalidSource)
	assert.NoError(t, h.ReporterError())
}

func TestHandlerPlainError(t *testing.T) {
	t.Parallel()

	called := false
	h := NewHandler(NewReporter(func(ErrorWithPos) error {
		called = true
		return nil
	}, nil))
	plain := errors.New("disk on fire")
	assert.Equal(t, plain, h.HandleError(plain))
	assert.False(t, called, "errors without a position bypass the reporter")
	assert.Equal(t, plain, h.Error())
}
