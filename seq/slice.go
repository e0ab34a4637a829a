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

package seq

// Slice is a read-only [Indexer] over a slice.
//
// The zero Slice is empty and ready to use.
type Slice[T any] struct {
	s []T
}

// NewSlice wraps a slice. The caller must not modify s afterwards.
func NewSlice[T any](s []T) Slice[T] {
	return Slice[T]{s}
}

// Len implements [Indexer].
func (s Slice[T]) Len() int {
	return len(s.s)
}

// At implements [Indexer].
func (s Slice[T]) At(idx int) T {
	return s.s[idx]
}
