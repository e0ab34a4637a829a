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

// Package oxford formats lists for human-readable messages.
package oxford

import "fmt"

// List prints its items separated by commas, with the conjunction before the
// last one. The serial comma is only used for three or more items:
//
//	a
//	a or b
//	a, b, or c
type List[T any] struct {
	Conjunction string
	Items       []T
}

// Or returns a [List] joined with "or".
func Or[T any](items ...T) List[T] {
	return List[T]{Conjunction: "or", Items: items}
}

// And returns a [List] joined with "and".
func And[T any](items ...T) List[T] {
	return List[T]{Conjunction: "and", Items: items}
}

var _ fmt.Formatter = List[int]{}

// Format implements [fmt.Formatter]. Each item is printed with the same verb
// as the list, so %q quotes every item.
func (l List[T]) Format(out fmt.State, verb rune) {
	if out.Flag('#') {
		fmt.Fprintf(out, "%#v", struct {
			Conjunction string
			Items       []T
		}(l))
		return
	}

	item := fmt.FormatString(out, verb)
	n := len(l.Items)
	for i, v := range l.Items {
		switch {
		case i == 0:
		case n == 2:
			fmt.Fprintf(out, " %s ", l.Conjunction)
		case i == n-1:
			fmt.Fprintf(out, ", %s ", l.Conjunction)
		default:
			fmt.Fprint(out, ", ")
		}
		fmt.Fprintf(out, item, v)
	}
}
