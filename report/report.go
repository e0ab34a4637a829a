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

// Package report collects and renders diagnostics.
package report

import (
	"cmp"
	"fmt"
	"slices"
)

// Report is a collection of diagnostics.
//
// A Report is not safe for concurrent use; give each goroutine its own and
// [Report.Merge] them afterwards.
type Report struct {
	Diagnostics []Diagnostic
}

// Errorf creates a new error diagnostic; analogous to [fmt.Errorf].
//
// The returned pointer is only valid until the next diagnostic is added.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(Error, fmt.Sprintf(format, args...))
}

// Warnf creates a new warning diagnostic.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(Warning, fmt.Sprintf(format, args...))
}

// Remarkf creates a new remark diagnostic.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(Remark, fmt.Sprintf(format, args...))
}

func (r *Report) push(level Level, message string) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Level: level, Message: message})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}

// Merge appends the diagnostics of other to r.
func (r *Report) Merge(other *Report) {
	if other != nil {
		r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
	}
}

// Sort orders the diagnostics by file and then by position. Diagnostics at the
// same position are ordered by level, rule and message, so that the result is
// deterministic.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Start.Line, b.Start.Line),
			cmp.Compare(a.Start.Column, b.Start.Column),
			cmp.Compare(a.Level, b.Level),
			cmp.Compare(a.Rule, b.Rule),
			cmp.Compare(a.Message, b.Message),
		)
	})
}

// Counts returns the number of diagnostics at each level.
func (r *Report) Counts() (errors, warnings, remarks int) {
	for _, d := range r.Diagnostics {
		switch d.Level {
		case Error:
			errors++
		case Warning:
			warnings++
		case Remark:
			remarks++
		}
	}
	return errors, warnings, remarks
}
