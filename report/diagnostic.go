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

package report

import (
	"fmt"

	"github.com/bufbuild/uastlint/uast"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Red. Indicates a rule violation or a file that could not be analyzed.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// Position is a 1-based line and codepoint column.
type Position struct {
	Line, Column int
}

// Diagnostic is a single finding: a rule violation, or a problem with an
// input file.
//
// To construct a diagnostic, create one using a function like [Report.Errorf].
// Then, call [Diagnostic.With] to apply options to it. You should at minimum
// apply [InFile], and usually [Snippet].
type Diagnostic struct {
	// The rule that produced this diagnostic, if any.
	Rule  string
	Level Level

	Message string

	// The file this diagnostic occurs in.
	Path string

	// The span of the node the diagnostic is about. Both are zero for a
	// diagnostic about a whole file. End is the position of the last
	// character, not one past it.
	Start, End Position

	// The source text of the node the diagnostic is about.
	Snippet string

	// The full source line that Start is on, if known.
	SourceLine string

	// Context to show after the snippet.
	Notes []string
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption func(*Diagnostic)

// With applies the given options to this diagnostic.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) { d.Message = fmt.Sprintf(format, args...) }
}

// InFile returns a DiagnosticOption that sets the file a diagnostic is in.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.Path = path }
}

// Tag returns a DiagnosticOption that records the rule a diagnostic comes
// from.
func Tag(rule string) DiagnosticOption {
	return func(d *Diagnostic) { d.Rule = rule }
}

// Snippet returns a DiagnosticOption that points a diagnostic at a node.
//
// Comments at the edges of the node are not part of its span. If n is nil,
// or has no tokens other than comments, this function returns nil.
func Snippet(n *uast.Node) DiagnosticOption {
	if n == nil {
		return nil
	}
	first, ok := n.FirstToken()
	if !ok {
		return nil
	}
	last, _ := n.LastToken()
	text := n.JoinTokens()
	return func(d *Diagnostic) {
		d.Start = Position{first.Line, first.Column}
		d.End = Position{last.EndLine, last.EndColumn}
		d.Snippet = text
	}
}

// SourceLine returns a DiagnosticOption that supplies the text of the line a
// diagnostic starts on, so that it can be shown in context.
func SourceLine(text string) DiagnosticOption {
	return func(d *Diagnostic) { d.SourceLine = text }
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the snippet.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}
