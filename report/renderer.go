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
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic, in the
	// style of the Go compiler: path:line:col: level: message [rule].
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings rendered. The error-typed return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for _, d := range report.Diagnostics {
		if !r.ShowRemarks && d.Level == Remark {
			continue
		}
		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return errorCount, warningCount, err
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return errorCount, warningCount, err
			}
		}

		switch d.Level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if r.Compact || errorCount+warningCount == 0 {
		return errorCount, warningCount, nil
	}

	c := r.colors(Error)
	summary := "encountered " + pluralize(errorCount, "error")
	switch {
	case errorCount == 0:
		c = r.colors(Warning)
		summary = "encountered " + pluralize(warningCount, "warning")
	case warningCount > 0:
		summary += " and " + pluralize(warningCount, "warning")
	}
	_, err = fmt.Fprintln(out, c.level+summary+c.reset)
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string, without a trailing
// newline.
func (r Renderer) Diagnostic(d Diagnostic) string {
	c := r.colors(d.Level)
	message := d.Message
	if d.Rule != "" {
		message += " [" + d.Rule + "]"
	}

	if r.Compact {
		var where string
		switch {
		case d.Path == "":
		case d.Start.Line == 0:
			where = d.Path + ": "
		default:
			where = fmt.Sprintf("%s:%d:%d: ", d.Path, d.Start.Line, d.Start.Column)
		}
		return fmt.Sprintf("%s%s%s%s: %s", where, c.level, d.Level, c.reset, message)
	}

	// Otherwise, imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprintf(&out, "%s%s%s: %s", c.level, d.Level, c.reset, message)

	bar := max(2, len(strconv.Itoa(d.Start.Line)))
	pad := strings.Repeat(" ", bar)
	switch {
	case d.Path == "":
	case d.Start.Line == 0:
		fmt.Fprintf(&out, "\n%s%s--> %s%s", c.accent, pad, d.Path, c.reset)
	default:
		fmt.Fprintf(&out, "\n%s%s--> %s:%d:%d%s", c.accent, pad, d.Path, d.Start.Line, d.Start.Column, c.reset)
	}

	if text, indent, width, ok := window(d); ok {
		fmt.Fprintf(&out, "\n%s%s |%s", c.accent, pad, c.reset)
		fmt.Fprintf(&out, "\n%s%*d |%s %s", c.accent, bar, d.Start.Line, c.reset, text)
		fmt.Fprintf(&out, "\n%s%s |%s %s%s%s%s",
			c.accent, pad, c.reset,
			strings.Repeat(" ", indent), c.level, strings.Repeat("^", width), c.reset)
	}

	for _, note := range d.Notes {
		fmt.Fprintf(&out, "\n%s%s = %snote:%s %s", c.accent, pad, c.remark, c.reset, note)
	}
	return out.String()
}

// window picks the line of source to show under a diagnostic, and the
// display columns to underline in it.
func window(d Diagnostic) (text string, indent, width int, ok bool) {
	if d.Start.Line == 0 {
		return "", 0, 0, false
	}

	if d.SourceLine == "" {
		if d.Snippet == "" {
			return "", 0, 0, false
		}
		text, _, _ = strings.Cut(d.Snippet, "\n")
		text = expandTabs(text)
		return text, 0, max(1, uniseg.StringWidth(text)), true
	}

	line := []rune(strings.TrimRight(d.SourceLine, "\r\n"))
	start := min(max(d.Start.Column-1, 0), len(line))
	end := len(line)
	if d.End.Line == d.Start.Line {
		end = min(max(d.End.Column, start), len(line))
	}
	indent = uniseg.StringWidth(expandTabs(string(line[:start])))
	width = uniseg.StringWidth(expandTabs(string(line[:end]))) - indent
	return expandTabs(string(line)), indent, max(1, width), true
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabstopWidth))
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}

type colors struct {
	reset, accent, remark, level string
}

func (r Renderer) colors(level Level) colors {
	if !r.Colorize {
		return colors{}
	}
	c := colors{
		reset:  "\033[0m",
		accent: "\033[1;94m",
		remark: "\033[1;96m",
	}
	switch level {
	case Error:
		c.level = "\033[1;91m"
	case Warning:
		c.level = "\033[1;93m"
	case Remark:
		c.level = c.remark
	}
	return c
}
