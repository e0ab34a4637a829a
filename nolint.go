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

package uastlint

import (
	"errors"
	"strings"

	"github.com/bufbuild/uastlint/uast"
	"github.com/bufbuild/uastlint/uast/index"
)

const nolintDirective = "nolint"

var errMalformedNolint = errors.New(`malformed suppression comment; want "nolint" or "nolint:rule[,rule]"`)

// suppressions records, per line, the rules silenced by nolint comments on
// that line. A nil set silences every rule.
type suppressions map[int]map[string]bool

// collectSuppressions finds every nolint comment in an indexed unit. Malformed
// directives are passed to warn and otherwise ignored.
func collectSuppressions(idx *index.Index, warn func(uast.Token, error)) suppressions {
	s := make(suppressions)
	for comment := range idx.Comments() {
		rules, ok, err := parseNolint(comment.Value)
		switch {
		case err != nil:
			warn(comment, err)
		case ok:
			s.add(comment.Line, rules)
		}
	}
	return s
}

func (s suppressions) add(line int, rules []string) {
	set, seen := s[line]
	switch {
	case seen && set == nil:
	case rules == nil:
		s[line] = nil
	default:
		if set == nil {
			set = make(map[string]bool)
			s[line] = set
		}
		for _, rule := range rules {
			set[rule] = true
		}
	}
}

// suppressed returns whether rule is silenced on line.
func (s suppressions) suppressed(line int, rule string) bool {
	set, ok := s[line]
	return ok && (set == nil || set[rule])
}

// parseNolint parses the text of a comment. ok is false if the comment is not
// a directive at all; rules is nil if the directive applies to every rule.
func parseNolint(comment string) (rules []string, ok bool, err error) {
	text := comment
	switch {
	case strings.HasPrefix(text, "//"):
		text = text[2:]
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(text[2:], "*/")
	}
	text = strings.TrimSpace(text)

	rest, found := strings.CutPrefix(text, nolintDirective)
	if !found {
		return nil, false, nil
	}
	switch {
	case rest == "" || rest[0] == ' ' || rest[0] == '\t':
		return nil, true, nil
	case rest[0] != ':':
		// Some other word that happens to start with nolint.
		return nil, false, nil
	}

	// Entries may be spaced out after their commas. An entry followed by more
	// words ends the list; the rest of the comment is an explanation.
	for entry := range strings.SplitSeq(rest[1:], ",") {
		words := strings.Fields(entry)
		if len(words) == 0 {
			return nil, false, errMalformedNolint
		}
		rules = append(rules, words[0])
		if len(words) > 1 {
			break
		}
	}
	return rules, true, nil
}
