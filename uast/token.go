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

package uast

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidPosition is returned (wrapped in a [*PositionError]) when a token
// is constructed with a line or column smaller than one.
var ErrInvalidPosition = errors.New("invalid token location")

// PositionError describes a rejected token position.
type PositionError struct {
	Line, Column int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%v %d:%d", ErrInvalidPosition, e.Line, e.Column)
}

// Unwrap returns [ErrInvalidPosition].
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// Token is a single lexical unit: a literal piece of source text together
// with its location.
//
// All positions are 1-based and measured in Unicode codepoints, not bytes.
// Tokens are values; construct them with [NewToken], which derives the end
// position.
type Token struct {
	// The literal source text.
	Value string

	// Line and column of the first character of the token.
	Line, Column int

	// Line and column of the last character of the token. If the token is on
	// a single line, EndLine == Line; if it has a single character,
	// EndColumn == Column. An empty token (such as EOF) has
	// EndColumn == Column - 1.
	EndLine, EndColumn int
}

// NewToken constructs a token starting at the given position.
//
// Returns a [*PositionError] if line or column is smaller than one; this is
// the only validation performed anywhere in a tree.
func NewToken(line, column int, value string) (Token, error) {
	if line < 1 || column < 1 {
		return Token{}, &PositionError{Line: line, Column: column}
	}

	tok := Token{Value: value, Line: line, Column: column}
	if !strings.ContainsAny(value, "\r\n") {
		tok.EndLine = line
		tok.EndColumn = column + utf8.RuneCountInString(value) - 1
		return tok, nil
	}

	// Continuation lines restart at column one, so the starting column does
	// not contribute to the end column.
	breaks, last := splitLines(value)
	tok.EndLine = line + breaks
	tok.EndColumn = utf8.RuneCountInString(last)
	return tok, nil
}

// MustToken is like [NewToken], but panics on an invalid position.
func MustToken(line, column int, value string) Token {
	tok, err := NewToken(line, column, value)
	if err != nil {
		panic(err)
	}
	return tok
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("[%d:%d %s]", t.Line, t.Column, t.Value)
}

// splitLines counts the line breaks in s, treating "\r\n", "\n" and "\r" as
// equivalent separators, and returns the text after the last one.
func splitLines(s string) (breaks int, last string) {
	for {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			return breaks, s
		}
		breaks++
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
}
