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

// Package goparser maps Go source files into universal syntax trees.
//
// Every lexical token of the source, comments included, ends up in the tree
// exactly once, so [uast.Node.JoinTokens] on the result reproduces the
// layout of a newline-terminated source up to whitespace outside tokens:
// each tab or space before a token on its line comes back as one space, and
// whitespace at the end of a line, including whitespace-only lines, is
// dropped. Token text, such as a raw string or comment holding a tab, is
// kept as is.
package goparser

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"

	"github.com/bufbuild/uastlint/reporter"
	"github.com/bufbuild/uastlint/uast"
)

// SyntaxError is returned by [Parse] for a file that does not parse. It
// unwraps to its first error.
type SyntaxError struct {
	// Sorted by position; never empty.
	Errors []reporter.ErrorWithPos
}

func (e *SyntaxError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%v (and %d more errors)", e.Errors[0], len(e.Errors)-1)
}

// Unwrap returns the first syntax error.
func (e *SyntaxError) Unwrap() error {
	return e.Errors[0]
}

// Parse parses a Go source file and maps it into a tree rooted at a
// [uast.CompilationUnit].
//
// If src does not parse, the returned error is a [*SyntaxError] whose
// positions count columns in codepoints, like the rest of the tree.
func Parse(filename string, src []byte) (*uast.Node, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, syntaxError(newLineTable(src), err)
	}
	return MapFile(fset, file, src)
}

// MapFile maps an already parsed file into a tree. src must be the exact
// source file was parsed from, and file must have been parsed with
// [parser.ParseComments] for comments to be placed correctly.
func MapFile(fset *token.FileSet, file *ast.File, src []byte) (*uast.Node, error) {
	tf := fset.File(file.Pos())
	if tf == nil {
		return nil, errors.New("goparser: file is not in the file set")
	}
	if tf.Size() != len(src) {
		return nil, fmt.Errorf("goparser: %s: source has %d bytes but was parsed from %d", tf.Name(), len(src), tf.Size())
	}

	m := &mapper{
		file:   tf,
		lines:  newLineTable(src),
		docs:   make(map[int]bool),
		params: make(map[*ast.FieldList]bool),
	}
	if err := m.scan(src); err != nil {
		return nil, syntaxError(m.lines, err)
	}
	m.collect(file)
	return m.root(file), nil
}

func syntaxError(lines *lineTable, err error) error {
	var list scanner.ErrorList
	if !errors.As(err, &list) || len(list) == 0 {
		return err
	}
	out := &SyntaxError{Errors: make([]reporter.ErrorWithPos, 0, len(list))}
	for _, e := range list {
		pos := reporter.SourcePos{Filename: e.Pos.Filename}
		if e.Pos.IsValid() {
			pos.Line, pos.Col = lines.position(e.Pos.Offset)
		}
		out.Errors = append(out.Errors, reporter.Error(pos, errors.New(e.Msg)))
	}
	return out
}
