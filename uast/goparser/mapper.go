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

package goparser

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"slices"

	"github.com/bufbuild/uastlint/uast"
)

// lexeme is a token as produced by go/scanner, before it is placed in the
// tree.
type lexeme struct {
	offset int
	tok    token.Token
	text   string
}

type mapper struct {
	file  *token.File
	lines *lineTable

	lexemes []lexeme
	next    int // Index of the first lexeme not yet placed.

	docs   map[int]bool // Offsets of comments that are part of a Doc group.
	params map[*ast.FieldList]bool
}

// scan lexes src again, this time keeping every token.
func (m *mapper) scan(src []byte) error {
	var errs scanner.ErrorList
	file := token.NewFileSet().AddFile(m.file.Name(), -1, len(src))

	var s scanner.Scanner
	s.Init(file, src, errs.Add, scanner.ScanComments)
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue // Inserted by the scanner, not in the source.
		}
		text := lit
		if text == "" {
			text = tok.String()
		}
		m.lexemes = append(m.lexemes, lexeme{offset: file.Offset(pos), tok: tok, text: text})
	}
	errs.Sort()
	return errs.Err()
}

// collect records which comments are documentation and which field lists
// declare function parameters.
func (m *mapper) collect(file *ast.File) {
	doc := func(group *ast.CommentGroup) {
		if group == nil {
			return
		}
		for _, c := range group.List {
			m.docs[m.offset(c.Slash)] = true
		}
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.File:
			doc(n.Doc)
		case *ast.FuncDecl:
			doc(n.Doc)
			m.params[n.Type.Params] = true
		case *ast.FuncLit:
			m.params[n.Type.Params] = true
		case *ast.GenDecl:
			doc(n.Doc)
		case *ast.TypeSpec:
			doc(n.Doc)
		case *ast.ValueSpec:
			doc(n.Doc)
		case *ast.ImportSpec:
			doc(n.Doc)
		case *ast.Field:
			doc(n.Doc)
		}
		return true
	})
}

func (m *mapper) root(file *ast.File) *uast.Node {
	children := m.place(nil, file, m.children(file), len(m.lines.src)+1)

	line, column := m.lines.position(len(m.lines.src))
	eof := uast.NewLeaf(uast.NewKinds(uast.EOF), "token.EOF", uast.MustToken(line, column, ""))
	children = append(children, eof)

	return uast.NewNode(kindsOf(file), label(file), nil, children...)
}

// node maps n and everything below it. Returns nil if n owns no tokens.
func (m *mapper) node(n ast.Node, context uast.Kinds) *uast.Node {
	kinds := kindsOf(n) | context
	if kinds.IsEmpty() {
		kinds = uast.NewKinds(uast.Unsupported)
	}

	astChildren := m.children(n)
	children := m.place(nil, n, astChildren, m.offset(n.End()))
	switch {
	case len(children) == 0:
		return nil
	case len(children) == 1 && len(astChildren) == 0:
		// A node spelled by a single token, such as an identifier, is that
		// token.
		tok, _ := children[0].Token()
		return uast.NewLeaf(kinds|children[0].Kinds(), label(n), tok)
	}
	return uast.NewNode(kinds, label(n), nil, children...)
}

// place maps the children of parent in order, interleaved with the tokens
// found between them, up to the end offset.
func (m *mapper) place(out []*uast.Node, parent ast.Node, children []ast.Node, end int) []*uast.Node {
	for _, child := range children {
		out = m.tokens(out, parent, m.offset(child.Pos()))
		if node := m.node(child, contextOf(parent, child, m.params)); node != nil {
			out = append(out, node)
		}
	}
	return m.tokens(out, parent, end)
}

// tokens appends a leaf for every unplaced lexeme starting before end.
func (m *mapper) tokens(out []*uast.Node, parent ast.Node, end int) []*uast.Node {
	for ; m.next < len(m.lexemes) && m.lexemes[m.next].offset < end; m.next++ {
		lx := m.lexemes[m.next]
		line, column := m.lines.position(lx.offset)
		out = append(out, uast.NewLeaf(
			tokenKinds(parent, lx, m.docs[lx.offset], m.offset),
			"token."+lx.tok.String(),
			uast.MustToken(line, column, lx.text),
		))
	}
	return out
}

// children returns the direct syntactic children of n in source order.
func (m *mapper) children(n ast.Node) []ast.Node {
	var out []ast.Node
	add := func(nodes ...ast.Node) {
		for _, n := range nodes {
			if n != nil && n.Pos().IsValid() {
				out = append(out, n)
			}
		}
	}

	// The FuncType of a function spans its name and receiver, so it is
	// replaced by its parts.
	switch n := n.(type) {
	case *ast.FuncDecl:
		add(fieldList(n.Recv), n.Name, fieldList(n.Type.TypeParams), fieldList(n.Type.Params), fieldList(n.Type.Results))
		if n.Body != nil {
			add(n.Body)
		}
		return out
	case *ast.FuncLit:
		add(fieldList(n.Type.Params), fieldList(n.Type.Results), n.Body)
		return out
	}

	ast.Inspect(n, func(c ast.Node) bool {
		switch c.(type) {
		case nil, *ast.CommentGroup, *ast.Comment:
			return false
		}
		if c == n {
			return true
		}
		add(c)
		return false
	})
	slices.SortStableFunc(out, func(a, b ast.Node) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return out
}

func (m *mapper) offset(pos token.Pos) int {
	return m.file.Offset(pos)
}

// fieldList avoids storing a typed nil in an ast.Node.
func fieldList(list *ast.FieldList) ast.Node {
	if list == nil {
		return nil
	}
	return list
}

func label(n ast.Node) string {
	return fmt.Sprintf("%T", n)
}
