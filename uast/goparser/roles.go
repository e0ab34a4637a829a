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
	"go/ast"
	"go/token"
	"slices"

	"github.com/bufbuild/uastlint/uast"
)

// kindsOf returns the roles a node plays on its own, regardless of where it
// appears.
func kindsOf(n ast.Node) uast.Kinds {
	switch n := n.(type) {
	case *ast.File:
		return uast.NewKinds(uast.CompilationUnit)
	case *ast.FuncDecl:
		return uast.NewKinds(uast.Function, uast.Declaration)
	case *ast.FuncLit:
		return uast.NewKinds(uast.FunctionLiteral, uast.Expression)
	case *ast.BlockStmt:
		return uast.NewKinds(uast.Block)
	case *ast.IfStmt:
		return uast.NewKinds(uast.If, uast.Statement)
	case *ast.SwitchStmt, *ast.TypeSwitchStmt:
		return uast.NewKinds(uast.Switch, uast.Statement)
	case *ast.CaseClause:
		if n.List == nil {
			return uast.NewKinds(uast.DefaultCase)
		}
		return uast.NewKinds(uast.Case)
	case *ast.CommClause:
		if n.Comm == nil {
			return uast.NewKinds(uast.DefaultCase)
		}
		return uast.NewKinds(uast.Case)
	case *ast.AssignStmt:
		kinds := uast.NewKinds(uast.Assignment, uast.Statement)
		switch n.Tok {
		case token.ASSIGN:
		case token.DEFINE:
			kinds = kinds.With(uast.Declaration)
		default:
			kinds = kinds.With(uast.CompoundAssignment)
		}
		return kinds
	case *ast.ValueSpec:
		if len(n.Values) > 0 {
			return uast.NewKinds(uast.Declaration, uast.Assignment)
		}
		return uast.NewKinds(uast.Declaration)
	case *ast.GenDecl:
		return uast.NewKinds(uast.Declaration)
	case *ast.TypeSpec:
		if _, ok := n.Type.(*ast.StructType); ok {
			return uast.NewKinds(uast.Class, uast.Declaration)
		}
		return uast.NewKinds(uast.Declaration)
	case *ast.BinaryExpr:
		return uast.NewKinds(uast.BinaryExpression, uast.Expression)
	case *ast.CallExpr:
		return uast.NewKinds(uast.Call, uast.Expression)
	case *ast.ForStmt, *ast.RangeStmt:
		return uast.NewKinds(uast.Loop, uast.Statement)
	case *ast.ReturnStmt:
		return uast.NewKinds(uast.Return, uast.Statement)
	case *ast.Ident:
		return uast.NewKinds(uast.Identifier)
	case *ast.BasicLit:
		if n.Kind == token.STRING {
			return uast.NewKinds(uast.Literal, uast.StringLiteral)
		}
		return uast.NewKinds(uast.Literal)
	case *ast.ArrayType, *ast.StructType, *ast.FuncType,
		*ast.InterfaceType, *ast.MapType, *ast.ChanType:
		return uast.NewKinds(uast.Type)
	case ast.Expr:
		return uast.NewKinds(uast.Expression)
	case ast.Stmt:
		return uast.NewKinds(uast.Statement)
	}
	return 0
}

// contextOf returns the roles child plays because of its place in parent.
func contextOf(parent, child ast.Node, params map[*ast.FieldList]bool) uast.Kinds {
	switch p := parent.(type) {
	case *ast.FuncDecl:
		if child == p.Name {
			return uast.NewKinds(uast.FunctionName)
		}
	case *ast.FieldList:
		if params[p] {
			return uast.NewKinds(uast.Parameter)
		}
	case *ast.Field:
		if child == p.Type {
			return uast.NewKinds(uast.Type)
		}
	case *ast.IfStmt:
		switch child {
		case p.Cond:
			return uast.NewKinds(uast.Condition)
		case p.Else:
			return uast.NewKinds(uast.Else)
		}
	case *ast.ForStmt:
		if child == p.Cond {
			return uast.NewKinds(uast.Condition)
		}
	case *ast.AssignStmt:
		if child.Pos() < p.TokPos {
			return uast.NewKinds(uast.AssignmentTarget)
		}
		return uast.NewKinds(uast.AssignmentValue)
	case *ast.ValueSpec:
		switch {
		case child == p.Type:
			return uast.NewKinds(uast.Type)
		case slices.ContainsFunc(p.Names, func(id *ast.Ident) bool { return child == id }):
			return uast.NewKinds(uast.AssignmentTarget)
		default:
			return uast.NewKinds(uast.AssignmentValue)
		}
	case *ast.TypeSpec:
		if child == p.Type {
			return uast.NewKinds(uast.Type)
		}
	case *ast.LabeledStmt:
		if child == p.Label {
			return uast.NewKinds(uast.Label)
		}
	case *ast.BranchStmt:
		if child == p.Label {
			return uast.NewKinds(uast.Label)
		}
	}
	return 0
}

// tokenKinds returns the roles of a token placed directly under parent.
func tokenKinds(parent ast.Node, lx lexeme, doc bool, offset func(token.Pos) int) uast.Kinds {
	var kinds uast.Kinds
	switch tok := lx.tok; {
	case tok == token.COMMENT:
		kinds = uast.NewKinds(uast.Comment)
		if doc {
			kinds = kinds.With(uast.StructuredComment)
		}
	case tok == token.IDENT:
		kinds = uast.NewKinds(uast.Identifier)
	case tok == token.STRING:
		kinds = uast.NewKinds(uast.Literal, uast.StringLiteral)
	case tok.IsLiteral():
		kinds = uast.NewKinds(uast.Literal)
	case tok.IsKeyword():
		kinds = uast.NewKinds(uast.Keyword)
	case isPunctuation(tok):
		kinds = uast.NewKinds(uast.Punctuator)
	default:
		kinds = uast.NewKinds(uast.Operator)
	}

	switch p := parent.(type) {
	case *ast.AssignStmt:
		if lx.offset == offset(p.TokPos) {
			kinds = kinds.With(uast.AssignmentOperator)
		}
	case *ast.ValueSpec:
		if lx.tok == token.ASSIGN {
			kinds = kinds.With(uast.AssignmentOperator)
		}
	}
	return kinds
}

func isPunctuation(tok token.Token) bool {
	switch tok {
	case token.LPAREN, token.RPAREN, token.LBRACK, token.RBRACK,
		token.LBRACE, token.RBRACE, token.COMMA, token.SEMICOLON,
		token.PERIOD, token.COLON, token.ELLIPSIS:
		return true
	}
	return false
}
