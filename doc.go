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

// Package uastlint runs language-agnostic lint rules over source files.
//
// Each file is turned into a universal syntax tree (see package uast) by a
// front-end chosen by file extension, and every check in package checks is
// run over the tree. Checks only look at the roles nodes play, so a rule
// written once applies to every language with a front-end.
//
// # Resolvers
//
// A [Resolver] is how the analyzer locates its inputs. It can answer a query
// for a path with either source code, which is then parsed, or with a tree
// that was already built, in which case no front-end is needed.
//
// # Analyzer
//
// An [Analyzer] accepts a list of paths and produces a [report.Report]. Its
// fields control how it works, and its zero value reads files from the file
// system, parses .go files and runs every known check:
//
//	var analyzer uastlint.Analyzer
//	rep, err := analyzer.Analyze(ctx, "main.go", "util.go")
//
// Files are analyzed in parallel, by default with as many goroutines as there
// are CPU cores.
//
// # Suppression
//
// A finding is dropped if the line it starts on carries a comment of the form
//
//	// nolint
//	// nolint:rule-name,other-rule
//
// The first form silences every rule on that line.
package uastlint
