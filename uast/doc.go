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

// Package uast defines a universal syntax tree: a language-neutral shape that
// front-ends for different source languages map their native syntax trees
// into, so that one rule implementation can analyze all of them.
//
// A tree is made of [*Node] values. Each node carries a set of roles
// ([Kinds]), a label naming the native construct it came from, and either a
// [Token] or an ordered list of children. Roles are capability tags, not
// classes: an `if` statement is a node carrying both [If] and [Statement],
// and rules query for whichever role they care about.
//
// Trees are built bottom-up by a front-end (see the goparser sub-package) and
// are immutable afterwards. Every query keeps its state on the stack, so a
// tree may be read by any number of goroutines at once.
//
// Tokens record where they start and, derived from their text, where they
// end. [Node.JoinTokens] uses nothing but those positions to rebuild the
// source text of a tree, so snippets shown to users are always derived from
// the tree rather than from the original file contents.
//
// Queries that may find nothing return a comma-ok pair rather than a nil
// pointer or zero value, so callers must check for absence before use.
package uast
