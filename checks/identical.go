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

package checks

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/uastlint/uast"
)

// NoIdenticalFunctions reports functions whose body is the same as the body
// of a function earlier in the same unit.
type NoIdenticalFunctions struct {
	// Bodies spanning fewer lines than this are never reported. Short
	// functions, such as one line getters, are legitimately identical.
	MinLines int `yaml:"min-lines"`
}

// NewNoIdenticalFunctions returns the check with default options.
func NewNoIdenticalFunctions() *NoIdenticalFunctions {
	return &NoIdenticalFunctions{MinLines: 3}
}

// Name implements [Check].
func (*NoIdenticalFunctions) Name() string {
	return "no-identical-functions"
}

// Description implements [Check].
func (*NoIdenticalFunctions) Description() string {
	return "Functions should not have identical implementations"
}

// Configure implements [Configurable].
func (c *NoIdenticalFunctions) Configure(value *yaml.Node) error {
	opts := *c
	if err := decodeOptions(value, &opts); err != nil {
		return err
	}
	if opts.MinLines < 1 {
		return errors.New("min-lines must be at least 1")
	}
	*c = opts
	return nil
}

// Check implements [Check].
func (c *NoIdenticalFunctions) Check(unit *uast.Node) []Issue {
	type function struct {
		node, body *uast.Node
	}
	var seen []function
	var issues []Issue
	unit.Descendants(uast.Function, func(fn *uast.Node) {
		body, ok := fn.Child(uast.Block)
		if !ok || lines(body) < c.MinLines {
			return
		}
		for _, prev := range seen {
			if !uast.Equivalent(prev.body, body) {
				continue
			}
			first, _ := prev.node.FirstToken()
			issues = append(issues, Issue{
				Rule:      c.Name(),
				Message:   fmt.Sprintf("Update this function so that its implementation is not identical to the one on line %d.", first.Line),
				Primary:   name(fn),
				Secondary: []Secondary{{Node: name(prev.node), Message: "original implementation"}},
			})
			return
		}
		seen = append(seen, function{fn, body})
	})
	return issues
}

// lines returns the number of lines n spans, ignoring leading and trailing
// comments.
func lines(n *uast.Node) int {
	first, ok := n.FirstToken()
	if !ok {
		return 0
	}
	last, _ := n.LastToken()
	return last.EndLine - first.Line + 1
}

// name returns the name of a function, or the function itself if it has
// none.
func name(fn *uast.Node) *uast.Node {
	if n, ok := fn.Child(uast.FunctionName); ok {
		return n
	}
	return fn
}
