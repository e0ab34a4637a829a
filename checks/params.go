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

	"github.com/bufbuild/uastlint/seq"
	"github.com/bufbuild/uastlint/uast"
)

// TooManyParameters reports functions declaring more than Max parameters.
type TooManyParameters struct {
	Max int `yaml:"max"`
}

// NewTooManyParameters returns the check with default options.
func NewTooManyParameters() *TooManyParameters {
	return &TooManyParameters{Max: 7}
}

// Name implements [Check].
func (*TooManyParameters) Name() string {
	return "too-many-parameters"
}

// Description implements [Check].
func (*TooManyParameters) Description() string {
	return "Functions should not have too many parameters"
}

// Configure implements [Configurable].
func (c *TooManyParameters) Configure(value *yaml.Node) error {
	opts := *c
	if err := decodeOptions(value, &opts); err != nil {
		return err
	}
	if opts.Max < 0 {
		return errors.New("max must not be negative")
	}
	*c = opts
	return nil
}

// Check implements [Check].
func (c *TooManyParameters) Check(unit *uast.Node) []Issue {
	var issues []Issue
	unit.Walk(func(p uast.Path) bool {
		fn := p.Node()
		if fn.IsNot(uast.Function, uast.FunctionLiteral) {
			return true
		}
		if count := parameters(fn); count > c.Max {
			issues = append(issues, Issue{
				Rule:    c.Name(),
				Message: fmt.Sprintf("This function has %d parameters, which is greater than the %d authorized.", count, c.Max),
				Primary: name(fn),
			})
		}
		return true
	})
	return issues
}

// parameters counts the parameters declared by fn. A parameter node may
// declare several names, as in (a, b int), or none, as in (int).
func parameters(fn *uast.Node) int {
	var count int
	for child := range seq.Values(fn.Children()) {
		if child.Is(uast.Block) {
			continue
		}
		child.Descendants(uast.Parameter, func(param *uast.Node) {
			names := 0
			for n := range seq.Values(param.Children()) {
				if n.Is(uast.Identifier) && n.IsNot(uast.Type) {
					names++
				}
			}
			count += max(names, 1)
		}, uast.Block, uast.Function, uast.FunctionLiteral)
	}
	return count
}
