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
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/uastlint/uast"
)

// NoHardcodedCredentials reports string literals assigned to variables whose
// name suggests a credential, such as dbPassword = "hunter2".
type NoHardcodedCredentials struct {
	// Matched case-insensitively against target names.
	Words []string `yaml:"words"`
}

// NewNoHardcodedCredentials returns the check with default options.
func NewNoHardcodedCredentials() *NoHardcodedCredentials {
	return &NoHardcodedCredentials{Words: []string{"password", "passwd", "pwd"}}
}

// Name implements [Check].
func (*NoHardcodedCredentials) Name() string {
	return "no-hardcoded-credentials"
}

// Description implements [Check].
func (*NoHardcodedCredentials) Description() string {
	return "Credentials should not be hard-coded"
}

// Configure implements [Configurable].
func (c *NoHardcodedCredentials) Configure(value *yaml.Node) error {
	var opts NoHardcodedCredentials
	if err := decodeOptions(value, &opts); err != nil {
		return err
	}
	if opts.Words == nil {
		return nil
	}
	words := make([]string, 0, len(opts.Words))
	for _, word := range opts.Words {
		if word = strings.TrimSpace(word); word == "" {
			return errors.New("words must not be empty")
		}
		words = append(words, strings.ToLower(word))
	}
	c.Words = words
	return nil
}

// Check implements [Check].
func (c *NoHardcodedCredentials) Check(unit *uast.Node) []Issue {
	var issues []Issue
	unit.Descendants(uast.Assignment, func(n *uast.Node) {
		targets, values, ok := pairs(n)
		if !ok {
			return
		}
		for i, target := range targets {
			if !target.Is(uast.Identifier) || !isNonEmptyString(values[i]) {
				continue
			}
			word, ok := c.match(tokenValue(target))
			if !ok {
				continue
			}
			issues = append(issues, Issue{
				Rule:    c.Name(),
				Message: fmt.Sprintf("%q detected in this expression, review this potentially hard-coded credential.", word),
				Primary: values[i],
			})
		}
	})
	return issues
}

func (c *NoHardcodedCredentials) match(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, word := range c.Words {
		if strings.Contains(name, word) {
			return word, true
		}
	}
	return "", false
}

// isNonEmptyString returns whether n is a string literal with at least one
// character between its delimiters.
func isNonEmptyString(n *uast.Node) bool {
	tok, ok := n.Token()
	return ok && n.Is(uast.StringLiteral) && len(tok.Value) > 2
}
