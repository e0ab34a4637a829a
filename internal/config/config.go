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

// Package config loads the .uastlint.yaml configuration file used by the
// command line tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/uastlint/checks"
	"github.com/bufbuild/uastlint/internal/oxford"
)

// FileName is the name of the configuration file looked up by default.
const FileName = ".uastlint.yaml"

// ErrInvalidPattern is returned (wrapped) for an include or exclude pattern
// that is not a valid glob.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// Config is the contents of a configuration file.
type Config struct {
	// The maximum number of files analyzed at once. Zero picks a default.
	Parallelism int `yaml:"parallelism"`

	// Globs, relative to the directory being checked, selecting the files to
	// analyze. A file is analyzed if it matches some include pattern and no
	// exclude pattern.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Per-rule settings, keyed by rule name. Rules not listed are enabled with
	// their default options.
	Rules map[string]Rule `yaml:"rules"`
}

// Rule is the configuration of a single rule.
type Rule struct {
	// Nil means enabled.
	Enabled *bool

	// The whole mapping the rule was configured with, passed on to
	// [checks.Configurable.Configure].
	Options yaml.Node
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rule settings must be a mapping", value.Line)
	}
	var head struct {
		Enabled *bool `yaml:"enabled"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}
	r.Enabled = head.Enabled
	r.Options = *value
	return nil
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		Include: []string{"**/*.go"},
		Exclude: []string{"**/testdata/**", "vendor/**"},
	}
}

// Load reads and validates a configuration file. Settings the file does not
// mention keep their value from [Default].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse is like [Load], but takes the contents of the file.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the patterns, the rule names and the rule options.
func (c *Config) Validate() error {
	if c.Parallelism < 0 {
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	for _, pattern := range slices.Concat(c.Include, c.Exclude) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}
	_, err := c.Checks()
	return err
}

// Checks returns the enabled checks, configured with the file's options, in
// the order of [checks.All].
func (c *Config) Checks() ([]checks.Check, error) {
	for name := range c.Rules {
		if _, ok := checks.Lookup(name); !ok {
			var known []string
			for _, check := range checks.All() {
				known = append(known, check.Name())
			}
			return nil, fmt.Errorf("unknown rule %q; expected %q", name, oxford.Or(known...))
		}
	}

	var out []checks.Check
	for _, check := range checks.All() {
		rule, ok := c.Rules[check.Name()]
		if !ok {
			out = append(out, check)
			continue
		}
		if rule.Enabled != nil && !*rule.Enabled {
			continue
		}
		if err := configure(check, &rule.Options); err != nil {
			return nil, fmt.Errorf("rule %q: %w", check.Name(), err)
		}
		out = append(out, check)
	}
	return out, nil
}

func configure(check checks.Check, options *yaml.Node) error {
	// Everything but "enabled" belongs to the check.
	opts := *options
	opts.Content = nil
	// Mapping nodes alternate keys and values.
	for i := 0; i+1 < len(options.Content); i += 2 {
		if options.Content[i].Value != "enabled" {
			opts.Content = append(opts.Content, options.Content[i], options.Content[i+1])
		}
	}

	if configurable, ok := check.(checks.Configurable); ok {
		return configurable.Configure(&opts)
	}
	if len(opts.Content) > 0 {
		return fmt.Errorf("line %d: unknown option %q", opts.Content[0].Line, opts.Content[0].Value)
	}
	return nil
}

// Match returns whether a slash-separated path, relative to the directory
// being checked, selects a file for analysis.
func (c *Config) Match(name string) bool {
	matches := func(patterns []string) bool {
		return slices.ContainsFunc(patterns, func(pattern string) bool {
			return doublestar.MatchUnvalidated(pattern, name)
		})
	}
	return matches(c.Include) && !matches(c.Exclude)
}

// Expand lists the files under root that [Config.Match] selects, as
// slash-separated paths relative to root, in lexical order.
func (c *Config) Expand(root fs.FS) ([]string, error) {
	var out []string
	err := fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir():
			if name != "." && c.excludesDir(name) {
				return fs.SkipDir
			}
			return nil
		case c.Match(name):
			out = append(out, name)
		}
		return nil
	})
	return out, err
}

// excludesDir returns whether an exclude pattern of the form "dir/**" covers
// everything under dir.
func (c *Config) excludesDir(dir string) bool {
	return slices.ContainsFunc(c.Exclude, func(pattern string) bool {
		prefix, ok := strings.CutSuffix(pattern, "/**")
		return ok && doublestar.MatchUnvalidated(prefix, dir)
	})
}
