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

// enum is a helper for generating boilerplate related to Go enums.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/uastlint/internal/enum kind.yaml
//
// The argument names a .yaml file which must contain an array of the Enum
// type defined in this package. The output is gofmt-formatted and written
// next to it, with the .yaml suffix replaced by _enum.go.
//
//nolint:revive // We use _ in field names to disambiguate them from methods, while still exporting them.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // The name of a "total values" constant.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

type Value struct {
	Name    string `yaml:"name"`   // The name of the value.
	String_ string `yaml:"string"` // The string representation of this value.
	Docs    string `yaml:"docs"`   // Documentation for the value.

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

// HasSuffixDocs returns whether this value's docs fit on the same line as
// the value.
func (v Value) HasSuffixDocs() bool {
	return v.Docs != "" && !strings.Contains(v.Docs, "\n")
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

type Method struct {
	Kind  MethodKind `yaml:"kind"` // The kind of method to generate.
	Name_ string     `yaml:"name"` // The method's name; optional for some methods.
	Docs_ string     `yaml:"docs"` // Documentation for the method.
	Skip  []string   `yaml:"skip"` // Enum values to ignore in this method.
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for kind: %#v", MethodFromString)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	default:
		return ""
	}
}

type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts a data into doc comments.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// Main generates the file for the given .yaml config. The package name comes
// from $GOPACKAGE, as set by go generate.
func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}
	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	out, err := generate(os.Getenv("GOPACKAGE"), filepath.Base(config), text)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+"_enum.go", out, 0o644)
}

// generate renders the enums described by text, the contents of the file
// named config, into formatted Go source for package pkg.
func generate(pkg, config string, text []byte) ([]byte, error) {
	var input struct {
		Package, Config string
		YAML            []Enum
	}
	input.Package = pkg
	input.Config = config
	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return nil, err
	}
	for i := range input.YAML {
		if err := input.YAML[i].validate(); err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "enum.go.tmpl", input); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return out, nil
}

// validate reports the mistakes that would otherwise surface as confusing
// compile errors in the generated file.
func (e *Enum) validate() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum is missing a name or type")
	}
	names := make(map[string]bool)
	strs := make(map[string]bool)
	for _, v := range e.Values() {
		switch {
		case v.Name == "":
			return fmt.Errorf("%s: value %d has no name", e.Name, v.Idx)
		case names[v.Name]:
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		case strs[v.String()]:
			return fmt.Errorf("%s: duplicate string %q for %s", e.Name, v.String(), v.Name)
		}
		names[v.Name] = true
		strs[v.String()] = true
	}
	for _, m := range e.Methods {
		if _, err := m.Name(); err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}
		for _, skip := range m.Skip {
			if !names[skip] {
				return fmt.Errorf("%s: %s skips unknown value %s", e.Name, m.Kind, skip)
			}
		}
	}
	return nil
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
