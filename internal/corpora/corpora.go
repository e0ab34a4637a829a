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

// Package corpora runs table-driven tests whose table lives in a testdata
// directory: one input file per case, with expected outputs stored next to
// it.
package corpora

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// RefreshEnv is the environment variable that, when set to a glob, rewrites
// the expected outputs of every matching case instead of comparing them.
//
//	UASTLINT_REFRESH='**' go test ./...
const RefreshEnv = "UASTLINT_REFRESH"

// Corpus describes a test data corpus.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// A doublestar glob, relative to Root, selecting the input files, e.g.
	// "**/*.go".
	Pattern string

	// The outputs of each case. An output file that does not exist is
	// expected to be empty.
	Outputs []Output

	// Test executes one case. It returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected output of each case, stored in a file named after
// the input with Extension appended: for "a.go" and "tree", "a.go.tree".
type Output struct {
	Extension string

	// May be nil, in which case outputs are compared byte-for-byte.
	Compare Compare
}

// Compare compares an output with its expected value. It returns the empty
// string if they match and a description of the mismatch otherwise.
type Compare func(got, want string) string

// Run executes every case of the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	root := filepath.Join(callerDir(0), c.Root)
	cases, err := doublestar.Glob(os.DirFS(root), c.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		t.Fatalf("corpora: listing %q in %q: %v", c.Pattern, root, err)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no files match %q in %q", c.Pattern, root)
	}

	refresh := os.Getenv(RefreshEnv)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", RefreshEnv, refresh)
		}
		t.Logf("corpora: refreshing test data because %s=%s", RefreshEnv, refresh)
	}

	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(root, filepath.FromSlash(name))
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: loading input %q: %v", path, err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d results for %d outputs", len(results), len(c.Outputs))
			}

			if refresh != "" && doublestar.MatchUnvalidated(refresh, name) {
				for i, output := range c.Outputs {
					output.write(t, path, results[i])
				}
				// A refresh never passes, so it cannot be left on by
				// accident.
				t.Fail()
				return
			}
			for i, output := range c.Outputs {
				output.check(t, path, results[i])
			}
		})
	}
}

func (o Output) file(input string) string {
	return input + "." + o.Extension
}

func (o Output) check(t *testing.T, input, got string) {
	t.Helper()

	path := o.file(input)
	want, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Errorf("corpora: loading output %q: %v", path, err)
		return
	}

	compare := o.Compare
	if compare == nil {
		compare = Diff
	}
	if msg := compare(got, string(want)); msg != "" {
		t.Errorf("output mismatch for %q:\n%s", path, msg)
	}
}

func (o Output) write(t *testing.T, input, got string) {
	t.Helper()

	path := o.file(input)
	if got == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: deleting output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
		t.Errorf("corpora: writing output %q: %v", path, err)
	}
}

// Diff is the default [Compare]: a colorized unified diff of want and got.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
