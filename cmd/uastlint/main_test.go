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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/uastlint/internal/config"
)

// run executes the command line in args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cmdRoot()
	cmd.SetArgs(append(args, "--quiet"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

// workspace writes files into a new directory, along with an empty
// configuration file, and returns the directory and the configuration path.
func workspace(t *testing.T, files map[string]string) (dir, cfg string) {
	t.Helper()
	dir = t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
	cfg = filepath.Join(dir, config.FileName)
	if _, ok := files[config.FileName]; !ok {
		require.NoError(t, os.WriteFile(cfg, nil, 0o600))
	}
	return dir, cfg
}

const selfAssign = `package p

func f(a int) {
	a = a
}
`

func TestCheck(t *testing.T) {
	t.Parallel()

	dir, cfg := workspace(t, map[string]string{
		"p/a.go":          selfAssign,
		"p/testdata/b.go": selfAssign,
		"p/notes.txt":     "a = a",
	})
	out, err := run(t, "check", "--compact", "--config", cfg, dir)
	require.ErrorIs(t, err, errFindings)

	want := filepath.Join(dir, "p", "a.go") + ":4:2: error: Remove or correct this useless self-assignment. [no-self-assignment]\n"
	assert.Equal(t, want, out)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	dir, cfg := workspace(t, map[string]string{
		"a.go": "package p\n\nfunc f(a int) int { return a }\n",
	})
	out, err := run(t, "check", "--config", cfg, dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "error:")
}

func TestCheckConfigDisablesRule(t *testing.T) {
	t.Parallel()

	dir, cfg := workspace(t, map[string]string{
		"a.go":          selfAssign,
		config.FileName: "rules: {no-self-assignment: {enabled: false}}\n",
	})
	_, err := run(t, "check", "--config", cfg, filepath.Join(dir, "a.go"))
	assert.NoError(t, err)
}

func TestCheckSyntaxError(t *testing.T) {
	t.Parallel()

	dir, cfg := workspace(t, map[string]string{
		"bad.go": "package p\n\nfunc {\n",
		"ok.go":  selfAssign,
	})
	out, err := run(t, "check", "--compact", "--config", cfg, dir)
	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, out, filepath.Join(dir, "bad.go")+":3:")
	assert.Contains(t, out, "[no-self-assignment]", "other files are still checked")
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	dir, cfg := workspace(t, map[string]string{
		config.FileName: "rules: {no-such-rule: {}}\n",
	})
	_, err := run(t, "check", "--config", cfg, dir)
	assert.ErrorContains(t, err, "no-such-rule")

	_, err = run(t, "check", "--config", filepath.Join(dir, "missing.yaml"), dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInspect(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	dir, _ := workspace(t, map[string]string{"a.go": selfAssign})
	file := filepath.Join(dir, "a.go")

	out, err := run(t, "join", file)
	require.NoError(t, err)
	assert.Equal("package p\n\nfunc f(a int) {\n a = a\n}\n", out, "the file, with its tab as a space")

	out, err = run(t, "dump", file)
	require.NoError(t, err)
	assert.Contains(out, "[COMPILATION_UNIT] *ast.File\n")
	assert.Contains(out, `[EOF] token.EOF 6:1-6:0 ""`)

	out, err = run(t, "at", file, "4", "6")
	require.NoError(t, err)
	assert.Contains(out, "[ASSIGNMENT STATEMENT] *ast.AssignStmt\n")
	assert.Contains(out, `a`)

	_, err = run(t, "at", file, "9", "1")
	assert.ErrorContains(err, "no token at this position")
	_, err = run(t, "at", file, "x", "1")
	assert.Error(err)
	_, err = run(t, "dump", filepath.Join(dir, "a.py"))
	assert.Error(err)
}

func TestRules(t *testing.T) {
	t.Parallel()

	out, err := run(t, "rules")
	require.NoError(t, err)
	for _, name := range []string{
		"binary-operator-identical-expressions",
		"no-hardcoded-credentials",
		"no-identical-functions",
		"no-self-assignment",
		"too-many-parameters",
	} {
		assert.Contains(t, out, name)
	}
}
