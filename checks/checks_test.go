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

package checks_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/uastlint/checks"
	"github.com/bufbuild/uastlint/uast"
	"github.com/bufbuild/uastlint/uast/goparser"
	"github.com/bufbuild/uastlint/uast/index"
)

// TestNoncompliant runs each check over testdata/<name>.go. Every line
// carrying a "Noncompliant" comment must be reported exactly once, and no
// other line may be.
func TestNoncompliant(t *testing.T) {
	t.Parallel()

	for _, check := range checks.All() {
		t.Run(check.Name(), func(t *testing.T) {
			t.Parallel()

			unit := parse(t, filepath.Join("testdata", check.Name()+".go"))
			var want []int
			for comment := range index.New(unit).Comments() {
				if strings.Contains(comment.Value, "Noncompliant") {
					want = append(want, comment.Line)
				}
			}
			require.NotEmpty(t, want)

			issues := check.Check(unit)
			var got []int
			for _, issue := range issues {
				assert.Equal(t, check.Name(), issue.Rule)
				assert.NotEmpty(t, issue.Message)
				first, ok := issue.Primary.FirstToken()
				require.True(t, ok)
				got = append(got, first.Line)
			}
			slices.Sort(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	var names []string
	for _, check := range checks.All() {
		names = append(names, check.Name())
		assert.NotEmpty(t, check.Description())
	}
	assert.Equal(t, []string{
		"binary-operator-identical-expressions",
		"no-identical-functions",
		"no-hardcoded-credentials",
		"no-self-assignment",
		"too-many-parameters",
	}, names)

	check, ok := checks.Lookup("no-self-assignment")
	require.True(t, ok)
	assert.IsType(t, &checks.NoSelfAssignment{}, check)
	_, ok = checks.Lookup("no-such-rule")
	assert.False(t, ok)
}

func TestLookupReturnsFreshInstances(t *testing.T) {
	t.Parallel()

	a, _ := checks.Lookup("too-many-parameters")
	configure(t, a, "max: 2")
	b, _ := checks.Lookup("too-many-parameters")
	assert.Equal(t, 2, a.(*checks.TooManyParameters).Max)
	assert.Equal(t, 7, b.(*checks.TooManyParameters).Max)
}

func TestConfigure(t *testing.T) {
	t.Parallel()

	unit := parse(t, filepath.Join("testdata", "too-many-parameters.go"))

	params := checks.NewTooManyParameters()
	configure(t, params, "{max: 3}")
	assert.Equal(t, 3, params.Max)
	// few has exactly three; everything else has more.
	assert.Len(t, params.Check(unit), 5)

	creds := checks.NewNoHardcodedCredentials()
	configure(t, creds, "words: [Token]")
	assert.Equal(t, []string{"token"}, creds.Words)
	issues := creds.Check(parse(t, filepath.Join("testdata", "no-hardcoded-credentials.go")))
	require.Len(t, issues, 1)
	assert.Equal(t, `"not a credential"`, issues[0].Primary.JoinTokens())

	creds = checks.NewNoHardcodedCredentials()
	configure(t, creds, "{}")
	assert.Equal(t, []string{"password", "passwd", "pwd"}, creds.Words, "an absent option keeps its default")

	identical := checks.NewNoIdenticalFunctions()
	configure(t, identical, "min-lines: 1")
	issues = identical.Check(parse(t, filepath.Join("testdata", "no-identical-functions.go")))
	assert.Len(t, issues, 3, "short functions now count")
}

func TestConfigureErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		check checks.Configurable
		yaml  string
	}{
		{checks.NewTooManyParameters(), "max: -1"},
		{checks.NewTooManyParameters(), "max: many"},
		{checks.NewNoIdenticalFunctions(), "min-lines: 0"},
		{checks.NewNoHardcodedCredentials(), "words: ['', pwd]"},
		{checks.NewNoHardcodedCredentials(), "words: pwd"},
		{checks.NewNoHardcodedCredentials(), "word: [pwd]"},
		{checks.NewTooManyParameters(), "mx: 3"},
		{checks.NewTooManyParameters(), "[max, 3]"},
		{checks.NewNoIdenticalFunctions(), "minlines: 2"},
	}
	for _, test := range tests {
		var doc yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte(test.yaml), &doc))
		assert.Error(t, test.check.Configure(&doc), "%s: %s", test.check.Name(), test.yaml)
	}

	// A failed Configure leaves the previous options in place.
	params := checks.NewTooManyParameters()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("max: -1"), &doc))
	require.Error(t, params.Configure(&doc))
	assert.Equal(t, 7, params.Max)

	doc = yaml.Node{}
	require.NoError(t, yaml.Unmarshal([]byte("max: 2\nmx: 3"), &doc))
	err := params.Configure(&doc)
	require.ErrorContains(t, err, `line 2: unknown option "mx"; expected "max"`)
	assert.Equal(t, 7, params.Max)
}

func TestSecondaryLocations(t *testing.T) {
	t.Parallel()

	unit := parse(t, filepath.Join("testdata", "no-identical-functions.go"))
	issues := checks.NewNoIdenticalFunctions().Check(unit)
	require.Len(t, issues, 2)
	assert.Equal(t, "second", issues[0].Primary.JoinTokens())
	require.Len(t, issues[0].Secondary, 1)
	assert.Equal(t, "first", issues[0].Secondary[0].Node.JoinTokens())
	assert.Contains(t, issues[0].Message, "line 5")
}

func TestConcurrentChecks(t *testing.T) {
	t.Parallel()

	unit := parse(t, filepath.Join("testdata", "binary-operator-identical-expressions.go"))
	check := new(checks.BinaryOperatorIdenticalExpressions)
	want := len(check.Check(unit))

	var group errgroup.Group
	for range 8 {
		group.Go(func() error {
			assert.Len(t, check.Check(unit), want)
			return nil
		})
	}
	require.NoError(t, group.Wait())
}

func parse(t *testing.T, path string) *uast.Node {
	t.Helper()
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	unit, err := goparser.Parse(path, src)
	require.NoError(t, err)
	return unit
}

func configure(t *testing.T, check checks.Check, text string) {
	t.Helper()
	configurable, ok := check.(checks.Configurable)
	require.True(t, ok, "%s is not configurable", check.Name())
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	require.NoError(t, configurable.Configure(&doc))
}
