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

package uastlint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/uastlint/checks"
	"github.com/bufbuild/uastlint/internal/oxford"
	"github.com/bufbuild/uastlint/report"
	"github.com/bufbuild/uastlint/reporter"
	"github.com/bufbuild/uastlint/uast"
	"github.com/bufbuild/uastlint/uast/goparser"
	"github.com/bufbuild/uastlint/uast/index"
)

// ErrNoFrontend is returned (wrapped) by [Analyzer.Analyze] for a file whose
// extension no front-end handles.
var ErrNoFrontend = errors.New("no front-end for file")

// Frontend turns source code into a tree rooted at a [uast.CompilationUnit].
type Frontend interface {
	Parse(filename string, src []byte) (*uast.Node, error)
}

// FrontendFunc is a simple function type that implements [Frontend].
type FrontendFunc func(filename string, src []byte) (*uast.Node, error)

var _ Frontend = FrontendFunc(nil)

// Parse implements [Frontend].
func (f FrontendFunc) Parse(filename string, src []byte) (*uast.Node, error) {
	return f(filename, src)
}

// DefaultFrontends returns the front-ends used when [Analyzer.Frontends] is
// nil.
func DefaultFrontends() map[string]Frontend {
	return map[string]Frontend{
		".go": FrontendFunc(goparser.Parse),
	}
}

// Analyzer runs checks over source files.
type Analyzer struct {
	// Resolves paths into source code or trees. If nil, files are read from
	// the file system.
	Resolver Resolver
	// Front-ends by file extension, including the dot. If nil,
	// [DefaultFrontends] is used.
	Frontends map[string]Frontend
	// The checks to run. If nil, [checks.All] is used.
	Checks []checks.Check
	// The maximum parallelism to use when analyzing. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter for files that cannot be parsed. If
	// unspecified a default reporter is used. A default reporter fails the
	// analysis after encountering any errors and ignores all warnings.
	Reporter reporter.Reporter
	// Receives debug logs. If nil, nothing is logged.
	Logger *slog.Logger
}

// Analyze runs every check over the given files and returns the findings,
// sorted by file and position.
//
// If a file cannot be parsed, its errors are passed to the reporter. If the
// reporter returns an error, analysis stops and that error is returned. If it
// returns nil, the file is skipped, and the report comes back together with
// [reporter.ErrInvalidSource].
func (a *Analyzer) Analyze(ctx context.Context, paths ...string) (*report.Report, error) {
	rep := new(report.Report)
	if len(paths) == 0 {
		return rep, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := a.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := &executor{
		a:       a,
		h:       reporter.NewHandler(a.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		log:     a.logger(),
		checks:  a.Checks,
		results: make(map[string]*result),
	}
	if e.checks == nil {
		e.checks = checks.All()
	}
	e.log.Debug("analyzing", "files", len(paths), "parallelism", par, "checks", len(e.checks))

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.analyze(ctx, path)
	}

	merged := make(map[*result]bool, len(results))
	for _, r := range results {
		if merged[r] {
			continue
		}
		merged[r] = true
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		rep.Merge(r.rep)
	}
	rep.Sort()

	if err := e.h.Error(); err != nil {
		return rep, err
	}
	return rep, nil
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

type result struct {
	ready chan struct{}
	rep   *report.Report
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(rep *report.Report) {
	r.rep = rep
	close(r.ready)
}

type executor struct {
	a      *Analyzer
	h      *reporter.Handler
	s      *semaphore.Weighted
	log    *slog.Logger
	checks []checks.Check

	mu      sync.Mutex
	results map[string]*result
}

// analyze starts analyzing a file in the background. A file named twice is
// only analyzed once.
func (e *executor) analyze(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{ready: make(chan struct{})}
	e.results[path] = r
	go e.doAnalyze(ctx, path, r)
	return r
}

func (e *executor) doAnalyze(ctx context.Context, path string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	unit, src, err := e.load(path)
	if err != nil {
		r.fail(err)
		return
	}
	if unit == nil {
		// Parse errors were reported and the reporter chose to go on.
		r.complete(nil)
		return
	}
	r.complete(e.check(path, unit, src))
}

// load resolves and parses a file. It returns a nil tree if the file did not
// parse but analysis may continue.
func (e *executor) load(path string) (*uast.Node, []byte, error) {
	resolver := e.a.Resolver
	if resolver == nil {
		resolver = &SourceResolver{}
	}
	sr, err := resolver.FindFileByPath(path)
	if err != nil {
		return nil, nil, err
	}
	if c, ok := sr.Source.(io.Closer); ok {
		defer c.Close()
	}
	if sr.Tree != nil {
		e.log.Debug("using resolved tree", "file", path)
		return sr.Tree, nil, nil
	}
	if sr.Source == nil {
		return nil, nil, fmt.Errorf("%s: resolver returned neither source nor tree", path)
	}

	frontends := e.a.Frontends
	if frontends == nil {
		frontends = DefaultFrontends()
	}
	frontend, ok := frontends[filepath.Ext(path)]
	if !ok {
		exts := slices.Sorted(maps.Keys(frontends))
		return nil, nil, fmt.Errorf("%s: %w; supported extensions are %q", path, ErrNoFrontend, oxford.And(exts...))
	}

	src, err := io.ReadAll(sr.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	unit, err := frontend.Parse(path, src)
	if err == nil {
		e.log.Debug("parsed", "file", path, "bytes", len(src))
		return unit, src, nil
	}

	var syntaxErr *goparser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return nil, nil, e.h.HandleError(err)
	}
	e.log.Debug("syntax errors", "file", path, "count", len(syntaxErr.Errors))
	for _, ewp := range syntaxErr.Errors {
		if err := e.h.HandleError(ewp); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

// check runs every check over a unit and converts the issues that are not
// suppressed into diagnostics.
func (e *executor) check(path string, unit *uast.Node, src []byte) *report.Report {
	var text string
	if src != nil {
		text = string(src)
	} else {
		text = unit.JoinTokens()
	}
	lines := strings.Split(text, "\n")

	idx := index.New(unit)
	nolint := collectSuppressions(idx, func(tok uast.Token, err error) {
		e.h.HandleWarning(reporter.SourcePos{Filename: path, Line: tok.Line, Col: tok.Column}, err)
	})

	rep := new(report.Report)
	for _, check := range e.checks {
		issues := check.Check(unit)
		e.log.Debug("checked", "file", path, "rule", check.Name(), "issues", len(issues))
		for _, issue := range issues {
			first, ok := issue.Primary.FirstToken()
			if ok && nolint.suppressed(first.Line, issue.Rule) {
				e.log.Debug("suppressed", "file", path, "rule", issue.Rule, "line", first.Line)
				continue
			}

			d := rep.Errorf("%s", issue.Message).With(
				report.InFile(path),
				report.Tag(issue.Rule),
				report.Snippet(issue.Primary),
			)
			if ok && first.Line <= len(lines) {
				d.With(report.SourceLine(lines[first.Line-1]))
			}
			for _, secondary := range issue.Secondary {
				d.With(note(secondary))
			}
		}
	}
	return rep
}

func note(s checks.Secondary) report.DiagnosticOption {
	tok, ok := s.Node.FirstToken()
	if !ok {
		return nil
	}
	if s.Message == "" {
		return report.Note("see %d:%d", tok.Line, tok.Column)
	}
	return report.Note("%s at %d:%d", s.Message, tok.Line, tok.Column)
}
