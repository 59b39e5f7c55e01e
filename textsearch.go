// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package textsearch searches batches of text files against boolean
// keyword queries that tolerate the irregular whitespace left behind by
// text extraction tools.
package textsearch

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"github.com/poiesic/textsearch/core"
	"github.com/poiesic/textsearch/engine"
	"github.com/poiesic/textsearch/pattern"
	"github.com/poiesic/textsearch/query"
)

// NewQueryGroup constructs a validated query spec from a primary literal
// and an AND-of-ORs collection: the document must contain the primary and,
// for each group, at least one of its members.
func NewQueryGroup(primary string, orGroups [][]string) (core.QuerySpec, error) {
	spec := core.QuerySpec{
		Primary: core.Literal(primary),
		Groups: lo.Map(orGroups, func(group []string, _ int) core.OrGroup {
			return lo.Map(group, func(literal string, _ int) core.Literal {
				return core.Literal(literal)
			})
		}),
	}
	if err := core.ValidateQuerySpec(spec); err != nil {
		return core.QuerySpec{}, err
	}
	return spec, nil
}

// FilePaths wraps a list of file-system paths as search targets.
// Existence is not checked here; a missing file surfaces as a per-file
// failure at search time.
func FilePaths(paths ...string) []core.FileTarget {
	return lo.Map(paths, func(path string, _ int) core.FileTarget {
		return core.FileTarget(path)
	})
}

// SearchOption configures a SearchText call.
type SearchOption func(*searchOptions)

type searchOptions struct {
	poolSize      int
	ignoreCase    bool
	window        bool
	before, after int
	logger        *slog.Logger
	monitor       engine.Monitor
}

// WithPoolSize sets the worker pool size for the call.
// Default is the number of CPUs.
func WithPoolSize(size int) SearchOption {
	return func(o *searchOptions) {
		o.poolSize = size
	}
}

// WithCaseInsensitive makes every literal in the query match regardless of
// letter case. Default is case-sensitive matching.
func WithCaseInsensitive() SearchOption {
	return func(o *searchOptions) {
		o.ignoreCase = true
	}
}

// WithContextWindow attaches to each match a snippet spanning before bytes
// ahead of the first primary-literal occurrence and after bytes past it.
func WithContextWindow(before, after int) SearchOption {
	return func(o *searchOptions) {
		o.window = true
		o.before = before
		o.after = after
	}
}

// WithLogger sets a custom logger for the search engine.
func WithLogger(logger *slog.Logger) SearchOption {
	return func(o *searchOptions) {
		o.logger = logger
	}
}

// WithMonitor sets a monitor receiving per-file callbacks.
func WithMonitor(monitor engine.Monitor) SearchOption {
	return func(o *searchOptions) {
		o.monitor = monitor
	}
}

// SearchText compiles the query once and evaluates it against every
// target file in parallel. Query validation errors abort the call;
// per-file read failures are collected in the result instead.
func SearchText(ctx context.Context, spec core.QuerySpec, targets []core.FileTarget, opts ...SearchOption) (*core.SearchResult, error) {
	var o searchOptions
	for _, opt := range opts {
		opt(&o)
	}

	compiled, err := query.Compile(spec, patternOptions(&o)...)
	if err != nil {
		return nil, err
	}

	eng, err := engine.NewEngine(engineOptions(&o)...)
	if err != nil {
		return nil, err
	}
	defer eng.Release()

	if o.window {
		return eng.SearchWithContext(ctx, compiled, targets, o.before, o.after)
	}
	return eng.Search(ctx, compiled, targets)
}

// MatchString reports whether a single in-memory document satisfies the
// query, without touching the file system.
func MatchString(spec core.QuerySpec, contents string, opts ...SearchOption) (bool, error) {
	var o searchOptions
	for _, opt := range opts {
		opt(&o)
	}

	compiled, err := query.Compile(spec, patternOptions(&o)...)
	if err != nil {
		return false, err
	}
	return compiled.MatchText(contents), nil
}

func patternOptions(o *searchOptions) []pattern.Option {
	var opts []pattern.Option
	if o.ignoreCase {
		opts = append(opts, pattern.CaseInsensitive())
	}
	return opts
}

func engineOptions(o *searchOptions) []engine.Option {
	var opts []engine.Option
	if o.poolSize > 0 {
		opts = append(opts, engine.WithPoolSize(o.poolSize))
	}
	if o.logger != nil {
		opts = append(opts, engine.WithLogger(o.logger))
	}
	if o.monitor != nil {
		opts = append(opts, engine.WithMonitor(o.monitor))
	}
	return opts
}
