package engine

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/textsearch/core"
	"github.com/poiesic/textsearch/query"
)

// Engine runs compiled queries over file sets using a bounded worker pool.
type Engine struct {
	pool    *ants.Pool
	logger  *slog.Logger
	monitor Monitor
}

// Option configures an Engine.
type Option func(*Engine) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}

		if e.pool != nil {
			e.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMonitor sets a monitor receiving per-file callbacks during search.
// Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// NewEngine creates a search engine with its worker pool.
// Call Release when done with the engine.
func NewEngine(opts ...Option) (*Engine, error) {
	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pool:    pool,
		logger:  slog.Default(),
		monitor: &noopMonitor{},
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.Release()
			return nil, err
		}
	}

	return e, nil
}

// Release frees the worker pool.
// The engine should not be used after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Search evaluates the compiled query against every target file.
//
// Each file is read fully into memory and evaluated by one worker; a read
// or decode failure is recorded as a failed outcome for that file only.
// Duplicate paths are evaluated once. Cancellation is cooperative: workers
// check ctx between files, never mid-match, and on cancellation the
// partial result is returned together with ctx.Err().
func (e *Engine) Search(ctx context.Context, q *query.Compiled, targets []core.FileTarget) (*core.SearchResult, error) {
	return e.search(ctx, q, targets, nil)
}

// SearchWithContext behaves like Search and additionally attaches to each
// match a snippet of the document: before bytes ahead of the first
// primary-literal occurrence and after bytes past it, snapped to rune
// boundaries.
func (e *Engine) SearchWithContext(ctx context.Context, q *query.Compiled, targets []core.FileTarget, before, after int) (*core.SearchResult, error) {
	return e.search(ctx, q, targets, &window{before: before, after: after})
}

// window is the snippet size around the primary match, in bytes.
type window struct {
	before, after int
}

func (e *Engine) search(ctx context.Context, q *query.Compiled, targets []core.FileTarget, win *window) (*core.SearchResult, error) {
	if q == nil {
		return nil, ErrQueryRequired
	}

	targets = dedupe(targets)
	e.monitor.Start(len(targets))

	outcomes := make(chan core.SearchOutcome, len(targets))
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			outcomes <- e.evaluate(ctx, q, target, win)
		})
		if err != nil {
			wg.Done()
			outcomes <- core.SearchOutcome{Target: target, Status: core.StatusFailed, Err: err}
		}
	}

	// Single collector drains the channel; workers never share result state.
	result := &core.SearchResult{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for outcome := range outcomes {
			switch outcome.Status {
			case core.StatusMatched:
				result.Matched = append(result.Matched, core.FileMatch{
					Target:  outcome.Target,
					Context: outcome.Context,
				})
				e.monitor.FileMatched(outcome.Target)
			case core.StatusNotMatched:
				e.monitor.FileNotMatched(outcome.Target)
			case core.StatusFailed:
				result.Failed = append(result.Failed, core.FileFailure{
					Target: outcome.Target,
					Reason: outcome.Err,
				})
				e.logger.Warn("file search failed", "path", string(outcome.Target), "err", outcome.Err)
				e.monitor.FileFailed(outcome.Target, outcome.Err)
			}
		}
	}()

	wg.Wait()
	close(outcomes)
	<-done

	e.monitor.Finish(result)
	return result, ctx.Err()
}

// evaluate processes a single file. It never panics the batch: every
// failure becomes a StatusFailed outcome.
func (e *Engine) evaluate(ctx context.Context, q *query.Compiled, target core.FileTarget, win *window) core.SearchOutcome {
	if err := ctx.Err(); err != nil {
		return core.SearchOutcome{Target: target, Status: core.StatusFailed, Err: err}
	}

	data, err := os.ReadFile(string(target))
	if err != nil {
		return core.SearchOutcome{Target: target, Status: core.StatusFailed, Err: err}
	}
	if !utf8.Valid(data) {
		return core.SearchOutcome{Target: target, Status: core.StatusFailed, Err: ErrNotText}
	}

	text := string(data)
	if !q.MatchText(text) {
		return core.SearchOutcome{Target: target, Status: core.StatusNotMatched}
	}

	outcome := core.SearchOutcome{Target: target, Status: core.StatusMatched}
	if win != nil {
		if start, end, ok := q.FindPrimary(text); ok {
			outcome.Context = snippet(text, start, end, win.before, win.after)
		}
	}
	return outcome
}

// dedupe drops repeated paths, keeping the first occurrence of each.
func dedupe(targets []core.FileTarget) []core.FileTarget {
	seen := make(map[core.ID]bool, len(targets))
	unique := make([]core.FileTarget, 0, len(targets))
	for _, target := range targets {
		id := target.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, target)
	}
	return unique
}
