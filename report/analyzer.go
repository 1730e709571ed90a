// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/navgraph/builder"
	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/search"
)

// LargeGraphAlgorithms are the algorithms CompareLarge runs.
var LargeGraphAlgorithms = []search.Algorithm{search.BreadthFirst, search.Dijkstra, search.AStar}

// Analyzer collects Metrics rows. It is safe for concurrent use.
type Analyzer struct {
	mu      sync.Mutex
	results []Metrics
	search  []search.Option
	now     func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSearchOptions passes opts to every Searcher the Analyzer creates.
// Observers given here are shared by the RunSuite workers and must be safe
// for concurrent use.
func WithSearchOptions(opts ...search.Option) Option {
	return func(a *Analyzer) { a.search = append(a.search, opts...) }
}

// WithClock replaces time.Now for construction timing. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("report: WithClock(nil)")
	}

	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer returns an empty Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// MeasureConstruction builds a kind graph of about n nodes and times it.
// The row is returned, not recorded.
func (a *Analyzer) MeasureConstruction(kind builder.Kind, n int, opts ...builder.BuilderOption) (Metrics, *graph.Graph, error) {
	con, err := kind.Sized(n)
	if err != nil {
		return Metrics{}, nil, err
	}

	began := a.now()
	g, err := builder.BuildGraph(opts, con)
	elapsed := a.now().Sub(began)
	if err != nil {
		return Metrics{}, nil, fmt.Errorf("report: build %s: %w", kind, err)
	}

	return Metrics{
		Algorithm:        fmt.Sprintf("Construction (%s)", kind),
		GraphSize:        g.NodeCount(),
		ConstructionTime: elapsed,
		MemoryBytes:      EstimateMemory(g),
	}, g, nil
}

// MeasureSearch runs one search and returns its row without recording it.
func (a *Analyzer) MeasureSearch(g *graph.Graph, alg search.Algorithm, start, goal int) (Metrics, error) {
	return measure(search.New(g, a.search...), alg, start, goal)
}

func measure(s *search.Searcher, alg search.Algorithm, start, goal int) (Metrics, error) {
	res, err := s.Run(alg, start, goal)
	if err != nil {
		return Metrics{}, err
	}

	return fromResult(s.Graph(), alg, start, goal, res), nil
}

// RunSuite runs every algorithm on every pair using up to workers
// goroutines, each with its own Searcher. Rows are recorded and returned in
// pair order, algorithms in search.Algorithms() order within a pair. When
// ctx is cancelled the remaining pairs are skipped and nothing is recorded.
func (a *Analyzer) RunSuite(ctx context.Context, g *graph.Graph, pairs []Pair, workers int) ([]Metrics, error) {
	algs := search.Algorithms()
	rows := make([]Metrics, len(pairs)*len(algs))
	workers = max(1, min(workers, len(pairs)))

	next := make(chan int)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(next)
		for i := range pairs {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		s := search.New(g, a.search...)
		eg.Go(func() error {
			for i := range next {
				p := pairs[i]
				for j, alg := range algs {
					m, err := measure(s, alg, p.Start, p.Goal)
					if err != nil {
						return err
					}
					rows[i*len(algs)+j] = m
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("report: suite: %w", err)
	}

	a.record(rows...)

	return rows, nil
}

// CompareLarge runs LargeGraphAlgorithms on one pair and records the rows.
func (a *Analyzer) CompareLarge(g *graph.Graph, start, goal int) []Metrics {
	s := search.New(g, a.search...)
	rows := make([]Metrics, 0, len(LargeGraphAlgorithms))
	for _, alg := range LargeGraphAlgorithms {
		m, _ := measure(s, alg, start, goal)
		rows = append(rows, m)
	}
	a.record(rows...)

	return rows
}

// Add records rows produced elsewhere, e.g. by MeasureConstruction.
func (a *Analyzer) Add(rows ...Metrics) { a.record(rows...) }

func (a *Analyzer) record(rows ...Metrics) {
	a.mu.Lock()
	a.results = append(a.results, rows...)
	a.mu.Unlock()
}

// Results returns a copy of the recorded rows in recording order.
func (a *Analyzer) Results() []Metrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]Metrics(nil), a.results...)
}

// Clear drops every recorded row.
func (a *Analyzer) Clear() {
	a.mu.Lock()
	a.results = nil
	a.mu.Unlock()
}

// Summary aggregates the rows of one algorithm.
type Summary struct {
	Algorithm   string
	Total       int
	Successful  int
	SuccessRate float64 // percent
	MeanTime    time.Duration
	MeanNodes   float64
}

// Summaries groups the recorded rows by algorithm, in order of first
// appearance.
func (a *Analyzer) Summaries() []Summary {
	return summarize(a.Results())
}

func summarize(rows []Metrics) []Summary {
	var out []Summary
	index := make(map[string]int)
	var nodes []int
	var times []time.Duration
	for _, m := range rows {
		i, ok := index[m.Algorithm]
		if !ok {
			i = len(out)
			index[m.Algorithm] = i
			out = append(out, Summary{Algorithm: m.Algorithm})
			nodes = append(nodes, 0)
			times = append(times, 0)
		}
		out[i].Total++
		if m.PathFound {
			out[i].Successful++
		}
		nodes[i] += m.NodesExplored
		times[i] += m.SearchTime
	}
	for i := range out {
		s := &out[i]
		s.SuccessRate = 100 * float64(s.Successful) / float64(s.Total)
		s.MeanTime = times[i] / time.Duration(s.Total)
		s.MeanNodes = float64(nodes[i]) / float64(s.Total)
	}

	return out
}
