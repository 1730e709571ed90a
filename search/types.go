// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an
// unrecognised algorithm.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Result is the outcome of one search.
//
// When PathFound is false, Path is empty and TotalDistance is 0;
// NodesExplored still counts what was visited before giving up.
type Result struct {
	// Path holds node ids from start to goal inclusive.
	Path []int

	// TotalDistance is the summed weight along Path.
	TotalDistance float64

	// NodesExplored counts nodes taken off the frontier and expanded.
	NodesExplored int

	// TimeTaken is the wall-clock duration of the algorithm body.
	TimeTaken time.Duration

	PathFound bool
}

// Algorithm names one of the five search strategies.
type Algorithm uint8

const (
	DepthFirst Algorithm = iota
	BreadthFirst
	Dijkstra
	BestFirst
	AStar
)

var algorithmNames = [...]string{
	DepthFirst:   "DFS",
	BreadthFirst: "BFS",
	Dijkstra:     "Dijkstra",
	BestFirst:    "Best-First",
	AStar:        "A*",
}

// String returns the display name.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// MarshalText encodes the display name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText accepts anything ParseAlgorithm accepts.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Algorithms returns every algorithm in comparison order.
func Algorithms() []Algorithm {
	return []Algorithm{DepthFirst, BreadthFirst, Dijkstra, BestFirst, AStar}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
//
//	dfs, depth-first            DepthFirst
//	bfs, breadth-first          BreadthFirst
//	dijkstra                    Dijkstra
//	best-first, bestfirst,
//	greedy                      BestFirst
//	astar, a*, a-star           AStar
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "dijkstra":
		return Dijkstra, nil
	case "best-first", "bestfirst", "greedy":
		return BestFirst, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Observer receives every Result a Searcher produces.
type Observer interface {
	ObserveSearch(alg Algorithm, res Result)
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithObserver reports every finished search to o. Panics if o is nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("search: WithObserver(nil)")
	}

	return func(s *Searcher) { s.observer = o }
}

// WithOnExplore calls fn with the id of every node as it is explored, in
// exploration order. Panics if fn is nil.
func WithOnExplore(fn func(id int)) Option {
	if fn == nil {
		panic("search: WithOnExplore(nil)")
	}

	return func(s *Searcher) { s.onExplore = fn }
}

// WithClock replaces time.Now for timing. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("search: WithClock(nil)")
	}

	return func(s *Searcher) { s.now = now }
}

// Entry is one row of a Comparison.
type Entry struct {
	Algorithm Algorithm
	Result    Result
}

// Comparison holds the results of every algorithm on the same pair.
type Comparison struct {
	Start   int
	Goal    int
	Entries []Entry
}

// Best returns the found entry with the smallest distance. Ties go to the
// entry that explored fewer nodes, then to the earlier entry. ok is false when
// no algorithm found a path.
func (c Comparison) Best() (best Entry, ok bool) {
	for _, e := range c.Entries {
		if !e.Result.PathFound {
			continue
		}
		if !ok ||
			e.Result.TotalDistance < best.Result.TotalDistance ||
			(e.Result.TotalDistance == best.Result.TotalDistance && e.Result.NodesExplored < best.Result.NodesExplored) {
			best, ok = e, true
		}
	}

	return best, ok
}
