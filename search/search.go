// SPDX-License-Identifier: MIT

//
// File: search.go
// Role: Searcher construction, dispatch and the bookkeeping every algorithm shares.
// Policy:
//   - Bookkeeping tables are indexed by graph position, never by raw id.
//   - parent holds a position or noParent.
//   - The clock is sampled after validation and table allocation, and again
//     once the path and its distance are known.

package search

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/navgraph/container"
	"github.com/katalvlaran/navgraph/graph"
)

const noParent = -1

// Searcher runs path searches over one graph. It holds no per-search state,
// so a Searcher may be reused sequentially; use one Searcher per goroutine
// when searching in parallel.
type Searcher struct {
	g         *graph.Graph
	observer  Observer
	onExplore func(id int)
	now       func() time.Time
}

// New returns a Searcher over g. The graph must not be mutated while a search
// is running.
func New(g *graph.Graph, opts ...Option) *Searcher {
	s := &Searcher{g: g, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph returns the graph the Searcher explores.
func (s *Searcher) Graph() *graph.Graph { return s.g }

// Run dispatches to the named algorithm.
func (s *Searcher) Run(alg Algorithm, start, goal int) (Result, error) {
	switch alg {
	case DepthFirst:
		return s.DepthFirst(start, goal), nil
	case BreadthFirst:
		return s.BreadthFirst(start, goal), nil
	case Dijkstra:
		return s.Dijkstra(start, goal), nil
	case BestFirst:
		return s.BestFirst(start, goal), nil
	case AStar:
		return s.AStar(start, goal), nil
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}
}

// Heuristic is the Euclidean distance between two nodes, or 0 if either is nil.
func Heuristic(a, b *graph.Node) float64 {
	if a == nil || b == nil {
		return 0
	}

	return a.Distance(b)
}

// walk is the per-call state shared by all algorithms.
type walk struct {
	s        *Searcher
	g        *graph.Graph
	start    int // position
	goal     int // position
	parent   *container.Array[int]
	explored int
	began    time.Time
}

// begin validates the endpoints. ok is false when either id is unknown; the
// caller must then return notFound.
func (s *Searcher) begin(start, goal int) (w *walk, ok bool) {
	if s.g == nil {
		return nil, false
	}
	sp, okStart := s.g.Position(start)
	gp, okGoal := s.g.Position(goal)
	if !okStart || !okGoal {
		return nil, false
	}

	return &walk{
		s:      s,
		g:      s.g,
		start:  sp,
		goal:   gp,
		parent: fill(s.g.NodeCount(), noParent),
	}, true
}

// fill returns an Array of n copies of v.
func fill[T any](n int, v T) *container.Array[T] {
	a := container.NewArray[T](n)
	for i := 0; i < n; i++ {
		a.PushBack(v)
	}

	return a
}

func (w *walk) startClock() { w.began = w.s.now() }

// explore counts pos as explored and notifies the hook.
func (w *walk) explore(pos int) {
	w.explored++
	if w.s.onExplore != nil {
		w.s.onExplore(w.g.NodeAt(pos).ID())
	}
}

// destination returns the position of e's destination. Edges are admitted
// only between stored nodes, so the lookup always succeeds.
func (w *walk) destination(e graph.Edge) int {
	pos, _ := w.g.Position(e.Destination)

	return pos
}

// path walks parent links back from the goal and returns node ids from start
// to goal.
func (w *walk) path() []int {
	var rev []int
	for cur := w.goal; cur != noParent; cur = w.parent.Get(cur) {
		rev = append(rev, cur)
		if cur == w.start {
			break
		}
	}
	out := make([]int, len(rev))
	for i, pos := range rev {
		out[len(rev)-1-i] = w.g.NodeAt(pos).ID()
	}

	return out
}

// summedDistance adds EdgeWeight along p. With parallel edges this is the
// first-match weight, which need not be the edge the search followed.
func (w *walk) summedDistance(p []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(p); i++ {
		total += w.g.EdgeWeight(p[i], p[i+1])
	}

	return total
}

// found completes a successful search with the given distance.
func (w *walk) found(alg Algorithm, p []int, distance float64) Result {
	return w.s.report(alg, Result{
		Path:          p,
		TotalDistance: distance,
		NodesExplored: w.explored,
		TimeTaken:     w.s.now().Sub(w.began),
		PathFound:     true,
	})
}

// exhausted completes a search whose frontier emptied before the goal.
func (w *walk) exhausted(alg Algorithm) Result {
	return w.s.report(alg, Result{
		Path:          []int{},
		NodesExplored: w.explored,
		TimeTaken:     w.s.now().Sub(w.began),
	})
}

// notFound is the result for unknown endpoints.
func (s *Searcher) notFound(alg Algorithm) Result {
	return s.report(alg, Result{Path: []int{}})
}

func (s *Searcher) report(alg Algorithm, res Result) Result {
	if s.observer != nil {
		s.observer.ObserveSearch(alg, res)
	}

	return res
}

var inf = math.Inf(1)
