package search_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare: four corners, a heavy diagonal 0→3 (10) and two unit routes
// through 1 and 2.
func buildSquare() *graph.Graph {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(0, "A", 0, 0))
	g.AddNode(graph.NewNode(1, "B", 1, 0))
	g.AddNode(graph.NewNode(2, "C", 0, 1))
	g.AddNode(graph.NewNode(3, "D", 1, 1))
	g.Connect(0, 3, 10)
	g.Connect(0, 1, 1)
	g.Connect(1, 3, 1)
	g.Connect(0, 2, 1)
	g.Connect(2, 3, 1)

	return g
}

// buildTriangle: A→B 5, A→C 2, C→B 2.
func buildTriangle() *graph.Graph {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(0, "A", 0, 0))
	g.AddNode(graph.NewNode(1, "B", 1, 0))
	g.AddNode(graph.NewNode(2, "C", 0.5, 1))
	g.Connect(0, 1, 5)
	g.Connect(0, 2, 2)
	g.Connect(2, 1, 2)

	return g
}

// buildGrid returns a w×h 4-connected grid with unit weights and ids y*w+x.
func buildGrid(w, h int) *graph.Graph {
	g := graph.NewGraph(graph.WithCapacity(w * h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddNode(graph.NewNode(y*w+x, "", float64(x), float64(y)))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := y*w + x
			if x+1 < w {
				g.ConnectBoth(id, id+1, 1)
			}
			if y+1 < h {
				g.ConnectBoth(id, id+w, 1)
			}
		}
	}

	return g
}

// buildRandom returns n nodes in a 100×100 square with roughly n*degree
// directed edges. Weights are the Euclidean length times a factor in [1,2),
// which keeps the heuristic consistent.
func buildRandom(rng *rand.Rand, n, degree int) *graph.Graph {
	g := graph.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(graph.NewNode(i, "", rng.Float64()*100, rng.Float64()*100))
	}
	for i := 0; i < n*degree; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		d := g.Node(a).Distance(g.Node(b))
		g.Connect(a, b, d*(1+rng.Float64()))
	}

	return g
}

func run(t *testing.T, s *search.Searcher, alg search.Algorithm, start, goal int) search.Result {
	t.Helper()
	res, err := s.Run(alg, start, goal)
	require.NoError(t, err)

	return res
}

func TestDijkstra_Square(t *testing.T) {
	res := search.New(buildSquare()).Dijkstra(0, 3)
	require.True(t, res.PathFound)
	assert.Equal(t, 2.0, res.TotalDistance)
	assert.Equal(t, []int{0, 1, 3}, res.Path)
	assert.Equal(t, 4, res.NodesExplored)
}

func TestDijkstra_Triangle(t *testing.T) {
	res := search.New(buildTriangle()).Dijkstra(0, 1)
	require.True(t, res.PathFound)
	assert.Equal(t, 4.0, res.TotalDistance)
	assert.Equal(t, []int{0, 2, 1}, res.Path)
}

// TestSquare_PerAlgorithm pins the exploration behaviour of each strategy on
// the square graph.
func TestSquare_PerAlgorithm(t *testing.T) {
	s := search.New(buildSquare())

	cases := []struct {
		alg      search.Algorithm
		path     []int
		distance float64
		explored int
	}{
		// visit at pop; last pushed neighbour (2) pops first and re-parents 3
		{search.DepthFirst, []int{0, 2, 3}, 2, 3},
		// 3 is enqueued straight from 0
		{search.BreadthFirst, []int{0, 3}, 10, 2},
		{search.Dijkstra, []int{0, 1, 3}, 2, 4},
		// 3 has h=0 and is popped right after the start
		{search.BestFirst, []int{0, 3}, 10, 2},
		// 1 improves 3 while its key-10 entry is queued; that entry pops last
		{search.AStar, []int{0, 1, 3}, 2, 4},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			res := run(t, s, tc.alg, 0, 3)
			require.True(t, res.PathFound)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.distance, res.TotalDistance)
			assert.Equal(t, tc.explored, res.NodesExplored)
		})
	}
}

// TestAStar_QueuedNodeExpandedWithCurrentScore: A lowers B's g-score while B
// still waits behind its S→B entry. B is not pushed again, and when the old
// entry pops B is expanded from g=2, not 10.
func TestAStar_QueuedNodeExpandedWithCurrentScore(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(0, "S", 0, 0))
	g.AddNode(graph.NewNode(1, "A", 5, 0))
	g.AddNode(graph.NewNode(2, "B", 9, 0))
	g.AddNode(graph.NewNode(3, "C", 4, 0))
	g.AddNode(graph.NewNode(4, "G", 10, 0))
	g.Connect(0, 2, 10)
	g.Connect(0, 1, 1)
	g.Connect(0, 3, 1)
	g.Connect(1, 2, 1)
	g.Connect(2, 4, 1)

	var order []int
	res := search.New(g, search.WithOnExplore(func(id int) { order = append(order, id) })).AStar(0, 4)
	require.True(t, res.PathFound)
	assert.Equal(t, []int{0, 1, 2, 4}, res.Path)
	assert.Equal(t, 3.0, res.TotalDistance)
	assert.Equal(t, 5, res.NodesExplored)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, order)
}

// TestAStar_StaleOrderingReachesGoalFirst pins the cost of not re-queuing an
// improved node: G's entry (key 5) pops before n's (key 11, though n now has
// g=2), so A* returns the direct road while Dijkstra finds the detour.
func TestAStar_StaleOrderingReachesGoalFirst(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(0, "S", 3, 0))
	g.AddNode(graph.NewNode(1, "G", 0, 0))
	g.AddNode(graph.NewNode(2, "n", 1, 0))
	g.AddNode(graph.NewNode(3, "m", 2, 0))
	g.Connect(0, 2, 10)
	g.Connect(0, 3, 1)
	g.Connect(0, 1, 5)
	g.Connect(3, 2, 1)
	g.Connect(2, 1, 1)
	s := search.New(g)

	astar := s.AStar(0, 1)
	require.True(t, astar.PathFound)
	assert.Equal(t, []int{0, 1}, astar.Path)
	assert.Equal(t, 5.0, astar.TotalDistance)
	assert.Equal(t, 3, astar.NodesExplored)

	dj := s.Dijkstra(0, 1)
	assert.Equal(t, []int{0, 3, 2, 1}, dj.Path)
	assert.Equal(t, 3.0, dj.TotalDistance)
}

func TestStartEqualsGoal(t *testing.T) {
	s := search.New(buildSquare())
	for _, alg := range search.Algorithms() {
		res := run(t, s, alg, 2, 2)
		assert.True(t, res.PathFound, alg)
		assert.Equal(t, []int{2}, res.Path, alg)
		assert.Equal(t, 0.0, res.TotalDistance, alg)
		assert.Equal(t, 1, res.NodesExplored, alg)
	}
}

func TestDisconnectedComponents(t *testing.T) {
	g := buildSquare()
	g.AddNode(graph.NewNode(10, "island", 5, 5))
	g.AddNode(graph.NewNode(11, "islet", 6, 5))
	g.ConnectBoth(10, 11, 1)

	s := search.New(g)
	for _, alg := range search.Algorithms() {
		res := run(t, s, alg, 0, 11)
		assert.False(t, res.PathFound, alg)
		assert.Empty(t, res.Path, alg)
		assert.Equal(t, 0.0, res.TotalDistance, alg)
		assert.Equal(t, 4, res.NodesExplored, alg)

		back := run(t, s, alg, 10, 0)
		assert.False(t, back.PathFound, alg)
		assert.Equal(t, 2, back.NodesExplored, alg)
	}
}

func TestMissingEndpoints(t *testing.T) {
	s := search.New(buildSquare())
	for _, alg := range search.Algorithms() {
		for _, pair := range [][2]int{{0, 99}, {99, 0}, {-1, -2}} {
			res := run(t, s, alg, pair[0], pair[1])
			assert.False(t, res.PathFound)
			assert.NotNil(t, res.Path)
			assert.Empty(t, res.Path)
			assert.Zero(t, res.NodesExplored)
			assert.Zero(t, res.TimeTaken)
		}
	}

	assert.False(t, search.New(nil).AStar(0, 1).PathFound)
}

func TestEmptyGraph(t *testing.T) {
	s := search.New(graph.NewGraph())
	for _, alg := range search.Algorithms() {
		assert.False(t, run(t, s, alg, 0, 0).PathFound)
	}
}

// TestBFS_MinimumHops checks that BFS on a uniform grid returns a path whose
// edge count equals the Manhattan distance.
func TestBFS_MinimumHops(t *testing.T) {
	const w, h = 6, 5
	s := search.New(buildGrid(w, h))
	for _, pair := range [][2]int{{0, w*h - 1}, {3, 26}, {7, 7}, {29, 0}} {
		res := s.BreadthFirst(pair[0], pair[1])
		require.True(t, res.PathFound)
		ax, ay := pair[0]%w, pair[0]/w
		bx, by := pair[1]%w, pair[1]/w
		hops := abs(ax-bx) + abs(ay-by)
		assert.Len(t, res.Path, hops+1)
		assert.Equal(t, float64(hops), res.TotalDistance)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// TestDijkstraIsMinimal compares Dijkstra against the other strategies on
// random non-negative graphs.
func TestDijkstraIsMinimal(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for round := 0; round < 20; round++ {
		g := buildRandom(rng, 60, 3)
		s := search.New(g)
		for q := 0; q < 10; q++ {
			start, goal := rng.Intn(60), rng.Intn(60)
			c := s.Compare(start, goal)
			require.Len(t, c.Entries, 5)

			dj := c.Entries[search.Dijkstra].Result
			for _, e := range c.Entries {
				require.Equal(t, dj.PathFound, e.Result.PathFound, "%s %d→%d", e.Algorithm, start, goal)
				if !dj.PathFound {
					continue
				}
				assert.LessOrEqual(t, dj.TotalDistance, e.Result.TotalDistance+1e-9, e.Algorithm)
				assert.Equal(t, start, e.Result.Path[0])
				assert.Equal(t, goal, e.Result.Path[len(e.Result.Path)-1])
				assertPathValid(t, g, e.Result.Path)
			}
		}
	}
}

func assertPathValid(t *testing.T, g *graph.Graph, path []int) {
	t.Helper()
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, g.HasEdge(path[i], path[i+1]), "missing edge %d→%d", path[i], path[i+1])
	}
}

// TestParallelEdges pins the distance policy on multi-edges: cost-table
// algorithms report the cheaper edge they relaxed, post-hoc sums report the
// first edge in adjacency order.
func TestParallelEdges(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(0, "a", 0, 0))
	g.AddNode(graph.NewNode(1, "b", 1, 0))
	g.Connect(0, 1, 9)
	g.Connect(0, 1, 2)
	s := search.New(g)

	want := map[search.Algorithm]float64{
		search.DepthFirst:   9,
		search.BreadthFirst: 9,
		search.BestFirst:    9,
		search.Dijkstra:     2,
		search.AStar:        2,
	}
	for alg, d := range want {
		res := run(t, s, alg, 0, 1)
		require.True(t, res.PathFound, alg)
		assert.Equal(t, []int{0, 1}, res.Path, alg)
		assert.Equal(t, d, res.TotalDistance, alg)
	}
}

func TestNonContiguousIDs(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(500, "x", 0, 0))
	g.AddNode(graph.NewNode(-3, "y", 1, 0))
	g.AddNode(graph.NewNode(42, "z", 2, 0))
	g.Connect(500, -3, 1)
	g.Connect(-3, 42, 1)

	s := search.New(g)
	for _, alg := range search.Algorithms() {
		res := run(t, s, alg, 500, 42)
		require.True(t, res.PathFound, alg)
		assert.Equal(t, []int{500, -3, 42}, res.Path, alg)
		assert.Equal(t, 2.0, res.TotalDistance, alg)
	}
}

type recorder struct {
	algs    []search.Algorithm
	results []search.Result
}

func (r *recorder) ObserveSearch(alg search.Algorithm, res search.Result) {
	r.algs = append(r.algs, alg)
	r.results = append(r.results, res)
}

func TestOptions_ObserverHookClock(t *testing.T) {
	rec := &recorder{}
	var explored []int
	var ticks int64
	clock := func() time.Time {
		ticks++
		return time.Unix(0, ticks*int64(time.Millisecond))
	}

	s := search.New(buildSquare(),
		search.WithObserver(rec),
		search.WithOnExplore(func(id int) { explored = append(explored, id) }),
		search.WithClock(clock),
	)

	res := s.BreadthFirst(0, 3)
	assert.Equal(t, []int{0, 3}, explored)
	assert.Equal(t, time.Millisecond, res.TimeTaken)
	require.Len(t, rec.results, 1)
	assert.Equal(t, search.BreadthFirst, rec.algs[0])
	assert.Equal(t, res, rec.results[0])

	s.Dijkstra(0, 99)
	require.Len(t, rec.results, 2)
	assert.False(t, rec.results[1].PathFound)

	assert.Panics(t, func() { search.WithObserver(nil) })
	assert.Panics(t, func() { search.WithOnExplore(nil) })
	assert.Panics(t, func() { search.WithClock(nil) })
}

func TestCompare_Best(t *testing.T) {
	s := search.New(buildSquare())
	c := s.Compare(0, 3)
	require.Len(t, c.Entries, 5)
	for i, alg := range search.Algorithms() {
		assert.Equal(t, alg, c.Entries[i].Algorithm)
	}
	best, ok := c.Best()
	require.True(t, ok)
	assert.Equal(t, 2.0, best.Result.TotalDistance)
	// DFS ties Dijkstra on distance but explores fewer nodes.
	assert.Equal(t, search.DepthFirst, best.Algorithm)

	_, ok = s.Compare(3, 0).Best()
	assert.False(t, ok)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"dfs":        search.DepthFirst,
		"BFS":        search.BreadthFirst,
		" dijkstra ": search.Dijkstra,
		"greedy":     search.BestFirst,
		"best-first": search.BestFirst,
		"bestfirst":  search.BestFirst,
		"A*":         search.AStar,
		"astar":      search.AStar,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseAlgorithm("bogus")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = search.New(buildSquare()).Run(search.Algorithm(42), 0, 1)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(42)", search.Algorithm(42).String())

	for _, alg := range search.Algorithms() {
		text, err := alg.MarshalText()
		require.NoError(t, err)
		var back search.Algorithm
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, alg, back)
	}
}

func TestHeuristic(t *testing.T) {
	a := graph.NewNode(0, "", 0, 0)
	b := graph.NewNode(1, "", 3, 4)
	assert.Equal(t, 5.0, search.Heuristic(&a, &b))
	assert.Equal(t, 0.0, search.Heuristic(nil, &b))
	assert.Equal(t, 0.0, search.Heuristic(&a, nil))
	assert.False(t, math.IsNaN(search.Heuristic(&a, &a)))
}
