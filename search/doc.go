// SPDX-License-Identifier: MIT

// Package search finds paths between two nodes of a graph.Graph with five
// strategies that share one set of bookkeeping (visited flags, parent links,
// path reconstruction, explored-node counting and timing):
//
//	DepthFirst    explicit stack, visit at pop, some path
//	BreadthFirst  FIFO queue, visit at push, fewest edges
//	Dijkstra      linear minimum scan, minimum weight (non-negative weights)
//	BestFirst     greedy on Euclidean distance to the goal
//	AStar         f = g + Euclidean h, g-score table, in-open flag
//
// Every search returns a fresh Result. Missing endpoints and unreachable goals
// are not errors: PathFound is false and Path is empty. When start equals goal
// every algorithm returns the one-node path with distance 0.
//
// Distances:
//
// Dijkstra and AStar report the distance from their cost tables. The other
// three sum graph.EdgeWeight along the path after the search. With parallel
// edges EdgeWeight reports the first edge in adjacency order, so that sum may
// differ from the weight of the edge the search actually followed.
//
// Determinism:
//
// Given the same graph, DepthFirst, BreadthFirst and Dijkstra are fully
// deterministic. BestFirst and AStar break equal-priority ties by heap shape.
//
// Concurrency:
//
// A Searcher holds no per-search state. Searches never mutate the graph, so
// several goroutines may search one graph at once, each with its own Searcher.
//
// Example:
//
//	s := search.New(g)
//	res := s.AStar(1, 15)
//	if res.PathFound {
//	    fmt.Println(res.Path, res.TotalDistance)
//	}
package search
