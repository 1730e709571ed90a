// Package navgraph is a small navigation toolkit: a weighted directed graph
// of named locations, five path-finding strategies over it, map files, seeded
// map generators and a performance report that compares the strategies.
//
// Packages:
//
//	container/  growable array, linked list, FIFO queue, binary-heap priority queue
//	graph/      Node, Edge and Graph (insertion-ordered nodes, per-node edge lists)
//	search/     DFS, BFS, Dijkstra, greedy Best-First and A*; Compare runs all five
//	mapio/      fixed little-endian binary map files and CSV node/edge files
//	builder/    grid, random, city-like, k-nearest and demo map generators
//	report/     construction and search metrics, parallel suites, text reports
//
// The navgraph command (cmd/navgraph) wires these together: generate maps,
// run single searches or comparisons, benchmark, and serve routes over HTTP.
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Demo())
//	res := search.New(g).AStar(0, 14)
//	fmt.Println(res.Path, res.TotalDistance)
//
// Installation:
//
//	go install github.com/katalvlaran/navgraph/cmd/navgraph@latest
package navgraph
