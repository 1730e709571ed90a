// SPDX-License-Identifier: MIT

// Package graph provides the weighted directed graph of named locations that
// the search package explores.
//
// A Graph G = (V,E) keeps its nodes in insertion order inside a
// container.Array and, in parallel, one container.List of outgoing edges per
// node, indexed by the node's position (not its id):
//
//	nodes:      [ n0      n1      n2   ... ]
//	adjacency:  [ list0   list1   list2 ... ]   list_i = edges leaving n_i
//	index:      id -> position               (internal, O(1) lookups)
//
// Behaviour:
//
//   - Directed edges with float64 weights; negative weights are accepted.
//   - Parallel edges between the same ordered pair are retained, in insertion
//     order. EdgeWeight and LookupEdgeWeight report the first one.
//   - AddNode with a duplicate id, and AddEdge with an unknown endpoint, are
//     silent no-ops reported through the boolean return.
//   - There is no edge or node removal; Clear resets the whole graph.
//   - NodeCount and EdgeCount are exact counters.
//
// Core Methods:
//
//	// Construction
//	AddNode(n Node) bool                       // O(1) amortised
//	AddEdge(e Edge) bool                       // O(1) amortised
//	Connect(src, dst int, w float64) bool      // AddEdge shorthand
//	ConnectBoth(a, b int, w float64) bool      // two directed edges
//	Clear()
//
//	// Query
//	Node(id int) *Node                         // O(1), nil when absent
//	NodeByName(name string) *Node              // O(V), first match
//	Adjacencies(id int) container.View[Edge]   // empty view for unknown ids
//	Neighbors(id int) []int                    // destination ids, adjacency order
//	HasNode, HasEdge, EdgeWeight, LookupEdgeWeight
//	AllNodes() []Node                          // copy, insertion order
//	Position(id int) (int, bool), NodeAt(pos int) *Node
//
// Concurrency:
//
// A Graph is not safe for concurrent mutation. Any number of goroutines may
// read it (search, serve HTTP) once construction has finished.
package graph
