// SPDX-License-Identifier: MIT

//
// File: graph.go
// Role: Graph storage, construction and read-only queries.
// Policy:
//   - nodes and adjacency always have the same length; adjacency[i] holds the
//     edges leaving nodes[i].
//   - index maps every stored id to its position and is rebuilt only by Clear.
//   - edgeCount equals the sum of adjacency list lengths.

package graph

import (
	"fmt"
	"io"

	"github.com/katalvlaran/navgraph/container"
)

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithCapacity pre-sizes node storage for n nodes. Panics if n is negative.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic(fmt.Sprintf("graph: WithCapacity(%d): negative capacity", n))
	}

	return func(g *Graph) { g.capacity = n }
}

// Graph is a weighted directed graph of named locations.
type Graph struct {
	nodes     *container.Array[*Node]
	adjacency *container.Array[*container.List[Edge]]
	index     map[int]int
	edgeCount int
	capacity  int
}

// emptyAdjacency backs Adjacencies for unknown ids. Only its read-only view
// escapes the package.
var emptyAdjacency = newEdgeList().ReadOnly()

func newEdgeList() *container.List[Edge] {
	return container.NewListFunc(Edge.Equal)
}

// NewGraph returns an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()

	return g
}

func (g *Graph) reset() {
	g.nodes = container.NewArray[*Node](g.capacity)
	g.adjacency = container.NewArray[*container.List[Edge]](g.capacity)
	g.index = make(map[int]int, g.capacity)
	g.edgeCount = 0
}

// AddNode stores n. A node whose id is already present is ignored and
// AddNode reports false.
func (g *Graph) AddNode(n Node) bool {
	if _, ok := g.index[n.id]; ok {
		return false
	}
	stored := n
	g.index[n.id] = g.nodes.Len()
	g.nodes.PushBack(&stored)
	g.adjacency.PushBack(newEdgeList())

	return true
}

// AddEdge appends e to the adjacency of its source. If either endpoint is
// unknown the graph is left untouched and AddEdge reports false.
func (g *Graph) AddEdge(e Edge) bool {
	pos, ok := g.index[e.Source]
	if !ok {
		return false
	}
	if _, ok = g.index[e.Destination]; !ok {
		return false
	}
	g.adjacency.Get(pos).PushBack(e)
	g.edgeCount++

	return true
}

// Connect adds the directed edge source→destination.
func (g *Graph) Connect(source, destination int, weight float64) bool {
	return g.AddEdge(NewEdge(source, destination, weight))
}

// ConnectBoth adds a→b and b→a with the same weight. It reports true only if
// both edges were stored.
func (g *Graph) ConnectBoth(a, b int, weight float64) bool {
	if !g.HasNode(a) || !g.HasNode(b) {
		return false
	}
	g.Connect(a, b, weight)
	g.Connect(b, a, weight)

	return true
}

// Clear removes every node and edge.
func (g *Graph) Clear() { g.reset() }

// NodeCount returns the number of stored nodes.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of stored directed edges, parallel ones included.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Position returns the insertion position of id.
func (g *Graph) Position(id int) (int, bool) {
	pos, ok := g.index[id]

	return pos, ok
}

// NodeAt returns the node stored at position pos, or nil when pos is out of range.
func (g *Graph) NodeAt(pos int) *Node {
	n, err := g.nodes.At(pos)
	if err != nil {
		return nil
	}

	return n
}

// Node returns the node with the given id, or nil when absent.
func (g *Graph) Node(id int) *Node {
	pos, ok := g.index[id]
	if !ok {
		return nil
	}

	return g.nodes.Get(pos)
}

// NodeByName returns the first node in insertion order whose name matches, or nil.
func (g *Graph) NodeByName(name string) *Node {
	for _, n := range g.nodes.All() {
		if n.name == name {
			return n
		}
	}

	return nil
}

// HasNode reports whether id is stored.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.index[id]

	return ok
}

// Adjacencies returns the outgoing edges of id in insertion order. Unknown ids
// yield an empty view.
func (g *Graph) Adjacencies(id int) container.View[Edge] {
	pos, ok := g.index[id]
	if !ok {
		return emptyAdjacency
	}

	return g.adjacency.Get(pos).ReadOnly()
}

// AdjacencyAt returns the outgoing edges of the node at position pos.
// pos must be in [0, NodeCount()).
func (g *Graph) AdjacencyAt(pos int) container.View[Edge] {
	return g.adjacency.Get(pos).ReadOnly()
}

// Neighbors returns the destination ids of id's outgoing edges in adjacency
// order. Parallel edges repeat their destination.
func (g *Graph) Neighbors(id int) []int {
	adj := g.Adjacencies(id)
	out := make([]int, 0, adj.Len())
	for e := range adj.All() {
		out = append(out, e.Destination)
	}

	return out
}

// HasEdge reports whether at least one edge source→destination exists.
func (g *Graph) HasEdge(source, destination int) bool {
	_, ok := g.LookupEdgeWeight(source, destination)

	return ok
}

// LookupEdgeWeight returns the weight of the first edge source→destination in
// adjacency order.
func (g *Graph) LookupEdgeWeight(source, destination int) (float64, bool) {
	for e := range g.Adjacencies(source).All() {
		if e.Destination == destination {
			return e.Weight, true
		}
	}

	return 0, false
}

// EdgeWeight returns the weight of the first edge source→destination, or
// NoEdge when there is none. A stored weight of -1 is indistinguishable from
// NoEdge here; use LookupEdgeWeight when that matters.
func (g *Graph) EdgeWeight(source, destination int) float64 {
	w, ok := g.LookupEdgeWeight(source, destination)
	if !ok {
		return NoEdge
	}

	return w
}

// AllNodes returns a copy of every node in insertion order.
func (g *Graph) AllNodes() []Node {
	out := make([]Node, 0, g.nodes.Len())
	for _, n := range g.nodes.All() {
		out = append(out, *n)
	}

	return out
}

// Dump writes a human-readable listing of nodes and their outgoing edges.
func (g *Graph) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "graph: %d nodes, %d edges\n", g.NodeCount(), g.edgeCount); err != nil {
		return err
	}
	for pos, n := range g.nodes.All() {
		if _, err := fmt.Fprintf(w, "node %d (%s):", n.id, n.name); err != nil {
			return err
		}
		for e := range g.adjacency.Get(pos).All() {
			if _, err := fmt.Fprintf(w, " -> %d (w=%g)", e.Destination, e.Weight); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
