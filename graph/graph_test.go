package graph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/navgraph/container"
	"github.com/katalvlaran/navgraph/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare returns the four-node square used across the search tests:
// 0→1, 1→3, 0→2, 2→3 weight 1 and a direct 0→3 weight 10.
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

func TestGraph_AddNodeDuplicate(t *testing.T) {
	g := graph.NewGraph()
	assert.True(t, g.AddNode(graph.NewNode(7, "first", 1, 2)))
	assert.False(t, g.AddNode(graph.NewNode(7, "second", 3, 4)))
	assert.Equal(t, 1, g.NodeCount())

	n := g.Node(7)
	require.NotNil(t, n)
	assert.Equal(t, "first", n.Name())
	assert.Equal(t, 1.0, n.X())
	assert.Equal(t, 2.0, n.Y())
}

func TestGraph_AddEdgeDanglingIsNoop(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(1, "a", 0, 0))
	assert.False(t, g.Connect(1, 2, 1))
	assert.False(t, g.Connect(2, 1, 1))
	assert.False(t, g.ConnectBoth(1, 99, 1))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Neighbors(1))
}

func TestGraph_Queries(t *testing.T) {
	g := buildSquare()
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())

	assert.Equal(t, []int{3, 1, 2}, g.Neighbors(0))
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(3, 0))
	assert.Equal(t, 10.0, g.EdgeWeight(0, 3))
	assert.Equal(t, graph.NoEdge, g.EdgeWeight(3, 0))

	_, ok := g.LookupEdgeWeight(3, 0)
	assert.False(t, ok)

	assert.Nil(t, g.Node(42))
	assert.False(t, g.HasNode(42))
	assert.Equal(t, 0, g.Adjacencies(42).Len())
	assert.Nil(t, g.NodeByName("nope"))
	require.NotNil(t, g.NodeByName("C"))
	assert.Equal(t, 2, g.NodeByName("C").ID())

	pos, ok := g.Position(3)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
	assert.Equal(t, 3, g.NodeAt(pos).ID())
	assert.Nil(t, g.NodeAt(10))
}

// TestGraph_ParallelEdgesFirstMatch pins the first-match policy: all parallel
// edges are kept and counted, EdgeWeight reports the earliest.
func TestGraph_ParallelEdgesFirstMatch(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(0, "a", 0, 0))
	g.AddNode(graph.NewNode(1, "b", 1, 0))
	g.Connect(0, 1, 9)
	g.Connect(0, 1, 2)
	g.Connect(0, 1, 5)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{1, 1, 1}, g.Neighbors(0))
	assert.Equal(t, 9.0, g.EdgeWeight(0, 1))

	var weights []float64
	for e := range g.Adjacencies(0).All() {
		weights = append(weights, e.Weight)
	}
	assert.Equal(t, []float64{9, 2, 5}, weights)
	assert.True(t, g.Adjacencies(0).Contains(graph.NewEdge(0, 1, 123)))
}

func TestGraph_NodeByNameFirstInsertion(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(5, "same", 0, 0))
	g.AddNode(graph.NewNode(3, "same", 0, 0))
	assert.Equal(t, 5, g.NodeByName("same").ID())
}

// TestGraph_NodePointerStable checks that setters on a returned node are
// visible through later lookups and that AllNodes is a copy.
func TestGraph_NodePointerStable(t *testing.T) {
	g := graph.NewGraph(graph.WithCapacity(1))
	g.AddNode(graph.NewNode(1, "old", 0, 0))
	for i := 2; i < 40; i++ {
		g.AddNode(graph.NewNode(i, "filler", 0, 0))
	}
	g.Node(1).SetName("new")
	g.Node(1).SetCoordinates(3, 4)

	assert.Equal(t, "new", g.Node(1).Name())
	assert.Equal(t, 3.0, g.Node(1).X())

	all := g.AllNodes()
	all[0].SetName("copy")
	assert.Equal(t, "new", g.Node(1).Name())
	assert.Len(t, all, 39)
	assert.Equal(t, 1, all[0].ID())
}

func TestGraph_Clear(t *testing.T) {
	g := buildSquare()
	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasNode(0))

	g.AddNode(graph.NewNode(0, "again", 0, 0))
	assert.Equal(t, 1, g.NodeCount())
}

func TestGraph_NonContiguousIDs(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(graph.NewNode(100, "x", 0, 0))
	g.AddNode(graph.NewNode(-4, "y", 0, 0))
	assert.True(t, g.Connect(100, -4, 2.5))
	assert.Equal(t, []int{-4}, g.Neighbors(100))
	pos, _ := g.Position(-4)
	assert.Equal(t, 1, pos)
}

func TestNodeAndEdge(t *testing.T) {
	a := graph.NewNode(1, "a", 0, 0)
	b := graph.NewNode(2, "b", 3, 4)
	c := graph.NewNode(1, "other", 9, 9)
	assert.InDelta(t, 5.0, a.Distance(&b), 1e-12)
	assert.True(t, a.Equal(&c))
	assert.False(t, a.Equal(&b))
	assert.False(t, a.Equal(nil))
	assert.Panics(t, func() { a.Distance(nil) })

	e1 := graph.NewEdge(1, 2, 3)
	e2 := graph.NewEdge(1, 2, -7)
	assert.True(t, e1.Equal(e2))
	assert.True(t, e2.Less(e1))
	assert.False(t, e1.Equal(graph.NewEdge(2, 1, 3)))
}

func TestGraph_Dump(t *testing.T) {
	g := buildSquare()
	var buf bytes.Buffer
	require.NoError(t, g.Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, "graph: 4 nodes, 5 edges")
	assert.Contains(t, out, "node 0 (A): -> 3 (w=10) -> 1 (w=1) -> 2 (w=1)")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

// TestGraph_AdjacencyViewsAreReadOnly: views cannot be asserted back to a
// list, so the shared empty view for unknown ids stays empty.
func TestGraph_AdjacencyViewsAreReadOnly(t *testing.T) {
	g := buildSquare()
	for _, v := range []container.View[graph.Edge]{g.Adjacencies(404), g.Adjacencies(0), g.AdjacencyAt(0)} {
		_, isList := v.(*container.List[graph.Edge])
		assert.False(t, isList)
	}
	assert.True(t, g.Adjacencies(404).IsEmpty())
	assert.True(t, graph.NewGraph().Adjacencies(7).IsEmpty())

	g.Connect(0, 1, 4)
	assert.Equal(t, 4, g.Adjacencies(0).Len())
	assert.Equal(t, 0, g.Adjacencies(404).Len())
}
