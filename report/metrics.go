// SPDX-License-Identifier: MIT

package report

import (
	"math/rand"
	"time"
	"unsafe"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/search"
)

// Metrics is one measured run: a graph construction or a single search.
type Metrics struct {
	// Algorithm is the search display name, or "Construction (kind)".
	Algorithm        string
	GraphSize        int
	Start            int
	Goal             int
	ConstructionTime time.Duration
	SearchTime       time.Duration
	MemoryBytes      int64
	PathFound        bool
	Distance         float64
	NodesExplored    int
	PathLength       int
}

// fromResult fills the search columns of a row.
func fromResult(g *graph.Graph, alg search.Algorithm, start, goal int, res search.Result) Metrics {
	return Metrics{
		Algorithm:     alg.String(),
		GraphSize:     g.NodeCount(),
		Start:         start,
		Goal:          goal,
		SearchTime:    res.TimeTaken,
		MemoryBytes:   EstimateMemory(g) + int64(res.NodesExplored)*int64(unsafe.Sizeof(int(0))),
		PathFound:     res.PathFound,
		Distance:      res.TotalDistance,
		NodesExplored: res.NodesExplored,
		PathLength:    len(res.Path),
	}
}

// Per-element sizes for EstimateMemory. An edge lives in a list slot next
// to its two link indices; a node is stored behind a pointer with its list
// header and its index map entry.
const (
	edgeSlotBytes = int64(unsafe.Sizeof(graph.Edge{})) + 2*int64(unsafe.Sizeof(int(0)))
	nodeBytes     = int64(unsafe.Sizeof(graph.Node{})) + 3*int64(unsafe.Sizeof(uintptr(0))) + 2*int64(unsafe.Sizeof(int(0)))
)

// EstimateMemory approximates the bytes g occupies: nodes with their names,
// adjacency slots and index entries. It walks the node table once.
func EstimateMemory(g *graph.Graph) int64 {
	if g == nil {
		return 0
	}
	total := int64(g.NodeCount())*nodeBytes + int64(g.EdgeCount())*edgeSlotBytes
	for pos := 0; pos < g.NodeCount(); pos++ {
		total += int64(len(g.NodeAt(pos).Name()))
	}

	return total
}

// Pair is a start/goal id pair.
type Pair struct {
	Start int
	Goal  int
}

// RandomPairs draws count pairs of node positions uniformly from g and
// returns their ids, dropping draws where start equals goal, so fewer than
// count pairs may come back. It returns nil for graphs with fewer than two
// nodes.
func RandomPairs(rng *rand.Rand, g *graph.Graph, count int) []Pair {
	n := g.NodeCount()
	if n < 2 || count <= 0 {
		return nil
	}
	pairs := make([]Pair, 0, count)
	for i := 0; i < count; i++ {
		s, t := rng.Intn(n), rng.Intn(n)
		if s == t {
			continue
		}
		pairs = append(pairs, Pair{Start: g.NodeAt(s).ID(), Goal: g.NodeAt(t).ID()})
	}

	return pairs
}
