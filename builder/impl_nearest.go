// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_nearest.go - Nearest(n) constructor.
//
// Model:
//   • n nodes named "Node_i" at uniform coordinates in [0, extent)².
//   • For each node in order, k = 3 + rng.Intn(3) is drawn and the node is
//     linked both ways, weight = distance, to its k nearest other nodes,
//     closest first. A pair already linked from this node is skipped, so a
//     node may end with more than 5 neighbours but never a duplicate edge
//     created here.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); cfg.rng != nil.
//
// Complexity: O(n² log k); a bounded max-heap keeps the k best candidates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/container"
	"github.com/katalvlaran/navgraph/graph"
)

const (
	methodNearest   = "Nearest"
	minNearestNodes = 2
	minNeighbours   = 3
	neighbourSpread = 3 // k ∈ [minNeighbours, minNeighbours+neighbourSpread)
)

type candidate struct {
	pos  int
	dist float64
}

// Nearest returns a Constructor for a k-nearest-neighbour road network.
func Nearest(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minNearestNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodNearest, n, minNearestNodes, ErrTooFewVertices)
		}
		if err := requireRand(methodNearest, cfg); err != nil {
			return err
		}

		base := g.NodeCount()
		for i := 0; i < n; i++ {
			x, y := cfg.point()
			if err := addNode(methodNearest, g, graph.NewNode(base+i, fmt.Sprintf("Node_%d", i), x, y)); err != nil {
				return err
			}
		}

		// Farthest on top, so Pop evicts the worst of the k kept.
		farthest := container.NewPriorityQueue(container.Descending(func(c candidate) float64 { return c.dist }), minNeighbours+neighbourSpread)
		best := make([]candidate, 0, minNeighbours+neighbourSpread)
		for i := base; i < base+n; i++ {
			k := minNeighbours + cfg.rng.Intn(neighbourSpread)
			farthest.Clear()
			for j := base; j < base+n; j++ {
				if j == i {
					continue
				}
				farthest.Push(candidate{pos: j, dist: distance(g, i, j)})
				if farthest.Len() > k {
					farthest.Pop()
				}
			}

			best = best[:0]
			for !farthest.IsEmpty() {
				c, _ := farthest.Top()
				best = append(best, c)
				farthest.Pop()
			}
			src := g.NodeAt(i).ID()
			for b := len(best) - 1; b >= 0; b-- {
				dst := g.NodeAt(best[b].pos).ID()
				if !g.HasEdge(src, dst) {
					g.ConnectBoth(src, dst, best[b].dist)
				}
			}
		}

		return nil
	}
}
