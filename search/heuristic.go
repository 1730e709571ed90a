// SPDX-License-Identifier: MIT

//
// File: heuristic.go
// Role: Frontier entries and ordering policies for the heuristic searches.
// Policy:
//   - Best-first orders by h alone (g is always zero).
//   - A* orders by f = g + h.
//   - Both are min-first via container.Ascending; equal keys pop in heap
//     order, which is not insertion order.

package search

import (
	"github.com/katalvlaran/navgraph/container"
	"github.com/katalvlaran/navgraph/graph"
)

// frontierItem is one priority-queue entry. pos and parent are positions.
type frontierItem struct {
	pos    int
	parent int
	g      float64
	h      float64
}

func (it frontierItem) f() float64 { return it.g + it.h }

var (
	byHeuristic = container.Ascending(func(it frontierItem) float64 { return it.h })
	byEstimate  = container.Ascending(frontierItem.f)
)

// goalDistance returns the heuristic from every position to the goal,
// computed on demand.
func (w *walk) goalDistance() func(pos int) float64 {
	target := w.g.NodeAt(w.goal)

	return func(pos int) float64 {
		return Heuristic(w.g.NodeAt(pos), target)
	}
}

// newFrontier returns an empty frontier ordered by order.
func newFrontier(order container.Order[frontierItem], g *graph.Graph) *container.PriorityQueue[frontierItem] {
	return container.NewPriorityQueue(order, min(g.NodeCount(), 1024))
}
