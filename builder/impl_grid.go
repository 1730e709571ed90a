// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_grid.go - Grid(width, height, spacing) constructor.
//
// Model:
//   • width×height nodes in row-major order, id base+y*width+x, name "Grid_x_y",
//     coordinates (x*spacing, y*spacing). base is the node count before the call.
//   • 4-neighbourhood: each cell links right and down, both directions, weight spacing.
//
// Contract:
//   • width ≥ 1 and height ≥ 1 (else ErrTooFewVertices).
//   • spacing > 0 (else ErrConstructFailed).
//
// Complexity: O(width*height) time; no extra space.
// Edge count: 2*(2*width*height - width - height).

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1

	// LargeGridSide gives a LargeGridSide² ≈ 2 million node grid.
	LargeGridSide = 1414
)

// Grid returns a Constructor that builds a width×height 4-connected grid.
func Grid(width, height int, spacing float64) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		if width < minGridDim || height < minGridDim {
			return fmt.Errorf("%s: width=%d, height=%d (each must be ≥ %d): %w",
				methodGrid, width, height, minGridDim, ErrTooFewVertices)
		}
		if !(spacing > 0) {
			return fmt.Errorf("%s: spacing=%g must be > 0: %w", methodGrid, spacing, ErrConstructFailed)
		}

		base := g.NodeCount()
		id := func(x, y int) int { return base + y*width + x }

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				n := graph.NewNode(id(x, y), fmt.Sprintf("Grid_%d_%d", x, y), float64(x)*spacing, float64(y)*spacing)
				if err := addNode(methodGrid, g, n); err != nil {
					return err
				}
			}
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if x+1 < width {
					g.ConnectBoth(id(x, y), id(x+1, y), spacing)
				}
				if y+1 < height {
					g.ConnectBoth(id(x, y), id(x, y+1), spacing)
				}
			}
		}

		return nil
	}
}
