// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_random.go - Random(n, p) constructor.
//
// Model:
//   • n nodes named "Random_i" at uniform coordinates in [0, extent)².
//   • Each unordered pair {i<j} is linked with probability p, both
//     directions, weight = Euclidean distance.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng != nil (else ErrNeedRandSource).
//
// Complexity: O(n²) pair checks.
// Determinism: coordinates are drawn first in node order, then one draw per
// pair in (i asc, j asc) order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/graph"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
)

// Random returns a Constructor for an Erdős–Rényi graph on random points.
func Random(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandom, p, ErrInvalidProbability)
		}
		if err := requireRand(methodRandom, cfg); err != nil {
			return err
		}

		base := g.NodeCount()
		for i := 0; i < n; i++ {
			x, y := cfg.point()
			if err := addNode(methodRandom, g, graph.NewNode(base+i, fmt.Sprintf("Random_%d", i), x, y)); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					g.ConnectBoth(base+i, base+j, distance(g, base+i, base+j))
				}
			}
		}

		return nil
	}
}
