// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// helpers.go - small shared routines for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/graph"
)

// addNode inserts n and reports an id collision as ErrConstructFailed, which
// only happens when a constructor runs against a graph whose ids are not
// contiguous from zero.
func addNode(method string, g *graph.Graph, n graph.Node) error {
	if !g.AddNode(n) {
		return fmt.Errorf("%s: node id %d already present: %w", method, n.ID(), ErrConstructFailed)
	}

	return nil
}

// requireRand reports ErrNeedRandSource for a config without an RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// distance is the Euclidean distance between the nodes at positions a and b.
func distance(g *graph.Graph, a, b int) float64 {
	return g.NodeAt(a).Distance(g.NodeAt(b))
}
