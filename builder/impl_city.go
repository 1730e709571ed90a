// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_city.go - CityLike(n, clusters) constructor.
//
// Model:
//   • clusters centres drawn uniformly in [0, extent)².
//   • Each of n nodes ("City_i") picks a centre uniformly and lands at a
//     uniform radius in [0, clusterRadius) and uniform angle around it.
//   • Each node then scans the others in position order and adds a directed
//     edge to every node within linkRadius, stopping after maxLinks edges.
//     Weight = Euclidean distance. Links are not mirrored, so the graph is
//     directed; a mirror appears when the other node also picks this one.
//
// Contract:
//   • n ≥ 1 and clusters ≥ 1 (else ErrTooFewVertices); cfg.rng != nil.
//
// Complexity: O(n²) in the worst case; the scan stops early per node once
// maxLinks edges are made.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/graph"
)

const (
	methodCityLike = "CityLike"
	minCityNodes   = 1
	minClusters    = 1
)

// CityLike returns a Constructor for a clustered, city-like point set.
func CityLike(n, clusters int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCityNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCityLike, n, minCityNodes, ErrTooFewVertices)
		}
		if clusters < minClusters {
			return fmt.Errorf("%s: clusters=%d < min=%d: %w", methodCityLike, clusters, minClusters, ErrTooFewVertices)
		}
		if err := requireRand(methodCityLike, cfg); err != nil {
			return err
		}

		type centre struct{ x, y float64 }
		centres := make([]centre, clusters)
		for i := range centres {
			centres[i].x, centres[i].y = cfg.point()
		}

		base := g.NodeCount()
		for i := 0; i < n; i++ {
			c := centres[cfg.rng.Intn(clusters)]
			r := cfg.rng.Float64() * cfg.clusterRadius
			a := cfg.rng.Float64() * 2 * math.Pi
			node := graph.NewNode(base+i, fmt.Sprintf("City_%d", i), c.x+r*math.Cos(a), c.y+r*math.Sin(a))
			if err := addNode(methodCityLike, g, node); err != nil {
				return err
			}
		}

		for i := base; i < base+n; i++ {
			links := 0
			for j := base; j < base+n && links < cfg.maxLinks; j++ {
				if j == i {
					continue
				}
				if d := distance(g, i, j); d <= cfg.linkRadius {
					g.Connect(g.NodeAt(i).ID(), g.NodeAt(j).ID(), d)
					links++
				}
			}
		}

		return nil
	}
}
