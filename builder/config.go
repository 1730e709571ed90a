// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// config.go - resolved configuration shared by all constructors.
//
// Defaults:
//   • rng           = nil    (stochastic constructors fail with ErrNeedRandSource)
//   • extent        = 1000   (side of the square that random coordinates fall in)
//   • clusterRadius = 50     (CityLike: max distance of a node from its centre)
//   • linkRadius    = 30     (CityLike: max edge length)
//   • maxLinks      = 5      (CityLike: max out-edges per node)
//   • capacity      = 0      (node capacity hint for BuildGraph)

package builder

import "math/rand"

const (
	defaultExtent        = 1000.0
	defaultClusterRadius = 50.0
	defaultLinkRadius    = 30.0
	defaultMaxLinks      = 5
)

// builderConfig is resolved once per BuildGraph call and passed by value to
// every constructor.
type builderConfig struct {
	rng           *rand.Rand
	extent        float64
	clusterRadius float64
	linkRadius    float64
	maxLinks      int
	capacity      int
}

// newBuilderConfig applies opts over the defaults in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		extent:        defaultExtent,
		clusterRadius: defaultClusterRadius,
		linkRadius:    defaultLinkRadius,
		maxLinks:      defaultMaxLinks,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// point draws a coordinate uniformly in [0, extent).
func (c builderConfig) point() (float64, float64) {
	return c.rng.Float64() * c.extent, c.rng.Float64() * c.extent
}
