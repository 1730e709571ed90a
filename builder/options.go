// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes construction by mutating a builderConfig before
// the first constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithExtent sets the side of the square random coordinates are drawn from.
// Panics unless extent is positive and finite.
func WithExtent(extent float64) BuilderOption {
	mustPositive("WithExtent", extent)
	return func(c *builderConfig) {
		c.extent = extent
	}
}

// WithClusterRadius sets how far CityLike nodes may fall from their centre.
// Panics unless r is positive and finite.
func WithClusterRadius(r float64) BuilderOption {
	mustPositive("WithClusterRadius", r)
	return func(c *builderConfig) {
		c.clusterRadius = r
	}
}

// WithLinkRadius sets the maximum edge length CityLike will create.
// Panics unless r is positive and finite.
func WithLinkRadius(r float64) BuilderOption {
	mustPositive("WithLinkRadius", r)
	return func(c *builderConfig) {
		c.linkRadius = r
	}
}

// WithMaxLinks caps the out-edges CityLike gives each node. Panics if k < 1.
func WithMaxLinks(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMaxLinks(k<1)")
	}
	return func(c *builderConfig) {
		c.maxLinks = k
	}
}

// WithCapacity presizes the graph created by BuildGraph. Panics if n < 0.
func WithCapacity(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithCapacity(n<0)")
	}
	return func(c *builderConfig) {
		c.capacity = n
	}
}

func mustPositive(name string, v float64) {
	if !(v > 0) || math.IsInf(v, 0) {
		panic("builder: " + name + "(v<=0 or not finite)")
	}
}
