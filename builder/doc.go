// SPDX-License-Identifier: MIT

// Package builder generates synthetic and built-in maps for navgraph.
//
// A build is a list of Constructors applied in order to a fresh graph:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Nearest(500),
//	)
//
// Constructors:
//
//   - Grid(width, height, spacing): 4-connected lattice, two-way edges.
//   - Random(n, p): random points, each pair linked with probability p.
//   - CityLike(n, clusters): points around cluster centres linked to
//     close neighbours.
//   - Nearest(n): random points linked to their 3 to 5 nearest neighbours.
//   - Demo(): the fifteen-location Arequipa map.
//
// Randomness comes from the *rand.Rand set with WithSeed or WithRand; the
// stochastic constructors fail with ErrNeedRandSource without one. Equal
// seeds, options and constructor order give identical graphs.
//
// Option constructors panic on meaningless values (a nil RNG, a
// non-positive radius). Constructors return sentinel errors wrapped with
// their name and never panic.
package builder
