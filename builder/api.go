// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go; each returns a Constructor closure.
//   - Options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs, options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with method context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/navgraph/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors add their nodes after the ones already present:
// the first id they use is g.NodeCount(), so composing constructors in
// BuildGraph yields disjoint id ranges on a fresh graph.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; the partially
// built graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := graph.NewGraph(graph.WithCapacity(cfg.capacity))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs the constructors against an existing graph, as BuildGraph does
// for a fresh one. Useful to append a generated component to a loaded map.
func Apply(g *graph.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}
