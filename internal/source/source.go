// SPDX-License-Identifier: MIT

// Package source turns the configured graph source into a graph.
package source

import (
	"fmt"

	"github.com/katalvlaran/navgraph/builder"
	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/internal/config"
	"github.com/katalvlaran/navgraph/mapio"
)

// Open loads or generates the graph described by cfg. Generated sources use
// cfg.Seed, so the same settings always give the same map.
func Open(cfg config.Graph) (*graph.Graph, error) {
	switch cfg.Source {
	case config.SourceBinary:
		return mapio.LoadBinary(cfg.Path)
	case config.SourceCSV:
		return mapio.LoadCSV(cfg.NodesCSV, cfg.EdgesCSV)
	}

	con, err := constructor(cfg)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(cfg.Seed)}, con)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", cfg.Source, err)
	}

	return g, nil
}

func constructor(cfg config.Graph) (builder.Constructor, error) {
	switch cfg.Source {
	case config.SourceDemo:
		return builder.Demo(), nil
	case config.SourceGrid:
		return builder.KindGrid.Sized(cfg.Size)
	case config.SourceRandom:
		return builder.Random(cfg.Size, cfg.Probability), nil
	case config.SourceCity:
		return builder.CityLike(cfg.Size, cfg.Clusters), nil
	case config.SourceNearest:
		return builder.Nearest(cfg.Size), nil
	default:
		return nil, fmt.Errorf("source: unknown source %q", cfg.Source)
	}
}
