// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/navgraph/search"
)

const maxWorkers = 256

// Validate checks every section and reports the first problem.
func (c Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateGraph(); err != nil {
		return err
	}

	return c.validateSearch()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

func (c Config) validateLog() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return invalid("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

func (c Config) validateServer() error {
	if c.Server.Host == "" {
		return invalid("server.host is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return invalid("server.shutdown_timeout must be positive")
	}
	for _, o := range c.Server.CORSOrigins {
		if o == "*" {
			return invalid("server.cors_origins must list origins, not *")
		}
	}

	return nil
}

func (c Config) validateGraph() error {
	g := c.Graph
	switch g.Source {
	case SourceDemo:
	case SourceBinary:
		if g.Path == "" {
			return invalid("graph.path is required for the binary source")
		}
	case SourceCSV:
		if g.NodesCSV == "" || g.EdgesCSV == "" {
			return invalid("graph.nodes_csv and graph.edges_csv are required for the csv source")
		}
	case SourceGrid, SourceRandom, SourceCity, SourceNearest:
		if g.Size < 1 {
			return invalid("graph.size must be >= 1, got %d", g.Size)
		}
		if g.Source == SourceRandom && (g.Probability < 0 || g.Probability > 1) {
			return invalid("graph.probability must be in [0,1], got %g", g.Probability)
		}
		if g.Source == SourceCity && g.Clusters < 1 {
			return invalid("graph.clusters must be >= 1, got %d", g.Clusters)
		}
	default:
		return invalid("graph.source %q", g.Source)
	}

	return nil
}

func (c Config) validateSearch() error {
	if _, err := c.Search.Parsed(); err != nil {
		return invalid("search.algorithm %q", c.Search.Algorithm)
	}
	if c.Search.Workers < 1 || c.Search.Workers > maxWorkers {
		return invalid("search.workers must be between 1 and %d, got %d", maxWorkers, c.Search.Workers)
	}
	if c.Search.Pairs < 1 {
		return invalid("search.pairs must be >= 1, got %d", c.Search.Pairs)
	}

	return nil
}

// Parsed resolves the configured default algorithm.
func (s Search) Parsed() (search.Algorithm, error) {
	return search.ParseAlgorithm(s.Algorithm)
}
