// SPDX-License-Identifier: MIT

// Package config loads navgraph settings from a YAML file and NAVGRAPH_*
// environment variables.
//
// Precedence, lowest first: built-in defaults, the YAML file, the
// environment. Load validates the merged result.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Graph sources.
const (
	SourceDemo    = "demo"
	SourceBinary  = "binary"
	SourceCSV     = "csv"
	SourceGrid    = "grid"
	SourceRandom  = "random"
	SourceCity    = "city"
	SourceNearest = "nearest"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NAVGRAPH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all application settings.
type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Graph  Graph  `yaml:"graph"`
	Search Search `yaml:"search"`
}

// Log selects the logger level and formatter.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Server configures the HTTP service.
type Server struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Graph says where the map comes from. Path is the binary file for the
// binary source; NodesCSV and EdgesCSV are used by the csv source. Size,
// Clusters, Probability and Seed parameterise the generated sources.
type Graph struct {
	Source      string  `yaml:"source"`
	Path        string  `yaml:"path"`
	NodesCSV    string  `yaml:"nodes_csv"`
	EdgesCSV    string  `yaml:"edges_csv"`
	Size        int     `yaml:"size"`
	Clusters    int     `yaml:"clusters"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
}

// Search holds the defaults for route requests and benchmark runs.
type Search struct {
	Algorithm string `yaml:"algorithm"`
	Workers   int    `yaml:"workers"`
	Pairs     int    `yaml:"pairs"`
}

// Default returns the built-in settings: the demo map served on
// 127.0.0.1:8080 with A* as the default algorithm.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "text"},
		Server: Server{
			Host:            "127.0.0.1",
			Port:            8080,
			CORSOrigins:     []string{"http://localhost:3000"},
			ShutdownTimeout: 10 * time.Second,
		},
		Graph: Graph{
			Source:      SourceDemo,
			Size:        10000,
			Clusters:    10,
			Probability: 0.01,
			Seed:        1,
		},
		Search: Search{Algorithm: "astar", Workers: 4, Pairs: 10},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []error
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s must be an integer: %q", EnvPrefix, name, v))
				return
			}
			*dst = n
		}
	}

	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("HOST", &c.Server.Host)
	num("PORT", &c.Server.Port)
	if v, ok := lookup(EnvPrefix + "CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSHUTDOWN_TIMEOUT must be a duration: %q", EnvPrefix, v))
		} else {
			c.Server.ShutdownTimeout = d
		}
	}

	str("GRAPH_SOURCE", &c.Graph.Source)
	str("GRAPH_PATH", &c.Graph.Path)
	str("NODES_CSV", &c.Graph.NodesCSV)
	str("EDGES_CSV", &c.Graph.EdgesCSV)
	num("GRAPH_SIZE", &c.Graph.Size)
	num("GRAPH_CLUSTERS", &c.Graph.Clusters)
	if v, ok := lookup(EnvPrefix + "GRAPH_PROBABILITY"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sGRAPH_PROBABILITY must be a number: %q", EnvPrefix, v))
		} else {
			c.Graph.Probability = p
		}
	}
	if v, ok := lookup(EnvPrefix + "GRAPH_SEED"); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sGRAPH_SEED must be an integer: %q", EnvPrefix, v))
		} else {
			c.Graph.Seed = s
		}
	}

	str("ALGORITHM", &c.Search.Algorithm)
	num("WORKERS", &c.Search.Workers)
	num("PAIRS", &c.Search.Pairs)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
