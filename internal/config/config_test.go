package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/search"
)

func env(vars map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())

	alg, err := cfg.Search.Parsed()
	require.NoError(t, err)
	assert.Equal(t, search.AStar, alg)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceDemo, cfg.Graph.Source)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
server:
  port: 9090
  cors_origins: [https://maps.example.org]
  shutdown_timeout: 3s
graph:
  source: nearest
  size: 500
  seed: 7
search:
  algorithm: dijkstra
  workers: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "unset keys keep defaults")
	assert.Equal(t, []string{"https://maps.example.org"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SourceNearest, cfg.Graph.Source)
	assert.Equal(t, 500, cfg.Graph.Size)
	assert.Equal(t, int64(7), cfg.Graph.Seed)
	assert.Equal(t, 10, cfg.Search.Pairs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "log: [not, a, map]\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "graph:\n  source: binary\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "server:\n  port: 9090\n")
	t.Setenv("NAVGRAPH_PORT", "7070")
	t.Setenv("NAVGRAPH_ALGORITHM", "BFS")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "BFS", cfg.Search.Algorithm)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(env(map[string]string{
		"NAVGRAPH_LOG_LEVEL":         "warn",
		"NAVGRAPH_HOST":              " 0.0.0.0 ",
		"NAVGRAPH_CORS_ORIGINS":      "http://a.test, http://b.test,,",
		"NAVGRAPH_SHUTDOWN_TIMEOUT":  "1m",
		"NAVGRAPH_GRAPH_SOURCE":      "csv",
		"NAVGRAPH_NODES_CSV":         "nodes.csv",
		"NAVGRAPH_EDGES_CSV":         "edges.csv",
		"NAVGRAPH_GRAPH_PROBABILITY": "0.2",
		"NAVGRAPH_GRAPH_SEED":        "-3",
		"NAVGRAPH_WORKERS":           "8",
	}))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SourceCSV, cfg.Graph.Source)
	assert.Equal(t, 0.2, cfg.Graph.Probability)
	assert.Equal(t, int64(-3), cfg.Graph.Seed)
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_BadNumbers(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(env(map[string]string{
		"NAVGRAPH_PORT":       "eighty",
		"NAVGRAPH_GRAPH_SEED": "x",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NAVGRAPH_PORT")
	assert.Contains(t, err.Error(), "NAVGRAPH_GRAPH_SEED")
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"empty host", func(c *Config) { c.Server.Host = "" }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port high", func(c *Config) { c.Server.Port = 70000 }},
		{"shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"wildcard cors", func(c *Config) { c.Server.CORSOrigins = []string{"*"} }},
		{"source", func(c *Config) { c.Graph.Source = "sqlite" }},
		{"binary without path", func(c *Config) { c.Graph.Source = SourceBinary }},
		{"csv without edges", func(c *Config) { c.Graph.Source = SourceCSV; c.Graph.NodesCSV = "n.csv" }},
		{"grid size", func(c *Config) { c.Graph.Source = SourceGrid; c.Graph.Size = 0 }},
		{"probability", func(c *Config) { c.Graph.Source = SourceRandom; c.Graph.Probability = 1.5 }},
		{"clusters", func(c *Config) { c.Graph.Source = SourceCity; c.Graph.Clusters = 0 }},
		{"algorithm", func(c *Config) { c.Search.Algorithm = "simplex" }},
		{"workers", func(c *Config) { c.Search.Workers = 0 }},
		{"pairs", func(c *Config) { c.Search.Pairs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
