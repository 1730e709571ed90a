// SPDX-License-Identifier: MIT

// Command navgraph builds, loads, searches and serves navigation graphs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/internal/config"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/katalvlaran/navgraph/internal/source"
)

// Build-time variable set via ldflags.
var version = "0.1.0-dev"

// app carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type app struct {
	cfgPath  string
	logLevel string

	// graph overrides; applied only when the flag was set
	source string
	path   string
	size   int
	seed   int64

	cfg config.Config
	log *logrus.Logger
	out io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "navgraph",
		Short:         "navgraph: shortest paths over weighted maps",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file (env: NAVGRAPH_*)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level, overrides the config file")
	pf.StringVar(&a.source, "source", "", "graph source: demo|binary|csv|grid|random|city|nearest")
	pf.StringVar(&a.path, "path", "", "binary map file for --source binary")
	pf.IntVar(&a.size, "size", 0, "node count for generated sources")
	pf.Int64Var(&a.seed, "seed", 0, "seed for generated sources")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("source") {
		cfg.Graph.Source = a.source
	}
	if flags.Changed("path") {
		cfg.Graph.Path = a.path
	}
	if flags.Changed("size") {
		cfg.Graph.Size = a.size
	}
	if flags.Changed("seed") {
		cfg.Graph.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.out = cmd.OutOrStdout()

	return nil
}

// loadGraph opens the configured source and logs its size.
func (a *app) loadGraph() (*graph.Graph, error) {
	g, err := source.Open(a.cfg.Graph)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	a.log.WithFields(logrus.Fields{
		"source": a.cfg.Graph.Source,
		"nodes":  g.NodeCount(),
		"edges":  g.EdgeCount(),
	}).Info("graph loaded")

	return g, nil
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
