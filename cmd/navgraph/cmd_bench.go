// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/report"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		out     string
		pairs   int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run every algorithm over random pairs and write a performance report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("pairs") {
				pairs = a.cfg.Search.Pairs
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Search.Workers
			}
			if pairs < 1 || workers < 1 {
				return fmt.Errorf("bench: pairs=%d and workers=%d must be positive", pairs, workers)
			}

			an := report.NewAnalyzer()
			began := time.Now()
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			an.Add(report.Metrics{
				Algorithm:        "Construction (" + a.cfg.Graph.Source + ")",
				GraphSize:        g.NodeCount(),
				ConstructionTime: time.Since(began),
				MemoryBytes:      report.EstimateMemory(g),
			})

			rng := rand.New(rand.NewSource(a.cfg.Graph.Seed))
			ps := report.RandomPairs(rng, g, pairs)
			if len(ps) == 0 {
				return fmt.Errorf("bench: graph has %d nodes, need at least 2", g.NodeCount())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rows, err := an.RunSuite(ctx, g, ps, workers)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			a.log.WithFields(logrus.Fields{
				"pairs":   len(ps),
				"workers": workers,
				"runs":    len(rows),
				"elapsed": time.Since(began).String(),
			}).Info("benchmark finished")

			if out == "" {
				return an.WriteReport(a.out, time.Now())
			}
			if err := an.SaveReport(out, time.Now()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "report written to %s\n", out)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "report file (default stdout)")
	cmd.Flags().IntVar(&pairs, "pairs", 0, "random start/goal pairs (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel searches (default from config)")

	return cmd
}
