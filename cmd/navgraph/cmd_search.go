// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/graph"
	"github.com/katalvlaran/navgraph/report"
	"github.com/katalvlaran/navgraph/search"
)

// parsePair reads the <from> <to> node ids.
func parsePair(args []string) (from, to int, err error) {
	if from, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("from: %q is not a node id", args[0])
	}
	if to, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("to: %q is not a node id", args[1])
	}

	return from, to, nil
}

func pathNames(g *graph.Graph, path []int) string {
	names := make([]string, len(path))
	for i, id := range path {
		names[i] = g.Node(id).Name()
	}

	return strings.Join(names, " -> ")
}

func newSearchCmd(a *app) *cobra.Command {
	var algName string
	cmd := &cobra.Command{
		Use:   "search <from> <to>",
		Short: "Find a path with one algorithm",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePair(args)
			if err != nil {
				return err
			}
			alg, err := a.cfg.Search.Parsed()
			if cmd.Flags().Changed("algorithm") {
				alg, err = search.ParseAlgorithm(algName)
			}
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			res, err := search.New(g).Run(alg, from, to)
			if err != nil {
				return err
			}
			if !res.PathFound {
				_, err = fmt.Fprintf(a.out, "%s: no path from %d to %d (%d nodes explored, %s)\n",
					alg, from, to, res.NodesExplored, res.TimeTaken)
				return err
			}
			_, err = fmt.Fprintf(a.out, "%s: %v\n  %s\n  distance %.3f, %d nodes explored, %s\n",
				alg, res.Path, pathNames(g, res.Path), res.TotalDistance, res.NodesExplored, res.TimeTaken)
			return err
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "dfs|bfs|dijkstra|best-first|astar (default from config)")

	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var large bool
	cmd := &cobra.Command{
		Use:   "compare <from> <to>",
		Short: "Run every algorithm on one pair and print a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePair(args)
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if large {
				return report.WriteTable(a.out, report.NewAnalyzer().CompareLarge(g, from, to))
			}

			return report.WriteComparison(a.out, search.New(g).Compare(from, to))
		},
	}
	cmd.Flags().BoolVar(&large, "large", false, "only BFS, Dijkstra and A*, with memory estimates")

	return cmd
}
