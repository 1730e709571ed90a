// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgraph/mapio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var out, nodesCSV, edgesCSV string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the configured graph and save it as binary and/or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" && (nodesCSV == "" || edgesCSV == "") {
				return errors.New("generate: give --out, or both --nodes-csv and --edges-csv")
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if out != "" {
				if err := mapio.SaveBinary(out, g); err != nil {
					return err
				}
				a.log.WithFields(logrus.Fields{"file": out}).Info("binary map saved")
			}
			if nodesCSV != "" && edgesCSV != "" {
				if err := mapio.SaveCSV(nodesCSV, edgesCSV, g); err != nil {
					return err
				}
				a.log.WithFields(logrus.Fields{"nodes_csv": nodesCSV, "edges_csv": edgesCSV}).Info("csv map saved")
			}
			_, err = fmt.Fprintf(a.out, "%d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "binary output file")
	cmd.Flags().StringVar(&nodesCSV, "nodes-csv", "", "CSV nodes output file")
	cmd.Flags().StringVar(&edgesCSV, "edges-csv", "", "CSV edges output file")

	return cmd
}
