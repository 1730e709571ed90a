// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/navgraph/search"
)

const notAvailable = "N/A"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func megabytes(b int64) string {
	return strconv.FormatFloat(float64(b)/(1<<20), 'f', 2, 64)
}

func distance(found bool, d float64) string {
	if !found {
		return notAvailable
	}

	return strconv.FormatFloat(d, 'f', 3, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// WriteTable prints rows as an aligned table, one line per row.
func WriteTable(w io.Writer, rows []Metrics) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Algorithm\tNodes\tStart\tGoal\tTime\tExplored\tDistance\tMemory(MB)\tFound")
	for _, m := range rows {
		elapsed := m.SearchTime
		if m.ConstructionTime > 0 {
			elapsed = m.ConstructionTime
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%d\t%s\t%s\t%s\n",
			m.Algorithm, m.GraphSize, m.Start, m.Goal, elapsed, m.NodesExplored,
			distance(m.PathFound, m.Distance), megabytes(m.MemoryBytes), yesNo(m.PathFound))
	}

	return tw.Flush()
}

// WriteReport prints every recorded row and a summary per algorithm.
func (a *Analyzer) WriteReport(w io.Writer, generatedAt time.Time) error {
	rows := a.Results()

	if _, err := fmt.Fprintf(w, "=== PERFORMANCE REPORT ===\nGenerated: %s\nTotal runs: %d\n\n",
		generatedAt.UTC().Format(time.RFC3339), len(rows)); err != nil {
		return err
	}
	if err := WriteTable(w, rows); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "\n=== SUMMARY ===\n"); err != nil {
		return err
	}
	for _, s := range summarize(rows) {
		_, err := fmt.Fprintf(w, "%s:\n  searches: %d\n  successful: %d (%.1f%%)\n  mean time: %s\n  mean nodes explored: %.1f\n\n",
			s.Algorithm, s.Total, s.Successful, s.SuccessRate, s.MeanTime, s.MeanNodes)
		if err != nil {
			return err
		}
	}

	return nil
}

// SaveReport writes the report to the file at path, replacing it.
func (a *Analyzer) SaveReport(path string, generatedAt time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()

	return a.WriteReport(f, generatedAt)
}

// WriteComparison prints c side by side and names the best algorithm.
func WriteComparison(w io.Writer, c search.Comparison) error {
	if _, err := fmt.Fprintf(w, "Route %d -> %d\n", c.Start, c.Goal); err != nil {
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "Algorithm\tFound\tDistance\tExplored\tTime\tPath")
	for _, e := range c.Entries {
		r := e.Result
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%v\n",
			e.Algorithm, yesNo(r.PathFound), distance(r.PathFound, r.TotalDistance), r.NodesExplored, r.TimeTaken, r.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	best, ok := c.Best()
	if !ok {
		_, err := fmt.Fprintln(w, "No algorithm found a path.")
		return err
	}
	_, err := fmt.Fprintf(w, "Best: %s (distance %s, %d nodes explored)\n",
		best.Algorithm, distance(true, best.Result.TotalDistance), best.Result.NodesExplored)

	return err
}
