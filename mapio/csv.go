// SPDX-License-Identifier: MIT

package mapio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/navgraph/graph"
)

// ErrMalformed reports a CSV field that does not parse as the expected number.
var ErrMalformed = errors.New("mapio: malformed csv")

var (
	nodeHeader = []string{"id", "name", "x", "y"}
	edgeHeader = []string{"source", "destination", "weight"}
)

// rows calls fn for every record after the header that has at least
// minFields fields. line is the 1-based line number of the record.
func rows(r io.Reader, minFields int, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("mapio: read header: %w", err)
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("mapio: read csv: %w", err)
		}
		if len(rec) < minFields {
			continue
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func parseInt(line int, field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q", ErrMalformed, line, field, s)
	}

	return v, nil
}

func parseFloat(line int, field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q", ErrMalformed, line, field, s)
	}

	return v, nil
}

// ReadCSV builds a graph from a nodes stream and an edges stream.
func ReadCSV(nodes, edges io.Reader) (*graph.Graph, error) {
	g := graph.NewGraph()

	err := rows(nodes, len(nodeHeader), func(line int, rec []string) error {
		id, err := parseInt(line, "id", rec[0])
		if err != nil {
			return err
		}
		x, err := parseFloat(line, "x", rec[2])
		if err != nil {
			return err
		}
		y, err := parseFloat(line, "y", rec[3])
		if err != nil {
			return err
		}
		g.AddNode(graph.NewNode(id, rec[1], x, y))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}

	err = rows(edges, len(edgeHeader), func(line int, rec []string) error {
		src, err := parseInt(line, "source", rec[0])
		if err != nil {
			return err
		}
		dst, err := parseInt(line, "destination", rec[1])
		if err != nil {
			return err
		}
		w, err := parseFloat(line, "weight", rec[2])
		if err != nil {
			return err
		}
		g.Connect(src, dst, w)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	return g, nil
}

// LoadCSV reads the node and edge files at the given paths.
func LoadCSV(nodesPath, edgesPath string) (*graph.Graph, error) {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("mapio: open %s: %w", nodesPath, err)
	}
	defer nf.Close()

	ef, err := os.Open(edgesPath)
	if err != nil {
		return nil, fmt.Errorf("mapio: open %s: %w", edgesPath, err)
	}
	defer ef.Close()

	return ReadCSV(nf, ef)
}

// WriteCSV writes g as a nodes stream and an edges stream, headers included.
// Names containing commas or quotes are quoted.
func WriteCSV(nodes, edges io.Writer, g *graph.Graph) error {
	nw := csv.NewWriter(nodes)
	if err := nw.Write(nodeHeader); err != nil {
		return fmt.Errorf("mapio: write nodes: %w", err)
	}
	all := g.AllNodes()
	for i := range all {
		n := &all[i]
		rec := []string{strconv.Itoa(n.ID()), n.Name(), formatFloat(n.X()), formatFloat(n.Y())}
		if err := nw.Write(rec); err != nil {
			return fmt.Errorf("mapio: write nodes: %w", err)
		}
	}
	nw.Flush()
	if err := nw.Error(); err != nil {
		return fmt.Errorf("mapio: write nodes: %w", err)
	}

	ew := csv.NewWriter(edges)
	if err := ew.Write(edgeHeader); err != nil {
		return fmt.Errorf("mapio: write edges: %w", err)
	}
	for i := range all {
		for e := range g.Adjacencies(all[i].ID()).All() {
			rec := []string{strconv.Itoa(e.Source), strconv.Itoa(e.Destination), formatFloat(e.Weight)}
			if err := ew.Write(rec); err != nil {
				return fmt.Errorf("mapio: write edges: %w", err)
			}
		}
	}
	ew.Flush()
	if err := ew.Error(); err != nil {
		return fmt.Errorf("mapio: write edges: %w", err)
	}

	return nil
}

// SaveCSV writes g to the two files, replacing them.
func SaveCSV(nodesPath, edgesPath string, g *graph.Graph) (err error) {
	nf, err := os.Create(nodesPath)
	if err != nil {
		return fmt.Errorf("mapio: create %s: %w", nodesPath, err)
	}
	defer closeInto(nf, &err)

	ef, err := os.Create(edgesPath)
	if err != nil {
		return fmt.Errorf("mapio: create %s: %w", edgesPath, err)
	}
	defer closeInto(ef, &err)

	return WriteCSV(nf, ef, g)
}

func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("mapio: close: %w", cerr)
	}
}

// formatFloat uses the shortest representation that parses back exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
