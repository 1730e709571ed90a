// SPDX-License-Identifier: MIT

package mapio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/navgraph/graph"
)

var (
	// ErrCorrupt reports a binary stream that ends early or carries an
	// impossible count or length.
	ErrCorrupt = errors.New("mapio: corrupt binary map")

	// ErrRange reports a value that does not fit the binary layout (an id, a
	// count or a name length outside int32).
	ErrRange = errors.New("mapio: value out of int32 range")
)

// MaxNameLength bounds the name length accepted by ReadBinary.
const MaxNameLength = 1 << 16

var order = binary.LittleEndian

// binWriter accumulates the first write error.
type binWriter struct {
	w   *bufio.Writer
	buf [8]byte
	err error
}

func (b *binWriter) putInt(v int) {
	if b.err != nil {
		return
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		b.err = fmt.Errorf("%w: %d", ErrRange, v)
		return
	}
	order.PutUint32(b.buf[:4], uint32(int32(v)))
	_, b.err = b.w.Write(b.buf[:4])
}

func (b *binWriter) putFloat(v float64) {
	if b.err != nil {
		return
	}
	order.PutUint64(b.buf[:8], math.Float64bits(v))
	_, b.err = b.w.Write(b.buf[:8])
}

func (b *binWriter) putString(s string) {
	if b.err != nil {
		return
	}
	_, b.err = b.w.WriteString(s)
}

// WriteBinary encodes g to w.
func WriteBinary(w io.Writer, g *graph.Graph) error {
	bw := &binWriter{w: bufio.NewWriter(w)}
	nodes := g.AllNodes()

	bw.putInt(len(nodes))
	for i := range nodes {
		n := &nodes[i]
		bw.putInt(n.ID())
		bw.putInt(len(n.Name()))
		bw.putString(n.Name())
		bw.putFloat(n.X())
		bw.putFloat(n.Y())
	}
	for i := range nodes {
		adj := g.Adjacencies(nodes[i].ID())
		bw.putInt(adj.Len())
		for e := range adj.All() {
			bw.putInt(e.Destination)
			bw.putFloat(e.Weight)
		}
	}
	if bw.err != nil {
		return fmt.Errorf("mapio: write binary: %w", bw.err)
	}
	if err := bw.w.Flush(); err != nil {
		return fmt.Errorf("mapio: write binary: %w", err)
	}

	return nil
}

// binReader turns short reads into ErrCorrupt.
type binReader struct {
	r   *bufio.Reader
	buf [8]byte
	err error
}

func (b *binReader) fill(n int, what string) bool {
	if b.err != nil {
		return false
	}
	if _, err := io.ReadFull(b.r, b.buf[:n]); err != nil {
		b.err = fmt.Errorf("%w: reading %s: %w", ErrCorrupt, what, err)
		return false
	}

	return true
}

func (b *binReader) readInt(what string) int {
	if !b.fill(4, what) {
		return 0
	}

	return int(int32(order.Uint32(b.buf[:4])))
}

// readCount reads a non-negative int32.
func (b *binReader) readCount(what string, limit int) int {
	v := b.readInt(what)
	if b.err == nil && (v < 0 || v > limit) {
		b.err = fmt.Errorf("%w: %s %d", ErrCorrupt, what, v)
		return 0
	}

	return v
}

func (b *binReader) readFloat(what string) float64 {
	if !b.fill(8, what) {
		return 0
	}

	return math.Float64frombits(order.Uint64(b.buf[:8]))
}

func (b *binReader) readString(n int) string {
	if b.err != nil || n == 0 {
		return ""
	}
	p := make([]byte, n)
	if _, err := io.ReadFull(b.r, p); err != nil {
		b.err = fmt.Errorf("%w: reading name: %w", ErrCorrupt, err)
		return ""
	}

	return string(p)
}

// ReadBinary decodes a graph from r. The k-th edge block is attached to the
// k-th node record. When the stream repeats a node id, only the first record
// is stored and edges from later records go to that first node.
func ReadBinary(r io.Reader) (*graph.Graph, error) {
	br := &binReader{r: bufio.NewReader(r)}

	n := br.readCount("node count", math.MaxInt32)
	if br.err != nil {
		return nil, br.err
	}
	g := graph.NewGraph(graph.WithCapacity(min(n, 1<<20)))
	ids := make([]int, 0, min(n, 1<<20))
	for i := 0; i < n && br.err == nil; i++ {
		id := br.readInt("node id")
		name := br.readString(br.readCount("name length", MaxNameLength))
		x := br.readFloat("x")
		y := br.readFloat("y")
		if br.err == nil {
			g.AddNode(graph.NewNode(id, name, x, y))
			ids = append(ids, id)
		}
	}
	for _, src := range ids {
		m := br.readCount("edge count", math.MaxInt32)
		for j := 0; j < m && br.err == nil; j++ {
			dst := br.readInt("destination")
			w := br.readFloat("weight")
			if br.err == nil {
				g.Connect(src, dst, w)
			}
		}
		if br.err != nil {
			break
		}
	}
	if br.err != nil {
		return nil, br.err
	}

	return g, nil
}

// SaveBinary writes g to the file at path, replacing it.
func SaveBinary(path string, g *graph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapio: create %s: %w", path, err)
	}
	defer closeInto(f, &err)

	return WriteBinary(f, g)
}

// LoadBinary reads a graph from the file at path.
func LoadBinary(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadBinary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
