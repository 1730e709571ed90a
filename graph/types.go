// SPDX-License-Identifier: MIT

package graph

import "math"

// DefaultWeight is the weight used by callers that have no better value.
const DefaultWeight = 1.0

// NoEdge is returned by EdgeWeight when no edge joins the pair.
const NoEdge = -1.0

// Node is a named location with planar coordinates.
//
// The id is fixed at creation; name and coordinates may be updated.
// Two nodes are equal when their ids are equal.
type Node struct {
	id   int
	name string
	x, y float64
}

// NewNode returns a Node with the given id, display name and coordinates.
func NewNode(id int, name string, x, y float64) Node {
	return Node{id: id, name: name, x: x, y: y}
}

// ID returns the node identifier.
func (n *Node) ID() int { return n.id }

// Name returns the display label. Names are not required to be unique.
func (n *Node) Name() string { return n.name }

// X returns the horizontal coordinate.
func (n *Node) X() float64 { return n.x }

// Y returns the vertical coordinate.
func (n *Node) Y() float64 { return n.y }

// SetName replaces the display label.
func (n *Node) SetName(name string) { n.name = name }

// SetCoordinates moves the node.
func (n *Node) SetCoordinates(x, y float64) { n.x, n.y = x, y }

// Equal reports whether both nodes carry the same id.
func (n *Node) Equal(other *Node) bool {
	return other != nil && n.id == other.id
}

// Distance returns the Euclidean distance between the two nodes. other must
// not be nil.
func (n *Node) Distance(other *Node) float64 {
	return math.Hypot(n.x-other.x, n.y-other.y)
}

// Edge is a directed, weighted connection between two node ids.
type Edge struct {
	Source      int
	Destination int
	Weight      float64
}

// NewEdge returns an Edge from source to destination.
func NewEdge(source, destination int, weight float64) Edge {
	return Edge{Source: source, Destination: destination, Weight: weight}
}

// Equal reports whether both edges join the same ordered pair.
// Weights are ignored.
func (e Edge) Equal(other Edge) bool {
	return e.Source == other.Source && e.Destination == other.Destination
}

// Less orders edges by weight.
func (e Edge) Less(other Edge) bool { return e.Weight < other.Weight }
