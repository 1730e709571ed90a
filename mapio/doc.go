// SPDX-License-Identifier: MIT

// Package mapio reads and writes graph.Graph values in two formats.
//
// Binary layout (little endian, no header, no padding):
//
//	int32   node count N
//	N ×     int32 id, int32 name length L, L bytes name, float64 x, float64 y
//	N ×     int32 edge count M, then M × (int32 destination id, float64 weight)
//
// The edge blocks follow the node blocks in the same order: the k-th edge
// block belongs to the k-th node record. Writing then reading a graph
// reproduces node order, ids, names, coordinates and every edge with its
// weight, in adjacency order.
//
// CSV uses two files, each with one header line:
//
//	nodes:  id,name,x,y
//	edges:  source,destination,weight
//
// Rows with too few fields are skipped. Numbers that fail to parse abort the
// load with ErrMalformed and the offending line number. Nodes with duplicate
// ids and edges with unknown endpoints are dropped by the graph itself.
package mapio
