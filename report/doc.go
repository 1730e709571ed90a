// SPDX-License-Identifier: MIT

// Package report measures graph construction and path searches and renders
// the measurements as text.
//
// An Analyzer accumulates Metrics rows. RunSuite runs every algorithm over a
// list of start/goal pairs on a bounded pool of workers, each with its own
// search.Searcher; CompareLarge runs the three algorithms that scale to
// million-node maps. WriteReport prints every row followed by per-algorithm
// summaries. WriteComparison prints one search.Comparison side by side.
//
// Memory figures are estimates of the graph's resident size derived from
// node and edge counts, not measurements of the heap.
package report
