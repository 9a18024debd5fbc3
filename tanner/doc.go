// Package tanner implements the structural model of a parity-check matrix
// H as a bipartite Tanner graph: N variable nodes, M check nodes, and one
// edge per 1-entry of H.
//
// The graph is built once, from a plain (N, M, dc, dv, rows) descriptor,
// and is never mutated afterward. Edges live in a single contiguous slice;
// each row and column is a singly-linked chain of edge indices threaded
// through the edge slice itself (NextInRow / NextInCol), with RowHead and
// ColHead giving the O(1) entry point into each chain. There is no
// per-edge heap allocation beyond the one backing array, and no pointer
// chasing across separate objects.
//
//   - Building a row's chain costs O(dc[m]); walking it costs O(1) per step.
//   - Building a column's chain costs O(dv[n]); walking it costs O(1) per step.
//
// Message state (the mutable q/r arena) is deliberately NOT part of this
// package; see beliefprop.Messages, which is indexed by the same edge IDs
// this package assigns.
package tanner
