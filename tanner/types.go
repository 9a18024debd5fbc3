package tanner

// Edge is one 1-entry of H: the pair (Row, Col) plus the two chain links
// used to walk the row it belongs to and the column it belongs to without
// revisiting the whole edge slice.
//
// NextInRow and NextInCol are edge indices, or -1 to mark the end of a
// chain. Both chains are built once, at construction time, and never
// change afterward.
type Edge struct {
	Row, Col  int
	NextInRow int
	NextInCol int
}

// Graph is the immutable structural model of a parity-check matrix H.
// It is safe to share across any number of concurrently running decoder
// instances, since nothing in it is ever mutated after Build returns.
type Graph struct {
	N, M         int
	DV           []int // column (variable-node) weights, length N
	DC           []int // row (check-node) weights, length M
	DVMax, DCMax int

	Edges   []Edge
	RowHead []int // length M; index into Edges, or -1
	ColHead []int // length N; index into Edges, or -1
}

// NumEdges returns the total number of 1-entries in H, i.e. len(g.Edges).
func (g *Graph) NumEdges() int {
	return len(g.Edges)
}

// ForEachInRow walks the edges of row m in ascending-column order,
// calling fn(edgeID) for each. O(dc[m]) time, O(1) per step, no
// allocation.
func (g *Graph) ForEachInRow(m int, fn func(edgeID int)) {
	for e := g.RowHead[m]; e != -1; e = g.Edges[e].NextInRow {
		fn(e)
	}
}

// ForEachInCol walks the edges of column n in ascending-row order,
// calling fn(edgeID) for each. O(dv[n]) time, O(1) per step, no
// allocation.
func (g *Graph) ForEachInCol(n int, fn func(edgeID int)) {
	for e := g.ColHead[n]; e != -1; e = g.Edges[e].NextInCol {
		fn(e)
	}
}

// RowEdgeIDs returns the edge IDs of row m, in ascending-column order, as
// a freshly allocated slice. Convenience wrapper over ForEachInRow for
// callers that want a materialized slice (e.g. tests); the decoder's hot
// path uses ForEachInRow directly to avoid the allocation.
func (g *Graph) RowEdgeIDs(m int) []int {
	ids := make([]int, 0, g.DC[m])
	g.ForEachInRow(m, func(e int) { ids = append(ids, e) })
	return ids
}

// ColEdgeIDs returns the edge IDs of column n, in ascending-row order, as
// a freshly allocated slice. See RowEdgeIDs.
func (g *Graph) ColEdgeIDs(n int) []int {
	ids := make([]int, 0, g.DV[n])
	g.ForEachInCol(n, func(e int) { ids = append(ids, e) })
	return ids
}
