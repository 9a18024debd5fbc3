package beliefprop

import "github.com/wadatools/binldpc/tanner"

// UpdateCheck performs the BCJR-style forward/backward recursion for
// check node m (C3), reading q0/q1 from msgs and the channel likelihoods
// chanA=p(y|0), chanB=p(y|1) (indexed by variable), and writing the
// extrinsic r0/r1 for every edge of row m back into msgs.
//
// sc must have been allocated via NewScratch(g) for the same graph; its
// buffers are reused in place, so UpdateCheck allocates nothing.
//
// Complexity: O(dc[m]) time, O(1) extra space (beyond sc, owned by the
// caller).
func UpdateCheck(g *tanner.Graph, msgs *Messages, sc *Scratch, m int, chanA, chanB []float64) {
	sc.rowEdges = sc.rowEdges[:0]
	g.ForEachInRow(m, func(e int) { sc.rowEdges = append(sc.rowEdges, e) })
	d := len(sc.rowEdges)

	f0, f1 := sc.f0, sc.f1
	b0, b1 := sc.b0, sc.b1

	// Forward pass.
	f0[0], f1[0] = 1, 0
	for i := 1; i <= d; i++ {
		e := sc.rowEdges[i-1]
		n := g.Edges[e].Col
		a := chanA[n]
		bb := chanB[n]
		s := msgs.Q0[e]
		t := msgs.Q1[e]

		t0 := a*s*f0[i-1] + bb*t*f1[i-1]
		t1 := bb*t*f0[i-1] + a*s*f1[i-1]
		sum := t0 + t1
		f0[i] = t0 / sum
		f1[i] = t1 / sum
	}
	f1[d] = 0 // parity-even boundary condition; not redundant, keep.

	// Backward pass.
	b0[d], b1[d] = 1, 0
	for i := d - 1; i >= 0; i-- {
		e := sc.rowEdges[i]
		n := g.Edges[e].Col
		a := chanA[n]
		bb := chanB[n]
		s := msgs.Q0[e]
		t := msgs.Q1[e]

		t0 := a*s*b0[i+1] + bb*t*b1[i+1]
		t1 := bb*t*b0[i+1] + a*s*b1[i+1]
		sum := t0 + t1
		b0[i] = t0 / sum
		b1[i] = t1 / sum
	}
	b1[0] = 0 // boundary condition; not redundant, keep.

	// Extrinsic outputs.
	for i := 0; i < d; i++ {
		e := sc.rowEdges[i]
		msgs.R0[e] = f0[i]*b0[i+1] + f1[i]*b1[i+1]
		msgs.R1[e] = f0[i]*b1[i+1] + f1[i]*b0[i+1]
	}
}
