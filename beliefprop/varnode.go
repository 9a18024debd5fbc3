package beliefprop

import "github.com/wadatools/binldpc/tanner"

// UpdateVariable performs the downward/upward recursion for variable node
// n (C4), reading r0/r1 from msgs and the channel likelihood pair
// (chanA[n], chanB[n]), and writing:
//
//   - the extrinsic q0/q1 for every edge of column n back into msgs
//     (clamped away from exact zero),
//   - the posterior PostQ0[n]/PostQ1[n],
//   - the hard decision Decision[n].
//
// It returns the hard decision as an int (0 or 1) for the caller to
// accumulate into the block's error weight.
//
// sc must have been allocated via NewScratch(g) for the same graph.
//
// Complexity: O(dv[n]) time, O(1) extra space (beyond sc).
func UpdateVariable(g *tanner.Graph, msgs *Messages, sc *Scratch, n int, chanA, chanB []float64) int {
	sc.colEdges = sc.colEdges[:0]
	g.ForEachInCol(n, func(e int) { sc.colEdges = append(sc.colEdges, e) })
	d := len(sc.colEdges)

	d0, d1 := sc.d0, sc.d1
	u0, u1 := sc.u0, sc.u1

	// Downward pass.
	d0[0], d1[0] = 1, 1
	for i := 1; i <= d; i++ {
		e := sc.colEdges[i-1]
		u0i := msgs.R0[e]
		u1i := msgs.R1[e]

		t0 := u0i * d0[i-1]
		t1 := u1i * d1[i-1]
		sum := t0 + t1
		d0[i] = t0 / sum
		d1[i] = t1 / sum
	}

	// Upward pass.
	u0[d], u1[d] = 1, 1
	for i := d - 1; i >= 0; i-- {
		e := sc.colEdges[i]
		u0i := msgs.R0[e]
		u1i := msgs.R1[e]

		t0 := u0i * u0[i+1]
		t1 := u1i * u1[i+1]
		sum := t0 + t1
		u0[i] = t0 / sum
		u1[i] = t1 / sum
	}

	// Extrinsic outputs, clamped away from exact zero.
	for i := 0; i < d; i++ {
		e := sc.colEdges[i]
		q0 := d0[i] * u0[i+1]
		q1 := d1[i] * u1[i+1]
		sum := q0 + q1
		q0, q1 = q0/sum, q1/sum
		q0, q1 = clamp(q0, q1)
		msgs.Q0[e] = q0
		msgs.Q1[e] = q1
	}

	// Posterior and hard decision.
	a, bb := chanA[n], chanB[n]
	pq0 := a * u0[0]
	pq1 := bb * u1[0]
	sum := pq0 + pq1
	pq0, pq1 = pq0/sum, pq1/sum
	msgs.PostQ0[n] = pq0
	msgs.PostQ1[n] = pq1

	decision := uint8(0)
	if pq1 > pq0 {
		decision = 1
	}
	msgs.Decision[n] = decision

	return int(decision)
}

// clamp floors any component that would otherwise be exactly zero to
// epsilon, setting its partner to 1-epsilon so the pair still sums to 1.
func clamp(q0, q1 float64) (float64, float64) {
	if q0 == 0 {
		return epsilon, 1 - epsilon
	}
	if q1 == 0 {
		return 1 - epsilon, epsilon
	}
	return q0, q1
}
