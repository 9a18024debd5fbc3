package beliefprop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadatools/binldpc/beliefprop"
)

// General invariant 1: after C4, every edge's q0+q1 sums to 1 (within
// 1e-12) and every variable's posterior Q0+Q1 sums to 1.
func TestUpdateVariableNormalization(t *testing.T) {
	g := smallGraph(t)
	msgs := beliefprop.NewMessages(g)
	sc := beliefprop.NewScratch(g)

	// column 0's edges (rows 0 and 2); ordinary, non-degenerate r-values,
	// nowhere near the clamp boundary.
	edges := g.ColEdgeIDs(0)
	require.Len(t, edges, 2)
	msgs.R0[edges[0]], msgs.R1[edges[0]] = 0.7, 0.3
	msgs.R0[edges[1]], msgs.R1[edges[1]] = 0.4, 0.6

	chanA := []float64{1.2, 1, 1}
	chanB := []float64{0.8, 1, 1}

	beliefprop.UpdateVariable(g, msgs, sc, 0, chanA, chanB)

	for _, e := range edges {
		sum := msgs.Q0[e] + msgs.Q1[e]
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
	assert.InDelta(t, 1.0, msgs.PostQ0[0]+msgs.PostQ1[0], 1e-12)
}

// General invariant 2: after C4, no q component is exactly 0; every
// clamped component lies in [epsilon, 1-epsilon]. This drives r-values
// that would otherwise push one edge's extrinsic q to exactly zero (an
// edge whose check-to-variable message is maximally certain of the
// other polarity).
func TestUpdateVariableClampsExactZeroToEpsilon(t *testing.T) {
	const epsilon = 1e-8

	g := smallGraph(t)
	msgs := beliefprop.NewMessages(g)
	sc := beliefprop.NewScratch(g)

	edges := g.ColEdgeIDs(0)
	require.Len(t, edges, 2)

	// edge0: neutral message, does not by itself force a zero output.
	msgs.R0[edges[0]], msgs.R1[edges[0]] = 1, 1
	// edge1: maximally certain the bit is 1 (r0 exactly 0), which would
	// otherwise make edge0's extrinsic q0 exactly zero.
	msgs.R0[edges[1]], msgs.R1[edges[1]] = 0, 1

	chanA := []float64{1, 1, 1}
	chanB := []float64{1, 1, 1}

	beliefprop.UpdateVariable(g, msgs, sc, 0, chanA, chanB)

	for _, e := range edges {
		q0, q1 := msgs.Q0[e], msgs.Q1[e]
		assert.InDelta(t, 1.0, q0+q1, 1e-12)
		assert.NotEqual(t, float64(0), q0)
		assert.NotEqual(t, float64(0), q1)
		assert.GreaterOrEqual(t, q0, epsilon)
		assert.LessOrEqual(t, q0, 1-epsilon)
		assert.GreaterOrEqual(t, q1, epsilon)
		assert.LessOrEqual(t, q1, 1-epsilon)
	}

	// edge0 is the one driven to exactly zero pre-clamp; confirm the
	// clamp actually fired rather than the input happening not to need it.
	assert.InDelta(t, epsilon, msgs.Q0[edges[0]], 1e-12)
	assert.InDelta(t, 1-epsilon, msgs.Q1[edges[0]], 1e-12)
}

