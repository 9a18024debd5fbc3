package beliefprop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadatools/binldpc/beliefprop"
	"github.com/wadatools/binldpc/tanner"
)

func likelihoods(y []float64, sigma2 float64) (a, b []float64) {
	a = make([]float64, len(y))
	b = make([]float64, len(y))
	for i, yi := range y {
		a[i] = math.Exp(yi / sigma2)
		b[i] = math.Exp(-yi / sigma2)
	}
	return a, b
}

// S1: a single check row over a noiseless-looking received vector (y=1
// everywhere) with uniform priors must produce r0+r1=1 on every edge and
// r0 > r1 on every edge, since the channel favors bit 0 uniformly.
func TestUpdateCheckNormalizationAndSign(t *testing.T) {
	n, m := 4, 1
	dc := []int{4}
	dv := []int{1, 1, 1, 1}
	rows := [][]int{{0, 1, 2, 3}}

	g, err := tanner.Build(n, m, dc, dv, rows)
	require.NoError(t, err)

	msgs := beliefprop.NewMessages(g)
	msgs.ResetBlock()
	sc := beliefprop.NewScratch(g)

	y := []float64{1, 1, 1, 1}
	a, b := likelihoods(y, 0.5)

	beliefprop.UpdateCheck(g, msgs, sc, 0, a, b)

	edges := g.RowEdgeIDs(0)
	for _, e := range edges {
		sum := msgs.R0[e] + msgs.R1[e]
		assert.InDelta(t, 1.0, sum, 1e-12)
		assert.Greater(t, msgs.R0[e], msgs.R1[e])
	}
}
