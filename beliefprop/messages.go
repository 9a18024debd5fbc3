package beliefprop

import "github.com/wadatools/binldpc/tanner"

// epsilon is the floor applied to any message component that would
// otherwise become exactly zero. The clamp is applied only in the
// variable-node update (C4); see varnode.go.
const epsilon = 1e-8

// Messages is the mutable per-edge and per-variable message arena for one
// decoder instance. It is indexed by the edge IDs assigned by the
// tanner.Graph it was built from, and by variable index 0..N-1.
//
// Messages is not safe for concurrent use; each running decoder owns one.
type Messages struct {
	// Q0, Q1 are the variable->check messages on each edge.
	Q0, Q1 []float64
	// R0, R1 are the check->variable messages on each edge.
	R0, R1 []float64

	// PostQ0, PostQ1 are the per-variable pseudo-posteriors.
	PostQ0, PostQ1 []float64
	// Decision is the per-variable hard decision, 0 or 1.
	Decision []uint8
}

// NewMessages allocates a Messages arena sized for g. All slices are
// allocated once; ResetBlock below only overwrites their contents.
func NewMessages(g *tanner.Graph) *Messages {
	ne := g.NumEdges()
	return &Messages{
		Q0: make([]float64, ne),
		Q1: make([]float64, ne),
		R0: make([]float64, ne),
		R1: make([]float64, ne),

		PostQ0:   make([]float64, g.N),
		PostQ1:   make([]float64, g.N),
		Decision: make([]uint8, g.N),
	}
}

// ResetBlock re-initializes the arena at the start of a block: every edge's
// q0=q1=1 (unnormalized uniform prior). There is no requirement to reset
// r-values, since C3 always runs before C4 reads them within an iteration.
func (msgs *Messages) ResetBlock() {
	for i := range msgs.Q0 {
		msgs.Q0[i] = 1
		msgs.Q1[i] = 1
	}
}
