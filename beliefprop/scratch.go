package beliefprop

import "github.com/wadatools/binldpc/tanner"

// Scratch holds the temporary recursion buffers for the check-node and
// variable-node updates, sized once to the graph's DCMax/DVMax and reused
// across every row/column of every iteration. No per-iteration allocation
// occurs anywhere in this package; Scratch is the whole of that resource
// budget.
type Scratch struct {
	// Forward/backward buffers for the check-node update, length DCMax+1.
	f0, f1 []float64
	b0, b1 []float64

	// Down/up buffers for the variable-node update, length DVMax+1.
	d0, d1 []float64
	u0, u1 []float64

	// per-row / per-column temporaries holding the edge IDs visited on the
	// current pass, capacity DCMax / DVMax.
	rowEdges []int
	colEdges []int
}

// NewScratch allocates a Scratch sized for g.
func NewScratch(g *tanner.Graph) *Scratch {
	return &Scratch{
		f0: make([]float64, g.DCMax+1),
		f1: make([]float64, g.DCMax+1),
		b0: make([]float64, g.DCMax+1),
		b1: make([]float64, g.DCMax+1),

		d0: make([]float64, g.DVMax+1),
		d1: make([]float64, g.DVMax+1),
		u0: make([]float64, g.DVMax+1),
		u1: make([]float64, g.DVMax+1),

		rowEdges: make([]int, 0, g.DCMax),
		colEdges: make([]int, 0, g.DVMax),
	}
}
