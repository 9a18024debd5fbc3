package beliefprop

import "github.com/wadatools/binldpc/tanner"

// SyndromeZero reports whether the current hard-decision vector in msgs
// is a codeword of g: for every row m, the XOR of the decisions incident
// to that row must be zero. It returns false on the first violating row.
//
// Complexity: O(|E|) worst case, O(1) extra space.
func SyndromeZero(g *tanner.Graph, msgs *Messages) bool {
	for m := 0; m < g.M; m++ {
		parity := uint8(0)
		g.ForEachInRow(m, func(e int) {
			parity ^= msgs.Decision[g.Edges[e].Col]
		})
		if parity != 0 {
			return false
		}
	}
	return true
}
