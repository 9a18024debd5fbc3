package spmat

import (
	"fmt"
	"math/rand"
	"sort"
)

// RandomRegular constructs a random (dv, dc)-regular binary matrix over N
// columns, following original_source/mkmat.c: requires N mod dc ==
// 0; with s = N/dc, it emits dv row-blocks, each a random permutation of
// [0,N) partitioned into s groups of dc, each group sorted ascending.
// This yields M = s*dv rows, every column with weight exactly dv, every
// row with weight exactly dc.
//
// rng must be non-nil; seed it deterministically (e.g.
// rand.New(rand.NewSource(int64(seed)))) for reproducible matrices.
//
// Complexity: O(dv * N log N) time (dominated by the per-group sorts),
// O(N) extra space.
func RandomRegular(dv, dc, n int, rng *rand.Rand) (*Matrix, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	if dv <= 0 || dc <= 0 || n <= 0 || n%dc != 0 {
		return nil, fmt.Errorf("dv=%d dc=%d n=%d: %w", dv, dc, n, ErrBadDegree)
	}

	s := n / dc
	m := s * dv
	rows := make([][]int, 0, m)

	for t := 0; t < dv; t++ {
		perm := rng.Perm(n)
		for p := 0; p < s; p++ {
			group := append([]int(nil), perm[p*dc:(p+1)*dc]...)
			sort.Ints(group)
			rows = append(rows, group)
		}
	}

	mat := &Matrix{N: n, M: m, Rows: rows}
	mat.recomputeWeights()
	return mat, nil
}
