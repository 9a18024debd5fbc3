package spmat

import "sort"

// BuildEncoder derives the encoder/decoder matrix pair from m: it runs
// strict Gauss-Jordan (aborting with ErrRankDeficient on any
// rank deficiency, per the strict/lenient split resolved in DESIGN.md),
// sorts rows by leader column, and builds a column permutation sending
// each row's leader to a prefix position so the reduced H becomes
// [I | P].
//
// It returns:
//   - encoder: the permuted, leader-sorted reduced H ([I|P]).
//   - decoder: m itself with the same column permutation applied,
//     preserving m's original row order (this is the H used by the
//     simulator).
//   - perm: the column permutation, perm[oldCol] = newCol.
//
// Complexity: dominated by GaussJordan, O(M^2 * N/64).
func BuildEncoder(m *Matrix) (encoder *Matrix, decoder *Matrix, perm []int, err error) {
	reduced, leaders, err := GaussJordan(m, false)
	if err != nil {
		return nil, nil, nil, err
	}

	sortedRows := make([]int, m.M)
	for i := range sortedRows {
		sortedRows[i] = i
	}
	sort.Slice(sortedRows, func(i, j int) bool {
		return leaders[sortedRows[i]] < leaders[sortedRows[j]]
	})

	// Clear each leader column from every other row, so the leader
	// columns form an identity block once permuted to the prefix.
	bits := make([]bitRow, m.M)
	for i, row := range reduced.Rows {
		bits[i] = newBitRow(m.N)
		bits[i].fromCols(row)
	}
	for i, l := range leaders {
		for j := range bits {
			if j != i && bits[j][l/wordBits]&(1<<uint(l%wordBits)) != 0 {
				bits[j].xorInto(bits[i])
			}
		}
	}
	isLeader := make([]bool, m.N)
	for _, l := range leaders {
		isLeader[l] = true
	}

	perm = make([]int, m.N)
	next := 0
	for _, ri := range sortedRows {
		perm[leaders[ri]] = next
		next++
	}
	for c := 0; c < m.N; c++ {
		if !isLeader[c] {
			perm[c] = next
			next++
		}
	}

	encRows := make([][]int, m.M)
	for newRowIdx, oldRowIdx := range sortedRows {
		encRows[newRowIdx] = permuteRow(bits[oldRowIdx].cols(m.N), perm)
	}
	encoder = &Matrix{N: m.N, M: m.M, Rows: encRows}
	encoder.recomputeWeights()

	decRows := make([][]int, m.M)
	for i, row := range m.Rows {
		decRows[i] = permuteRow(row, perm)
	}
	decoder = &Matrix{N: m.N, M: m.M, Rows: decRows}
	decoder.recomputeWeights()

	return encoder, decoder, perm, nil
}

// permuteRow maps each column of row through perm and returns the
// result sorted ascending.
func permuteRow(row []int, perm []int) []int {
	out := make([]int, len(row))
	for i, c := range row {
		out[i] = perm[c]
	}
	sort.Ints(out)
	return out
}
