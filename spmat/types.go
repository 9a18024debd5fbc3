package spmat

import "fmt"

// Matrix is the logical, 0-indexed, ascending-per-row representation of a
// parity-check matrix H, as read from or destined for the spmat text
// format. All columns inside Rows[m] are 0-indexed and strictly
// increasing, matching the invariant tanner.Build requires.
type Matrix struct {
	N, M int
	DC   []int // row weights, length M
	DV   []int // column weights, length N
	Rows [][]int
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		N: m.N, M: m.M,
		DC:   append([]int(nil), m.DC...),
		DV:   append([]int(nil), m.DV...),
		Rows: make([][]int, len(m.Rows)),
	}
	for i, row := range m.Rows {
		out.Rows[i] = append([]int(nil), row...)
	}
	return out
}

// validate checks internal consistency: DC/DV lengths, row lengths vs.
// DC, column range and ordering. It does not check for zero weight,
// since several C9 routines legitimately produce or consume zero-weight
// intermediate rows/columns (see GaussJordan's lenient mode).
func (m *Matrix) validate() error {
	if len(m.DC) != m.M {
		return fmt.Errorf("len(DC)=%d, want M=%d: %w", len(m.DC), m.M, ErrDimensionMismatch)
	}
	if len(m.DV) != m.N {
		return fmt.Errorf("len(DV)=%d, want N=%d: %w", len(m.DV), m.N, ErrDimensionMismatch)
	}
	if len(m.Rows) != m.M {
		return fmt.Errorf("len(Rows)=%d, want M=%d: %w", len(m.Rows), m.M, ErrDimensionMismatch)
	}
	for i, row := range m.Rows {
		if len(row) != m.DC[i] {
			return fmt.Errorf("row %d has %d entries, DC=%d: %w", i, len(row), m.DC[i], ErrDimensionMismatch)
		}
		prev := -1
		for _, c := range row {
			if c < 0 || c >= m.N {
				return fmt.Errorf("row %d column %d out of [0,%d): %w", i, c, m.N, ErrColumnRange)
			}
			if c <= prev {
				return fmt.Errorf("row %d columns not strictly increasing at %d: %w", i, c, ErrColumnOrder)
			}
			prev = c
		}
	}
	return nil
}

// recomputeWeights rebuilds DC/DV (and therefore DCMax/DVMax via
// MaxDC/MaxDV) from Rows. Call this after any transform that adds or
// removes entries without maintaining DC/DV incrementally.
func (m *Matrix) recomputeWeights() {
	m.DC = make([]int, m.M)
	m.DV = make([]int, m.N)
	for i, row := range m.Rows {
		m.DC[i] = len(row)
		for _, c := range row {
			m.DV[c]++
		}
	}
}

// MaxDC returns max(DC), the row-weight bound dc_max.
func (m *Matrix) MaxDC() int { return maxOf(m.DC) }

// MaxDV returns max(DV), the column-weight bound dv_max.
func (m *Matrix) MaxDV() int { return maxOf(m.DV) }

func maxOf(xs []int) int {
	best := 0
	for _, x := range xs {
		if x > best {
			best = x
		}
	}
	return best
}
