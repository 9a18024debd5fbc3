package spmat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadSPMat parses the spmat text format:
//
//	line 1: N M
//	line 2: dc_max dv_max (advisory; recomputed and not trusted blindly)
//	line 3: M integers, dc[m]
//	line 4: N integers, dv[n]
//	lines 5..5+M-1: row m's dc[m] 1-indexed ascending column indices
//
// Tokens are whitespace-delimited and may cross line boundaries; the
// parser reads words, not lines, so stray reformatting of the file
// cannot desynchronize it.
func ReadSPMat(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}
	nextInt := func(field string) (int, error) {
		tok, ok := next()
		if !ok {
			return 0, fmt.Errorf("reading %s: unexpected EOF: %w", field, ErrParseFormat)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %q is not an integer: %w", field, tok, ErrParseFormat)
		}
		return v, nil
	}

	n, err := nextInt("N")
	if err != nil {
		return nil, err
	}
	m, err := nextInt("M")
	if err != nil {
		return nil, err
	}
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("N=%d M=%d must be positive: %w", n, m, ErrParseFormat)
	}

	// dc_max, dv_max are advisory; consume and discard.
	if _, err := nextInt("dc_max"); err != nil {
		return nil, err
	}
	if _, err := nextInt("dv_max"); err != nil {
		return nil, err
	}

	dc := make([]int, m)
	for i := range dc {
		v, err := nextInt(fmt.Sprintf("dc[%d]", i))
		if err != nil {
			return nil, err
		}
		dc[i] = v
	}

	dv := make([]int, n)
	for i := range dv {
		v, err := nextInt(fmt.Sprintf("dv[%d]", i))
		if err != nil {
			return nil, err
		}
		dv[i] = v
	}

	rows := make([][]int, m)
	for i := 0; i < m; i++ {
		row := make([]int, dc[i])
		for k := 0; k < dc[i]; k++ {
			v, err := nextInt(fmt.Sprintf("row %d entry %d", i, k))
			if err != nil {
				return nil, err
			}
			if v < 1 || v > n {
				return nil, fmt.Errorf("row %d entry %d value %d out of [1,%d]: %w", i, k, v, n, ErrParseFormat)
			}
			row[k] = v - 1 // wire is 1-indexed; internal representation is 0-indexed.
		}
		rows[i] = row
	}

	// The declared column weights must match the rows just read.
	colCount := make([]int, n)
	for _, row := range rows {
		for _, c := range row {
			colCount[c]++
		}
	}
	for i, w := range colCount {
		if w != dv[i] {
			return nil, fmt.Errorf("column %d has %d entries, declared dv=%d: %w", i, w, dv[i], ErrParseFormat)
		}
	}

	mat := &Matrix{N: n, M: m, DC: dc, DV: dv, Rows: rows}
	if err := mat.validate(); err != nil {
		return nil, err
	}
	return mat, nil
}

// WriteSPMat writes m in the spmat text format, converting internal
// 0-indexed columns back to the wire's 1-indexed convention.
func WriteSPMat(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", m.N, m.M); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n", m.MaxDC(), m.MaxDV()); err != nil {
		return err
	}
	if err := writeInts(bw, m.DC); err != nil {
		return err
	}
	if err := writeInts(bw, m.DV); err != nil {
		return err
	}
	for _, row := range m.Rows {
		oneIndexed := make([]int, len(row))
		for i, c := range row {
			oneIndexed[i] = c + 1
		}
		if err := writeInts(bw, oneIndexed); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeInts(w *bufio.Writer, xs []int) error {
	for i, x := range xs {
		if i > 0 {
			if _, err := w.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.Itoa(x)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}
