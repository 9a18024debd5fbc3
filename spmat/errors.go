// errors.go — sentinel errors for the spmat package.

package spmat

import "errors"

var (
	// ErrParseFormat indicates malformed spmat text input: wrong token
	// count, non-integer token, or a declared count that does not match
	// the tokens that follow it. Always fatal.
	ErrParseFormat = errors.New("spmat: malformed spmat input")

	// ErrDimensionMismatch indicates inconsistent N/M/DC/DV/Rows.
	ErrDimensionMismatch = errors.New("spmat: dimension mismatch")

	// ErrColumnRange indicates a row references a column outside [0,N).
	ErrColumnRange = errors.New("spmat: column index out of range")

	// ErrColumnOrder indicates a row's columns are not strictly increasing.
	ErrColumnOrder = errors.New("spmat: row columns not strictly increasing")

	// ErrRankDeficient indicates strict Gauss-Jordan (as used by
	// BuildEncoder) encountered a zero-weight row, i.e. H is not full
	// row rank. Fatal: encoder extraction cannot proceed.
	ErrRankDeficient = errors.New("spmat: matrix is not full rank")

	// ErrNeedRandSource indicates RandomRegular was called with a nil RNG.
	ErrNeedRandSource = errors.New("spmat: rng is required")

	// ErrBadDegree indicates RandomRegular's n is not a multiple of dc,
	// or dv/dc/n are non-positive.
	ErrBadDegree = errors.New("spmat: n must be a positive multiple of dc")
)
