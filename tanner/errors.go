// errors.go — sentinel errors for the tanner package.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// Construction errors are wrapped with fmt.Errorf("%w", ...) context at
// the point of detection; the sentinels themselves carry no parameters.

package tanner

import "errors"

var (
	// ErrDimensionMismatch indicates the supplied dc/dv/rows slices do not
	// agree with the declared N and M (wrong lengths, or a row's listed
	// weight does not match len(rows[m])).
	ErrDimensionMismatch = errors.New("tanner: dimension mismatch in descriptor")

	// ErrZeroWeight indicates a row or column has weight zero. This is
	// always a hard error, including after any upstream column-deletion
	// preprocessing.
	ErrZeroWeight = errors.New("tanner: zero-weight row or column")

	// ErrColumnOrder indicates a row's column indices are not strictly
	// increasing, violating the traversal invariant required of C1.
	ErrColumnOrder = errors.New("tanner: row columns not strictly increasing")

	// ErrColumnRange indicates a column index in rows[m] falls outside [0,N).
	ErrColumnRange = errors.New("tanner: column index out of range")
)
