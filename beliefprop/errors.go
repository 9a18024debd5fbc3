// errors.go — sentinel errors for the beliefprop package.

package beliefprop

import "errors"

var (
	// ErrGraphNil indicates a nil *tanner.Graph was passed to a constructor.
	ErrGraphNil = errors.New("beliefprop: graph is nil")

	// ErrLikelihoodLength indicates the supplied channel likelihood slices
	// (a, b) do not have length equal to the graph's N.
	ErrLikelihoodLength = errors.New("beliefprop: likelihood slice length mismatch")
)
