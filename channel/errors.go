// errors.go — sentinel errors for the channel package.

package channel

import "errors"

var (
	// ErrNeedRandSource indicates NewSampler was called with a nil RNG.
	ErrNeedRandSource = errors.New("channel: rng is required")

	// ErrBadVariance indicates a non-positive sigma2 was supplied to a
	// sampling or likelihood routine.
	ErrBadVariance = errors.New("channel: variance must be positive")

	// ErrBadRate indicates Variance was asked to compute a noise variance
	// for a non-positive-rate code (N<=M or N<=0).
	ErrBadRate = errors.New("channel: code rate must be positive")
)
