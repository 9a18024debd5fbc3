// errors.go — sentinel errors for the simulate package.

package simulate

import "errors"

var (
	// ErrNeedDecoder indicates NewDriver was called with a nil decoder.
	ErrNeedDecoder = errors.New("simulate: decoder is required")

	// ErrNeedSampler indicates NewDriver was called with a nil sampler.
	ErrNeedSampler = errors.New("simulate: sampler is required")

	// ErrBadThreshold indicates a non-positive stop threshold was supplied.
	ErrBadThreshold = errors.New("simulate: stop threshold must be positive")

	// ErrBadVariance indicates a non-positive channel variance was supplied.
	ErrBadVariance = errors.New("simulate: variance must be positive")
)
