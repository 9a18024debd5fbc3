package channel

import (
	"fmt"
	"math"
	"math/rand"
)

// Option configures a Sampler. Mirrors the functional-options shape used
// throughout this module (see beliefprop.Option, simulate.Option):
// WithSeed/WithRand pairs patterned on builder/config.go, with
// option constructors validating and panicking on meaningless inputs
// rather than the algorithms themselves ever panicking.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets an explicit *rand.Rand source for randomness. Panics on
// nil: option constructors validate and panic, algorithms never do.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("channel: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded deterministically from a
// 32-bit integer, per spec.md §6's "a 32-bit integer seeds a
// deterministic uniform(0,1) source" contract.
func WithSeed(seed int32) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(int64(seed)))
	}
}

// Sampler draws N(0, sigma2) noise samples using the Marsaglia polar
// method. It is restartable across any number of blocks without bias:
// the method naturally produces samples in pairs, and Sampler carries the
// second sample of a pair forward to the next call rather than
// discarding it.
//
// Sampler is not safe for concurrent use; each decoder/driver instance
// that needs its own noise stream should own one Sampler.
type Sampler struct {
	rng *rand.Rand

	hasSpare bool
	spare    float64
}

// NewSampler builds a Sampler from opts. At least one of WithRand or
// WithSeed must be given; otherwise NewSampler reports ErrNeedRandSource.
func NewSampler(opts ...Option) (*Sampler, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	return &Sampler{rng: cfg.rng}, nil
}

// NewSeededSampler is a convenience wrapper equivalent to
// NewSampler(WithSeed(seed)); since WithSeed always produces a valid
// rng, this constructor cannot fail.
func NewSeededSampler(seed int32) *Sampler {
	s, _ := NewSampler(WithSeed(seed))
	return s
}

// standardNormal returns one sample from N(0,1) via the Marsaglia polar
// method. On every other call it returns the paired sample computed on
// the previous call, for zero wasted entropy.
func (s *Sampler) standardNormal() float64 {
	if s.hasSpare {
		s.hasSpare = false
		return s.spare
	}

	var u, v, sq float64
	for {
		u = 2*s.rng.Float64() - 1
		v = 2*s.rng.Float64() - 1
		sq = u*u + v*v
		if sq > 0 && sq < 1 {
			break
		}
	}
	mul := math.Sqrt(-2 * math.Log(sq) / sq)
	s.spare = v * mul
	s.hasSpare = true
	return u * mul
}

// Sample draws n channel values y_i = 1 + z_i, z_i ~ N(0, sigma2), i.e.
// the BPSK-mapped, all-zeros-transmitted received word.
func (s *Sampler) Sample(n int, sigma2 float64) ([]float64, error) {
	if sigma2 <= 0 {
		return nil, ErrBadVariance
	}
	sigma := math.Sqrt(sigma2)
	y := make([]float64, n)
	for i := range y {
		y[i] = 1 + sigma*s.standardNormal()
	}
	return y, nil
}

// Variance computes the per-channel-use noise variance:
//
//	sigma2 = 0.5 * 10^(-snr/10) * N/(N-M)
//
// for a code of rate (N-M)/N at bit-energy-to-noise ratio snr (dB).
func Variance(snrDB float64, n, m int) (float64, error) {
	if n <= 0 || n <= m {
		return 0, fmt.Errorf("channel: N=%d M=%d: %w", n, m, ErrBadRate)
	}
	rateInv := float64(n) / float64(n-m)
	return 0.5 * math.Pow(10, -snrDB/10) * rateInv, nil
}

// Likelihoods computes the unnormalized per-symbol channel likelihoods
// a=p(y|0)=exp(+y/sigma2), b=p(y|1)=exp(-y/sigma2) for every element of
// y.
func Likelihoods(y []float64, sigma2 float64) (a, b []float64, err error) {
	if sigma2 <= 0 {
		return nil, nil, ErrBadVariance
	}
	a = make([]float64, len(y))
	b = make([]float64, len(y))
	for i, yi := range y {
		a[i] = math.Exp(yi / sigma2)
		b[i] = math.Exp(-yi / sigma2)
	}
	return a, b, nil
}
