package simulate

import (
	"fmt"

	"github.com/wadatools/binldpc/beliefprop"
	"github.com/wadatools/binldpc/channel"
)

// StopMode selects which counter the stop policy watches.
type StopMode int

const (
	// StopOnErrorBits stops once ErrorBits reaches the threshold (mode 0).
	StopOnErrorBits StopMode = 0
	// StopOnErrorBlocks stops once ErrorBlocks reaches the threshold (mode 1).
	StopOnErrorBlocks StopMode = 1
)

// BlockStats describes the outcome of one decoded block, passed to an
// OnBlock hook (see WithOnBlock) after every block.
type BlockStats struct {
	BlockIndex  int
	Success     bool
	Iterations  int
	ErrorWeight int
}

// Option configures a Driver. Mirrors the functional-options shape used
// by beliefprop and channel.
type Option func(*config)

type config struct {
	stopMode  StopMode
	threshold int
	onBlock   func(BlockStats)
}

// WithStopPolicy sets the stop mode and threshold. Optional: NewDriver
// defaults to (StopOnErrorBits, 1) if it is never given.
func WithStopPolicy(mode StopMode, threshold int) Option {
	return func(c *config) {
		c.stopMode = mode
		c.threshold = threshold
	}
}

// WithOnBlock installs a hook invoked after every decoded block. Used by
// cmd/ldpcsim to implement its -disp progress mode (see SPEC_FULL.md).
func WithOnBlock(fn func(BlockStats)) Option {
	return func(c *config) {
		c.onBlock = fn
	}
}

// Stats is the running/final accounting of a Driver's simulation.
type Stats struct {
	TotalBlocks     int
	ErrorBlocks     int
	TotalBits       int
	ErrorBits       int
	TotalIterations int
}

// Driver runs the Monte-Carlo block loop (C8) over one decoder and
// channel sampler until its stop policy fires.
type Driver struct {
	dec     *beliefprop.Decoder
	sampler *channel.Sampler
	sigma2  float64
	n       int
	cfg     config
	stats   Stats
}

// NewDriver builds a Driver decoding blocks with dec, drawing noise from
// sampler at variance sigma2. If no WithStopPolicy option is given, the
// default policy is (StopOnErrorBits, 1).
func NewDriver(dec *beliefprop.Decoder, sampler *channel.Sampler, sigma2 float64, opts ...Option) (*Driver, error) {
	if dec == nil {
		return nil, ErrNeedDecoder
	}
	if sampler == nil {
		return nil, ErrNeedSampler
	}
	if sigma2 <= 0 {
		return nil, ErrBadVariance
	}

	cfg := config{stopMode: StopOnErrorBits, threshold: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.threshold <= 0 {
		return nil, fmt.Errorf("simulate: threshold=%d: %w", cfg.threshold, ErrBadThreshold)
	}

	return &Driver{
		dec:     dec,
		sampler: sampler,
		sigma2:  sigma2,
		n:       dec.Graph().N,
		cfg:     cfg,
	}, nil
}

// Run executes the block loop until the configured stop policy fires,
// then returns the final Stats.
func (d *Driver) Run() (Stats, error) {
	for !d.done() {
		if err := d.runBlock(); err != nil {
			return d.stats, err
		}
	}
	return d.stats, nil
}

func (d *Driver) done() bool {
	switch d.cfg.stopMode {
	case StopOnErrorBlocks:
		return d.stats.ErrorBlocks >= d.cfg.threshold
	default:
		return d.stats.ErrorBits >= d.cfg.threshold
	}
}

func (d *Driver) runBlock() error {
	y, err := d.sampler.Sample(d.n, d.sigma2)
	if err != nil {
		return err
	}
	a, b, err := channel.Likelihoods(y, d.sigma2)
	if err != nil {
		return err
	}
	res, err := d.dec.Decode(a, b)
	if err != nil {
		return err
	}

	d.stats.TotalBlocks++
	d.stats.TotalBits += d.n
	d.stats.ErrorBits += res.ErrorWeight
	d.stats.TotalIterations += res.Iterations
	if res.ErrorWeight > 0 {
		d.stats.ErrorBlocks++
	}

	if d.cfg.onBlock != nil {
		d.cfg.onBlock(BlockStats{
			BlockIndex:  d.stats.TotalBlocks,
			Success:     res.Success,
			Iterations:  res.Iterations,
			ErrorWeight: res.ErrorWeight,
		})
	}

	return nil
}

// Stats returns a snapshot of the driver's current counters; safe to
// call mid-run (e.g. from an OnBlock hook) or after Run returns.
func (d *Driver) Stats() Stats {
	return d.stats
}
