package beliefprop

import (
	"fmt"

	"github.com/wadatools/binldpc/tanner"
)

// Result is the outcome of decoding one block.
type Result struct {
	// Success is true iff the syndrome went to zero within IMax iterations.
	Success bool
	// Iterations is the number of flooding iterations actually run.
	Iterations int
	// Decision is the final hard-decision vector, length g.N. It is a
	// defensive copy; callers may retain it past the next Decode call.
	Decision []uint8
	// ErrorWeight is the Hamming weight of Decision, i.e. the block error
	// weight under the all-zeros-codeword transmission convention. This
	// holds regardless of Success: a failed block still contributes its
	// decision vector's weight to bit-error accounting.
	ErrorWeight int
}

// defaultIMax is the iteration cap used when NewDecoder is called
// without a WithIterationCap option.
const defaultIMax = 50

// Option configures a Decoder. Mirrors the functional-options shape used
// throughout this module (see channel.Option, simulate.Option).
type Option func(*config)

type config struct {
	iMax int
}

func newConfig(opts ...Option) *config {
	cfg := &config{iMax: defaultIMax}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIterationCap sets the flooding-schedule iteration cap I_max (C6).
// Panics if n is not positive: option constructors validate and panic,
// algorithms never do.
func WithIterationCap(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("beliefprop: WithIterationCap(%d)", n))
	}
	return func(c *config) {
		c.iMax = n
	}
}

// Decoder orchestrates one tanner.Graph's belief-propagation decode: C6,
// the flooding schedule over C2-C5. One Decoder owns one Messages arena
// and one Scratch buffer set; it is not safe for concurrent use, but
// independent Decoders over the same (read-only) Graph may run
// concurrently since the Graph itself is never mutated.
type Decoder struct {
	g    *tanner.Graph
	msgs *Messages
	sc   *Scratch
	iMax int
}

// NewDecoder builds a Decoder for g. By default the iteration cap is
// defaultIMax; pass WithIterationCap to override it.
func NewDecoder(g *tanner.Graph, opts ...Option) (*Decoder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)
	return &Decoder{
		g:    g,
		msgs: NewMessages(g),
		sc:   NewScratch(g),
		iMax: cfg.iMax,
	}, nil
}

// Decode runs the flooding schedule (C6) for one block: reset the
// message arena, then for up to IMax iterations run all check updates,
// all variable updates, and a syndrome test, stopping early on
// syndrome-zero.
//
// chanA and chanB are the channel likelihood pairs p(y|0), p(y|1) for
// each of the g.N variable nodes (see channel.Likelihoods). Both must
// have length g.N.
func (d *Decoder) Decode(chanA, chanB []float64) (Result, error) {
	if len(chanA) != d.g.N || len(chanB) != d.g.N {
		return Result{}, fmt.Errorf("beliefprop: want len %d, got a=%d b=%d: %w", d.g.N, len(chanA), len(chanB), ErrLikelihoodLength)
	}

	d.msgs.ResetBlock()

	errorWeight := 0
	iterations := 0
	success := false

	for it := 1; it <= d.iMax; it++ {
		iterations = it

		for m := 0; m < d.g.M; m++ {
			UpdateCheck(d.g, d.msgs, d.sc, m, chanA, chanB)
		}

		errorWeight = 0
		for n := 0; n < d.g.N; n++ {
			errorWeight += UpdateVariable(d.g, d.msgs, d.sc, n, chanA, chanB)
		}

		if SyndromeZero(d.g, d.msgs) {
			success = true
			break
		}
	}

	decision := append([]uint8(nil), d.msgs.Decision...)

	return Result{
		Success:     success,
		Iterations:  iterations,
		Decision:    decision,
		ErrorWeight: errorWeight,
	}, nil
}

// Graph returns the tanner.Graph this decoder was built for.
func (d *Decoder) Graph() *tanner.Graph {
	return d.g
}
