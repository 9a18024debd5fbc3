// Package beliefprop implements the iterative soft-decision decoder: a
// message-passing engine over a tanner.Graph that alternates a BCJR-style
// check-node update and a two-pass up/down variable-node update until the
// hard-decision vector satisfies the parity syndrome or an iteration cap
// is reached.
//
// State is split in two, mirroring the package boundary between the
// immutable tanner.Graph and this package:
//
//   - Messages holds the mutable per-edge (q0,q1)/(r0,r1) arena plus the
//     per-variable posterior and hard decision. It is created once per
//     decoder and reset at the start of every block.
//   - Scratch holds the forward/backward and down/up recursion buffers,
//     sized to DCMax+1 and DVMax+1 respectively and reused across every
//     row/column of every iteration; nothing in the hot path allocates.
//
// Decoder ties these together with the flooding schedule: all check
// updates, then all variable updates, then a syndrome test, repeated up
// to IMax times. NewDecoder takes the iteration cap via the functional
// WithIterationCap option (defaulting to defaultIMax when omitted),
// matching the Option shape used by channel and simulate.
package beliefprop
