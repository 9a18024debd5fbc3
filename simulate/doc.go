// Package simulate implements the Monte-Carlo block loop (C8): sample a
// received word from channel.Sampler, decode it with beliefprop.Decoder,
// and accumulate bit- and block-error statistics until a stop policy
// fires.
//
// Driver follows the functional-options shape used throughout this
// module (see beliefprop and channel): construction takes the mandatory
// decoder/sampler/variance inputs positionally, and the stop
// policy and progress hook are set via Option values.
package simulate
