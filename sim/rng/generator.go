// Package rng provides the multi-stream pseudorandom number generator and the
// random variates derived from it.
//
// A Generator owns NumStreams independent streams numbered 1 through
// NumStreams. Each stream is a combined multiplicative congruential generator
// (multipliers 24112 and 26143, modulus 2^31-1) evaluated with 16-bit
// decomposition so that no intermediate product overflows 32 bits. Drawing from
// one stream never changes another, so a model can dedicate a stream to each
// source of randomness and change one without perturbing the rest.
//
// A Generator is not safe for concurrent use. Parallel replications must each
// own a Generator, or agree on disjoint stream ranges.
package rng

import "fmt"

const (
	modulus = 2147483647
	mult1   = 24112
	mult2   = 26143
)

// Generator is a bank of NumStreams independent random number streams.
type Generator struct {
	states [NumStreams]int64
}

// NewGenerator creates a Generator with every stream at its default seed.
func NewGenerator() *Generator {
	return NewGeneratorFromSeeds(DefaultSeeds)
}

// NewGeneratorFromSeeds creates a Generator whose stream i starts at
// seeds[i-1].
func NewGeneratorFromSeeds(seeds [NumStreams]int64) *Generator {
	g := &Generator{}
	for i, s := range seeds {
		mustBeValidState(i+1, s)
	}

	g.states = seeds

	return g
}

// UniformUnit returns the next value of a stream. The value is strictly
// between 0 and 1.
func (g *Generator) UniformUnit(stream int) float64 {
	mustBeValidStream(stream)

	z := g.states[stream-1]
	z = advance(z, mult1)
	z = advance(z, mult2)
	g.states[stream-1] = z

	return float64((z>>7)|1) / 16777216.0
}

// advance computes (z * mult) mod modulus without overflowing 32-bit
// intermediates.
func advance(z, mult int64) int64 {
	lowprd := (z & 65535) * mult
	hi31 := (z>>16)*mult + (lowprd >> 16)

	z = ((lowprd & 65535) - modulus) + ((hi31 & 32767) << 16) + (hi31 >> 15)
	if z < 0 {
		z += modulus
	}

	return z
}

// SetStreamState overwrites the raw state of a stream.
func (g *Generator) SetStreamState(stream int, state int64) {
	mustBeValidStream(stream)
	mustBeValidState(stream, state)

	g.states[stream-1] = state
}

// StreamState returns the raw state of a stream.
func (g *Generator) StreamState(stream int) int64 {
	mustBeValidStream(stream)

	return g.states[stream-1]
}

// Snapshot returns the states of all the streams.
func (g *Generator) Snapshot() [NumStreams]int64 {
	return g.states
}

// Restore sets the states of all the streams from a snapshot.
func (g *Generator) Restore(states [NumStreams]int64) {
	for i, s := range states {
		mustBeValidState(i+1, s)
	}

	g.states = states
}

// ValidStream tells if stream addresses one of the generator's streams.
func ValidStream(stream int) bool {
	return stream >= 1 && stream <= NumStreams
}

func mustBeValidStream(stream int) {
	if !ValidStream(stream) {
		panic(fmt.Sprintf("rng: stream %d out of range [1, %d]",
			stream, NumStreams))
	}
}

func mustBeValidState(stream int, state int64) {
	if state <= 0 || state >= modulus {
		panic(fmt.Sprintf("rng: state %d of stream %d out of range [1, %d)",
			state, stream, modulus))
	}
}
