// Package search - deterministic RNG plumbing shared by the stochastic
// algorithms.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.
//   - Independence: derived streams for per-algorithm and per-trial use,
//     decorrelated with a SplitMix64-style mix.
//
// Concurrency: math/rand.Rand is not goroutine-safe. Each run owns its
// *rand.Rand; parallel fitness evaluation never touches it.
package search

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep zero-value Options reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed with the SplitMix64 finalizer, so repeated-trial drivers can
// give every repetition an independent deterministic stream.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from a base RNG and a stream
// identifier. base.Int63() is consumed once so that reusing a stream id
// still yields distinct children.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
