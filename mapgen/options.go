// SPDX-License-Identifier: MIT
// Package: sitecover/mapgen
//
// options.go — functional options for the mapgen package.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Scenario constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible fixtures; WithRand only when an
//     outer driver owns the stream.
//   • WithShadowing(0) keeps lattice scenarios RNG-free and exactly
//     reproducible from the channel model alone.

package mapgen

import (
	"math"
	"math/rand"
)

// Option customizes a scenario constructor by mutating a genConfig
// instance before generation begins.
type Option func(*genConfig)

// WithRand provides an explicit RNG for stochastic generation steps.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("mapgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTxPower sets the per-site transmit power in dBm.
// Panics on non-finite values.
func WithTxPower(dbm float64) Option {
	if math.IsNaN(dbm) || math.IsInf(dbm, 0) {
		panic("mapgen: WithTxPower(non-finite)")
	}
	return func(c *genConfig) {
		c.txPowerDBm = dbm
	}
}

// WithPathLossExponent sets the path-loss exponent n.
// Panics unless 0 < n and n is finite; free space is 2, dense urban up
// to about 6.
func WithPathLossExponent(n float64) Option {
	if !(n > 0) || math.IsInf(n, 0) {
		panic("mapgen: WithPathLossExponent(n<=0)")
	}
	return func(c *genConfig) {
		c.pathLossExp = n
	}
}

// WithReferenceLoss sets PL(d0), the loss at the reference distance, dB.
// Panics on negative or non-finite values.
func WithReferenceLoss(db float64) Option {
	if !(db >= 0) || math.IsInf(db, 0) {
		panic("mapgen: WithReferenceLoss(db<0)")
	}
	return func(c *genConfig) {
		c.refLossDB = db
	}
}

// WithShadowing sets the log-normal shadowing stdev σ in dB; 0 disables
// shadowing. Panics on negative or non-finite values. Shadowing draws
// come from the config RNG, one per map cell.
func WithShadowing(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("mapgen: WithShadowing(sigma<0)")
	}
	return func(c *genConfig) {
		c.shadowSigma = sigma
	}
}

// WithField sets the deployment field dimensions in meters.
// Panics on non-positive values. Non-finite values pass here (NaN
// compares false) and fail generation with ErrBadField instead.
func WithField(w, h float64) Option {
	if w <= 0 || h <= 0 {
		panic("mapgen: WithField(non-positive)")
	}
	return func(c *genConfig) {
		c.fieldW, c.fieldH = w, h
	}
}
