// SPDX-License-Identifier: MIT
// Package: sitecover/mapgen
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng          = nil     (stochastic steps then fail with ErrNeedRand)
//   • txPowerDBm   = 30.0
//   • pathLossExp  = 3.0
//   • refLossDB    = 40.0
//   • shadowSigma  = 0.0     (no shadowing)
//   • field        = 1000 × 1000 m

package mapgen

import (
	"math"
	"math/rand"
)

// genConfig aggregates all knobs used by the scenario constructors.
// It is passed by value to generation code (immutable to callers).
type genConfig struct {
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand

	// Transmit power of every site, dBm.
	txPowerDBm float64
	// Path-loss exponent n.
	pathLossExp float64
	// Loss at the reference distance, dB.
	refLossDB float64
	// Log-normal shadowing stdev in dB; 0 disables shadowing.
	shadowSigma float64

	// Deployment field dimensions, meters.
	fieldW float64
	fieldH float64
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order, last-wins.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         nil,
		txPowerDBm:  defaultTxPowerDBm,
		pathLossExp: defaultPathLossExp,
		refLossDB:   defaultRefLossDB,
		shadowSigma: defaultShadowSigma,
		fieldW:      defaultFieldW,
		fieldH:      defaultFieldH,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// validate checks the resolved config for conditions options cannot catch.
// Field dimensions must be finite; NaN slips past WithField's sign checks
// because NaN comparisons are false.
func (c genConfig) validate(method string) error {
	if math.IsNaN(c.fieldW) || math.IsInf(c.fieldW, 0) ||
		math.IsNaN(c.fieldH) || math.IsInf(c.fieldH, 0) {
		return mapgenErrorf(method, "field %v × %v: %w", c.fieldW, c.fieldH, ErrBadField)
	}
	return nil
}

// needsRand reports whether generation under this config draws from the RNG.
func (c genConfig) needsRand(randomPlacement bool) bool {
	return randomPlacement || c.shadowSigma > 0
}
