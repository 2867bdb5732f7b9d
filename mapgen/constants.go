// SPDX-License-Identifier: MIT
// Package: sitecover/mapgen
//
// constants.go — shared defaults and method-name tokens.

package mapgen

// Method name tokens, used to prefix errors with constructor context.
const (
	// methodGrid is the canonical name of the GridScenario constructor.
	methodGrid = "GridScenario"
	// methodRandom is the canonical name of the RandomScenario constructor.
	methodRandom = "RandomScenario"
)

// Deterministic channel-model defaults (named, no magic numbers).
const (
	// defaultTxPowerDBm is the transmit power of every site, 30 dBm ≈ 1 W,
	// a typical small-cell setting.
	defaultTxPowerDBm = 30.0

	// defaultPathLossExp is the path-loss exponent n. 2 is free space;
	// 3 matches a built-up outdoor environment.
	defaultPathLossExp = 3.0

	// defaultRefLossDB is PL(d0), the loss at the reference distance.
	// 40 dB approximates free-space loss at 1 m for low-GHz carriers.
	defaultRefLossDB = 40.0

	// defaultShadowSigma disables shadowing; generation is then fully
	// deterministic for lattice placements.
	defaultShadowSigma = 0.0

	// refDistanceM is the model's reference distance d0 in meters.
	// Distances below it are clamped up to keep log10 well-defined.
	refDistanceM = 1.0
)

// Default field dimensions in meters, a 1 km × 1 km deployment area.
const (
	defaultFieldW = 1000.0
	defaultFieldH = 1000.0
)
