// SPDX-License-Identifier: MIT
// Package: sitecover/mapgen
//
// Package mapgen provides functional-options-style generators for synthetic
// received-power maps. It exists so tests, examples and comparison drivers
// have realistic radiomap.Map inputs without shipping measurement data.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:     a function that mutates genConfig before generation.
//     – genConfig:  holds RNG, field size, transmitter and channel knobs.
//   - Scenario constructors:
//     – GridScenario:   sites and measurement points on centered lattices.
//     – RandomScenario: sites and points placed uniformly in the field.
//   - Channel model (shared by both scenarios):
//     – log-distance path loss
//     PL(d) = PL(d0) + 10·n·log10(d/d0), d clamped below at d0 = 1 m,
//     – optional log-normal shadowing χ ~ N(0, σ) in dB,
//     – received power RSRP = TxPower − PL(d) − χ.
//
// Guarantees:
//
//   - Strict determinism per (dimensions, options): the same seed yields the
//     same map, draw for draw. Placement draws precede power draws; both run
//     in row-major order.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; scenario constructors themselves return sentinel errors
//     and never panic.
//   - Output maps are plain radiomap.Map values with default site IDs,
//     point rows in row-major placement order.
//
// See individual function documentation for contracts, panic conditions and
// parameter meanings.
package mapgen
