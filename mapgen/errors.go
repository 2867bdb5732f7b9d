// SPDX-License-Identifier: MIT
// Package: sitecover/mapgen
//
// errors.go — sentinel errors for the mapgen package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using mapgenErrorf + %w.
//   • Scenario constructors MUST NOT panic; validation panics are confined
//     to option constructor functions (WithX...).
//
// AI-Hints (practical guidance for implementers):
//   • Wrap with method context: mapgenErrorf(methodGrid, "…", ErrTooFewSites).
//   • Check with errors.Is in tests and production code; avoid string
//     comparisons.
//   • Non-finite field dimensions slip past WithField's sign check on
//     purpose (NaN compares false); they surface here as ErrBadField.

package mapgen

import (
	"errors"
	"fmt"
)

// ErrTooFewSites indicates the requested site count (or site lattice
// dimensions) is below one.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewSites) { /* fix site dimensions */ }.
var ErrTooFewSites = errors.New("mapgen: too few sites")

// ErrTooFewPoints indicates the requested measurement point count (or
// point lattice dimensions) is below one.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrTooFewPoints) { /* fix point dimensions */ }.
var ErrTooFewPoints = errors.New("mapgen: too few measurement points")

// ErrBadField indicates the resolved field dimensions are unusable
// (non-finite). Finite non-positive dimensions never reach generation:
// WithField panics on them.
// Usage: if errors.Is(err, ErrBadField) { /* fix WithField inputs */ }.
var ErrBadField = errors.New("mapgen: unusable field dimensions")

// ErrNeedRand indicates a stochastic generation step (random placement or
// shadowing with σ > 0) ran without an RNG. Supply WithSeed or WithRand.
// Usage: if errors.Is(err, ErrNeedRand) { /* add WithSeed(…) */ }.
var ErrNeedRand = errors.New("mapgen: rng is required")

// mapgenErrorf prefixes an error with the given method context.
// %w placeholders in format keep sentinels reachable through errors.Is.
func mapgenErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
