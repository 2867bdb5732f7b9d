// SPDX-License-Identifier: MIT
// Package: sitecover/mapgen
//
// scenario.go — lattice and uniform-random deployment generators.
//
// Purpose (single responsibility):
//   • Produce reproducible radiomap.Map fixtures from a log-distance
//     path-loss channel, with optional Gaussian shadowing.
//
// Contract:
//   • GridScenario(siteRows, siteCols, pointRows, pointCols, opts...)
//     places sites and measurement points on centered lattices; it is
//     RNG-free unless shadowing is enabled.
//   • RandomScenario(points, sites, opts...) places both uniformly in the
//     field and always requires an RNG.
//   • Strict determinism per (dimensions, options). Draw order is fixed:
//     site placement, then point placement, then one shadowing draw per
//     map cell in row-major (point, site) order.
//   • Scenario constructors never panic; they return sentinel errors.
//
// Complexity: O(points·sites) time and memory for the power matrix,
// plus O(points + sites) for placement.

package mapgen

import (
	"math"

	"github.com/katalvlaran/sitecover/radiomap"
)

// GridScenario builds a map whose sites form a siteRows×siteCols lattice
// and whose measurement points form a pointRows×pointCols lattice, both
// at cell centers of the deployment field. Site index l = r·siteCols + c,
// point index k likewise, so fixtures are stable across runs.
//
// With the default σ = 0 the result is a pure path-loss map and no RNG
// is consulted; WithShadowing(σ>0) requires WithSeed or WithRand.
func GridScenario(siteRows, siteCols, pointRows, pointCols int, opts ...Option) (*radiomap.Map, error) {
	if siteRows < 1 || siteCols < 1 {
		return nil, mapgenErrorf(methodGrid, "site lattice %d×%d: %w", siteRows, siteCols, ErrTooFewSites)
	}
	if pointRows < 1 || pointCols < 1 {
		return nil, mapgenErrorf(methodGrid, "point lattice %d×%d: %w", pointRows, pointCols, ErrTooFewPoints)
	}
	cfg := newGenConfig(opts...)
	if err := cfg.validate(methodGrid); err != nil {
		return nil, err
	}
	if cfg.needsRand(false) && cfg.rng == nil {
		return nil, mapgenErrorf(methodGrid, "shadowing σ=%v: %w", cfg.shadowSigma, ErrNeedRand)
	}

	var (
		sites  = siteRows * siteCols
		points = pointRows * pointCols
		siteX  = make([]float64, sites)
		siteY  = make([]float64, sites)
		ptX    = make([]float64, points)
		ptY    = make([]float64, points)
		r, c   int
	)
	for r = 0; r < siteRows; r++ {
		for c = 0; c < siteCols; c++ {
			siteX[r*siteCols+c] = (float64(c) + 0.5) * cfg.fieldW / float64(siteCols)
			siteY[r*siteCols+c] = (float64(r) + 0.5) * cfg.fieldH / float64(siteRows)
		}
	}
	for r = 0; r < pointRows; r++ {
		for c = 0; c < pointCols; c++ {
			ptX[r*pointCols+c] = (float64(c) + 0.5) * cfg.fieldW / float64(pointCols)
			ptY[r*pointCols+c] = (float64(r) + 0.5) * cfg.fieldH / float64(pointRows)
		}
	}

	return buildMap(cfg, ptX, ptY, siteX, siteY)
}

// RandomScenario builds a map with the given numbers of measurement
// points and candidate sites, both placed uniformly at random in the
// deployment field. Placement draws run sites-first, each as an (x, y)
// pair, so the same seed always yields the same geometry.
func RandomScenario(points, sites int, opts ...Option) (*radiomap.Map, error) {
	if sites < 1 {
		return nil, mapgenErrorf(methodRandom, "%d sites: %w", sites, ErrTooFewSites)
	}
	if points < 1 {
		return nil, mapgenErrorf(methodRandom, "%d points: %w", points, ErrTooFewPoints)
	}
	cfg := newGenConfig(opts...)
	if err := cfg.validate(methodRandom); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, mapgenErrorf(methodRandom, "random placement: %w", ErrNeedRand)
	}

	var (
		siteX = make([]float64, sites)
		siteY = make([]float64, sites)
		ptX   = make([]float64, points)
		ptY   = make([]float64, points)
		i     int
	)
	for i = 0; i < sites; i++ {
		siteX[i] = cfg.rng.Float64() * cfg.fieldW
		siteY[i] = cfg.rng.Float64() * cfg.fieldH
	}
	for i = 0; i < points; i++ {
		ptX[i] = cfg.rng.Float64() * cfg.fieldW
		ptY[i] = cfg.rng.Float64() * cfg.fieldH
	}

	return buildMap(cfg, ptX, ptY, siteX, siteY)
}

// buildMap fills the power matrix row-major and wraps it in a Map.
// One shadowing draw per cell when σ > 0, none otherwise.
func buildMap(cfg genConfig, ptX, ptY, siteX, siteY []float64) (*radiomap.Map, error) {
	var (
		points = len(ptX)
		sites  = len(siteX)
		power  = make([]float64, points*sites)
		k, l   int
		rsrp   float64
	)
	for k = 0; k < points; k++ {
		for l = 0; l < sites; l++ {
			rsrp = cfg.txPowerDBm - pathLossDB(cfg, math.Hypot(ptX[k]-siteX[l], ptY[k]-siteY[l]))
			if cfg.shadowSigma > 0 {
				rsrp -= cfg.shadowSigma * cfg.rng.NormFloat64()
			}
			power[k*sites+l] = rsrp
		}
	}
	return radiomap.New(points, sites, power)
}

// pathLossDB evaluates the log-distance model at distance d meters.
// Distances below the reference distance are clamped up to it.
func pathLossDB(cfg genConfig, d float64) float64 {
	if d < refDistanceM {
		d = refDistanceM
	}
	return cfg.refLossDB + 10*cfg.pathLossExp*math.Log10(d/refDistanceM)
}
