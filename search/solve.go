// Package search - unified dispatcher for the site-selection algorithms.
//
// Solve is the single entry point: it validates the configuration, derives
// the run's RNG stream, routes to the requested algorithm, and stamps the
// result with the algorithm identity and the oracle-evaluation delta the
// run consumed.
//
// Design principles:
//   - Deterministic: seed routing to every stochastic algorithm; no
//     time-based randomness anywhere.
//   - Strict sentinels: only errors from types.go (plus oracle errors
//     forwarded as-is).
//   - Exact accounting: Evaluations is measured as the oracle counter
//     delta, so embedded phases and batch evaluation are all included.
package search

import (
	"github.com/katalvlaran/sitecover/coverage"
)

// Solve runs the chosen algorithm against o over a universe of the given
// number of candidate sites.
//
// Contracts:
//   - o must be non-nil and consistent with sites (selections over a
//     different universe surface the oracle's own mismatch error).
//   - opts is validated per algorithm; see types.go for the sentinels.
//
// The oracle's evaluation counter is read before and after the run; the
// difference is reported in Result.Evaluations. Counters are never reset
// here, so callers may meter several runs against one oracle.
func Solve(o coverage.Oracle, sites int, algo Algorithm, opts Options) (Result, error) {
	if o == nil {
		return Result{}, ErrNilOracle
	}
	if err := validateOptions(sites, algo, opts); err != nil {
		return Result{}, err
	}

	// Per-algorithm stream: runs with the same seed but different
	// algorithms must not replay each other's draws.
	rng := deriveRNG(rngFromSeed(opts.Seed), uint64(algo))

	before := o.Evaluations()

	var (
		res Result
		err error
	)
	switch algo {
	case GeneticBitstring:
		res, err = runGeneticBitstring(o, sites, opts, rng)
	case GeneticProbabilistic:
		res, err = runGeneticProbabilistic(o, sites, opts, rng)
	case Greedy:
		res, err = runGreedy(o, sites, opts)
	case LocalSearch:
		res, err = runLocalSearch(o, sites, opts)
	case RandomSampling:
		res, err = runRandomSampling(o, sites, opts, rng)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	res.Algorithm = algo
	res.Evaluations = o.Evaluations() - before
	return res, nil
}
