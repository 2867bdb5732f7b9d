// Package search - uniform random sampling baseline.
//
// Up to MaxEvaluations draws with replacement. When the oracle can
// enumerate its combinations (coverage.Indexed, i.e. a precomputed
// table), draws are uniform picks from that index; otherwise candidates
// come from subset.Random, which draws uniformly over the same C(L,M)
// combinations, so the sampling distribution is identical either way.
//
// The run stops at the first draw whose coverage meets RequiredCoverage
// and reports the draws actually consumed.
package search

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/subset"
)

// runRandomSampling executes the draw loop.
func runRandomSampling(o coverage.Oracle, sites int, opts Options, rng *rand.Rand) (Result, error) {
	idx, indexed := o.(coverage.Indexed)
	if indexed {
		if idx.Len() == 0 {
			return Result{}, fmt.Errorf("%w: empty index", ErrIndexedShapeMismatch)
		}
		// Entry shape must agree with the configured search; a table built
		// for another cardinality would silently sample the wrong space.
		probe := idx.At(0)
		if probe.Len() != sites || probe.Count() != opts.SubsetSize {
			return Result{}, fmt.Errorf("%w: index holds %d-of-%d entries, want %d-of-%d",
				ErrIndexedShapeMismatch, probe.Count(), probe.Len(), opts.SubsetSize, sites)
		}
	}

	var (
		res       Result
		best      subset.Subset
		bestStats coverage.Stats
		bestRatio = -1.0
	)
	res.Reason = ReasonBudgetExhausted

	for draw := 0; draw < opts.MaxEvaluations; draw++ {
		var cand subset.Subset
		if indexed {
			cand = idx.At(rng.Intn(idx.Len()))
		} else {
			cand = subset.Random(sites, opts.SubsetSize, rng)
		}

		st, err := o.Evaluate(cand)
		if err != nil {
			return Result{}, err
		}
		res.Generations = draw + 1

		if st.Ratio > bestRatio {
			best = cand
			bestStats = st
			bestRatio = st.Ratio
			res.FoundAtGeneration = draw
		}
		if st.Ratio >= opts.RequiredCoverage {
			res.Reason = ReasonTargetReached
			break
		}
	}

	res.Best = best
	res.BestStats = bestStats
	return res, nil
}
