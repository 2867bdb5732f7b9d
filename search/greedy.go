// Package search - greedy incremental construction baseline.
//
// Exactly SubsetSize steps; step k evaluates every one of the L−k
// remaining sites appended to the current selection and keeps the winner.
// No early stopping, so the run always consumes Σ_{k=0}^{M−1}(L−k)
// oracle evaluations regardless of the coverage reached.
//
// Winner rule per step: highest coverage, then highest mean power, then
// the first remaining site in index order. The construction is fully
// deterministic; it reads no RNG.
package search

import (
	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/subset"
)

// runGreedy wraps greedyConstruct into the common result record.
func runGreedy(o coverage.Oracle, sites int, opts Options) (Result, error) {
	best, stats, err := greedyConstruct(o, sites, opts.SubsetSize)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Best:              best,
		BestStats:         stats,
		FoundAtGeneration: opts.SubsetSize - 1,
		Generations:       opts.SubsetSize,
		Reason:            ReasonConstructed,
	}, nil
}

// greedyConstruct builds the selection one site at a time. Shared with
// LocalSearch, which seeds from the greedy result.
func greedyConstruct(o coverage.Oracle, sites, m int) (subset.Subset, coverage.Stats, error) {
	var (
		selected = make([]int, 0, m)
		inSel    = make([]bool, sites)
		trial    = make([]int, 0, m)
		curStats coverage.Stats
	)

	for step := 0; step < m; step++ {
		bestSite := -1
		var bestStats coverage.Stats

		for idx := 0; idx < sites; idx++ {
			if inSel[idx] {
				continue
			}
			trial = append(append(trial[:0], selected...), idx)
			cand, err := subset.FromIndices(sites, trial)
			if err != nil {
				return subset.Subset{}, coverage.Stats{}, err
			}
			st, err := o.Evaluate(cand)
			if err != nil {
				return subset.Subset{}, coverage.Stats{}, err
			}
			if bestSite == -1 || betterStats(st, bestStats) {
				bestSite = idx
				bestStats = st
			}
		}

		selected = append(selected, bestSite)
		inSel[bestSite] = true
		curStats = bestStats
	}

	s, err := subset.FromIndices(sites, selected)
	if err != nil {
		return subset.Subset{}, coverage.Stats{}, err
	}
	return s, curStats, nil
}

// betterStats orders candidates by coverage, then by mean power. Callers
// resolve remaining ties by scan order, so the comparison stays strict.
func betterStats(a, b coverage.Stats) bool {
	if a.Ratio != b.Ratio {
		return a.Ratio > b.Ratio
	}
	return a.MeanPower > b.MeanPower
}
