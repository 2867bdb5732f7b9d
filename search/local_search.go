// Package search - 1-swap hill climbing seeded from the greedy
// construction.
//
// Each round scans the full (active, inactive) neighborhood of the
// incumbent: every swap candidate is evaluated, and among the swaps whose
// coverage strictly exceeds the incumbent's the best one (coverage, then
// mean power, then scan order: actives ascending, inactives ascending) is
// applied. The climb stops at the first round without an improving swap,
// which makes the final selection 1-swap stable. Deterministic; reads no
// RNG.
//
// Result.Evaluations includes the embedded greedy seed's evaluations;
// Result.Generations counts neighborhood rounds including the final
// unimproving one.
package search

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/subset"
)

// runLocalSearch executes the climb.
func runLocalSearch(o coverage.Oracle, sites int, opts Options) (Result, error) {
	cur, curStats, err := greedyConstruct(o, sites, opts.SubsetSize)
	if err != nil {
		return Result{}, err
	}

	var res Result
	round := 0
	for {
		round++

		var (
			found     bool
			bestSwap  subset.Subset
			bestStats coverage.Stats
		)
		active := cur.Indices()
		for _, out := range active {
			for in := 0; in < sites; in++ {
				if cur.Contains(in) {
					continue
				}
				cand, cerr := swapped(cur, sites, out, in)
				if cerr != nil {
					return Result{}, cerr
				}
				st, eerr := o.Evaluate(cand)
				if eerr != nil {
					return Result{}, eerr
				}
				// Only strictly higher coverage counts as improvement;
				// equal coverage with better power does not move the climb.
				if st.Ratio <= curStats.Ratio {
					continue
				}
				if !found || betterStats(st, bestStats) {
					found = true
					bestSwap = cand
					bestStats = st
				}
			}
		}

		if !found {
			break
		}
		cur = bestSwap
		curStats = bestStats
		res.FoundAtGeneration = round

		if opts.Verbose {
			log.WithFields(logrus.Fields{
				"algorithm": LocalSearch.String(),
				"round":     round,
				"coverage":  curStats.Ratio,
			}).Info("improving swap applied")
		}
	}

	res.Best = cur
	res.BestStats = curStats
	res.Generations = round
	res.Reason = ReasonLocalOptimum
	return res, nil
}

// swapped returns cur with site out replaced by site in.
func swapped(cur subset.Subset, sites, out, in int) (subset.Subset, error) {
	indices := cur.Indices()
	for i, idx := range indices {
		if idx == out {
			indices[i] = in
			break
		}
	}
	return subset.FromIndices(sites, indices)
}
