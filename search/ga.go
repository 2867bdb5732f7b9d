// Package search - bitstring genetic algorithm.
//
// One generation: evaluate the whole population, update the tracked best
// (strict improvement only), check termination, then breed the next
// population. Slot 0 of every bred population is the best-so-far
// (elitism), which makes the tracked best's coverage non-decreasing over
// the run. Parents come from tournaments drawn without replacement;
// children from a uniform draw over the parents' union of sites, mutated
// with one active/inactive swap at MutationRate.
//
// Tie policy, applied everywhere a winner is picked: equal coverage goes
// to the lower population index. Deterministic under Options.Seed.
package search

import (
	"math/rand"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/subset"
)

// runGeneticBitstring executes the GA loop. Complexity per generation:
// O(popSize) oracle evaluations plus O(popSize·(tournament + L)) breeding.
func runGeneticBitstring(o coverage.Oracle, sites int, opts Options, rng *rand.Rand) (Result, error) {
	pop := make([]subset.Subset, opts.PopulationSize)
	for i := range pop {
		pop[i] = subset.Random(sites, opts.SubsetSize, rng)
	}

	var res Result
	if opts.CollectTelemetry {
		res.Telemetry = make([]GenerationStats, 0, opts.Generations)
	}

	var (
		best      subset.Subset
		bestStats coverage.Stats
		bestRatio = -1.0 // below any real coverage, so generation 0 always improves
		noImprove int
	)

	for gen := 0; gen < opts.Generations; gen++ {
		stats, err := coverage.EvaluateBatch(o, pop, opts.Parallelism)
		if err != nil {
			return Result{}, err
		}
		res.Generations = gen + 1

		gi := fittestIndex(stats)
		if stats[gi].Ratio > bestRatio {
			best = pop[gi].Clone()
			bestStats = stats[gi]
			bestRatio = stats[gi].Ratio
			res.FoundAtGeneration = gen
			noImprove = 0
		} else {
			noImprove++
		}

		if opts.CollectTelemetry || opts.Verbose {
			gs := summarizeGeneration(gen, bestRatio, stats)
			if opts.CollectTelemetry {
				res.Telemetry = append(res.Telemetry, gs)
			}
			if opts.Verbose {
				logGeneration(GeneticBitstring, gs)
			}
		}

		// Termination precedence: target, then stagnation, then the cap.
		if bestRatio >= opts.RequiredCoverage {
			res.Reason = ReasonTargetReached
			break
		}
		if opts.Patience > 0 && noImprove >= opts.Patience {
			res.Reason = ReasonStagnated
			break
		}
		if gen == opts.Generations-1 {
			res.Reason = ReasonGenerationCap
			break
		}

		// Breed the next population; slot 0 carries the best-so-far.
		next := make([]subset.Subset, len(pop))
		next[0] = best.Clone()
		for i := 1; i < len(pop); i++ {
			p1 := tournament(stats, opts.TournamentSize, rng)
			p2 := tournament(stats, opts.TournamentSize, rng)
			child, cerr := subset.Crossover(pop[p1], pop[p2], rng)
			if cerr != nil {
				return Result{}, cerr
			}
			if rng.Float64() < opts.MutationRate {
				child.Mutate(rng)
			}
			next[i] = child
		}
		pop = next
	}

	res.Best = best
	res.BestStats = bestStats
	return res, nil
}

// fittestIndex returns the index of the highest coverage in stats; equal
// coverage keeps the lower index.
func fittestIndex(stats []coverage.Stats) int {
	win := 0
	for i := 1; i < len(stats); i++ {
		if stats[i].Ratio > stats[win].Ratio {
			win = i
		}
	}
	return win
}

// tournament draws k population indices uniformly without replacement and
// returns the fittest; equal coverage goes to the lower index.
func tournament(stats []coverage.Stats, k int, rng *rand.Rand) int {
	drawn := rng.Perm(len(stats))[:k]
	win := drawn[0]
	for _, idx := range drawn[1:] {
		if stats[idx].Ratio > stats[win].Ratio ||
			(stats[idx].Ratio == stats[win].Ratio && idx < win) {
			win = idx
		}
	}
	return win
}
