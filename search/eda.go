// Package search - probabilistic (estimation-of-distribution) genetic
// algorithm.
//
// The search state is a per-site activation-probability vector p of
// length L, initialized uniformly to M/L. Each generation is sampled from
// p by independent per-site Bernoulli draws, accepting only draws with
// exactly M active sites. After evaluation, the elite slice of the
// population moves p toward the elites' per-site activation frequencies:
//
//	p ← (1−α)·p + α·eliteFrequency
//
// then p is rescaled so Σp == M and clipped to ≤ 1. The vector persists
// across generations and is never reset.
//
// Rejection sampling is bounded: after maxSamplingRetries failed draws a
// candidate is repaired deterministically to cardinality M (trim the
// actives with the smallest p, pad with the inactives with the largest p,
// ties to the lowest index) and Result.SamplingFallbacks is incremented.
package search

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/subset"
)

// maxSamplingRetries bounds the Bernoulli rejection loop per candidate.
const maxSamplingRetries = 100

// runGeneticProbabilistic executes the EDA loop. Structure and
// termination mirror runGeneticBitstring; only reproduction differs.
func runGeneticProbabilistic(o coverage.Oracle, sites int, opts Options, rng *rand.Rand) (Result, error) {
	p := make([]float64, sites)
	for i := range p {
		p[i] = float64(opts.SubsetSize) / float64(sites)
	}

	var res Result
	if opts.CollectTelemetry {
		res.Telemetry = make([]GenerationStats, 0, opts.Generations)
	}

	var (
		best      subset.Subset
		bestStats coverage.Stats
		bestRatio = -1.0
		noImprove int
		pop       = make([]subset.Subset, opts.PopulationSize)
	)

	for gen := 0; gen < opts.Generations; gen++ {
		for i := range pop {
			s, fellBack, err := sampleCandidate(p, opts.SubsetSize, rng)
			if err != nil {
				return Result{}, err
			}
			if fellBack {
				res.SamplingFallbacks++
			}
			pop[i] = s
		}

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
				logGeneration(GeneticProbabilistic, gs)
			}
		}

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

		// Move p toward the elites; skipped on the terminating generation.
		freq := eliteFrequencies(pop, stats, opts.EliteFraction, sites)
		updateProbabilities(p, freq, opts.LearningRate, opts.SubsetSize)
	}

	res.Best = best
	res.BestStats = bestStats
	return res, nil
}

// sampleCandidate draws one cardinality-m selection from p. The second
// return reports whether the retry budget ran out and the final draw was
// repaired.
func sampleCandidate(p []float64, m int, rng *rand.Rand) (subset.Subset, bool, error) {
	l := len(p)
	active := make([]int, 0, l)
	for attempt := 0; attempt < maxSamplingRetries; attempt++ {
		active = active[:0]
		for idx := 0; idx < l; idx++ {
			if rng.Float64() < p[idx] {
				active = append(active, idx)
			}
		}
		if len(active) == m {
			s, err := subset.FromIndices(l, active)
			return s, false, err
		}
	}
	s, err := subset.FromIndices(l, repairToCardinality(active, p, m))
	return s, true, err
}

// repairToCardinality trims or pads the drawn actives to exactly m sites.
// Trimming removes the active with the smallest probability first, padding
// adds the inactive with the largest; equal probabilities keep the lowest
// index, so the repair is fully deterministic.
func repairToCardinality(active []int, p []float64, m int) []int {
	l := len(p)
	in := make([]bool, l)
	count := 0
	for _, idx := range active {
		in[idx] = true
		count++
	}
	for count > m {
		drop := -1
		for idx := 0; idx < l; idx++ {
			if in[idx] && (drop == -1 || p[idx] < p[drop]) {
				drop = idx
			}
		}
		in[drop] = false
		count--
	}
	for count < m {
		add := -1
		for idx := 0; idx < l; idx++ {
			if !in[idx] && (add == -1 || p[idx] > p[add]) {
				add = idx
			}
		}
		in[add] = true
		count++
	}
	out := make([]int, 0, m)
	for idx := 0; idx < l; idx++ {
		if in[idx] {
			out = append(out, idx)
		}
	}
	return out
}

// eliteFrequencies returns, per site, the fraction of the elite slice in
// which the site is active. The elite slice is the ceil(fraction·popSize)
// fittest candidates; equal coverage keeps population order.
func eliteFrequencies(pop []subset.Subset, stats []coverage.Stats, fraction float64, sites int) []float64 {
	order := make([]int, len(pop))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return stats[order[a]].Ratio > stats[order[b]].Ratio
	})

	eliteCount := int(math.Ceil(fraction * float64(len(pop))))
	if eliteCount > len(pop) {
		eliteCount = len(pop)
	}

	freq := make([]float64, sites)
	for _, pi := range order[:eliteCount] {
		for _, idx := range pop[pi].Indices() {
			freq[idx]++
		}
	}
	floats.Scale(1/float64(eliteCount), freq)
	return freq
}

// updateProbabilities applies the EMA update in place, rescales so that
// Σp == m, then clips entries to at most 1. Entries never go negative:
// both terms of the EMA are non-negative.
func updateProbabilities(p, eliteFreq []float64, alpha float64, m int) {
	floats.Scale(1-alpha, p)
	floats.AddScaled(p, alpha, eliteFreq)
	if sum := floats.Sum(p); sum > 0 {
		floats.Scale(float64(m)/sum, p)
	}
	for i, v := range p {
		if v > 1 {
			p[i] = 1
		}
	}
}
