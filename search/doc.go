// Package search provides the subset-selection algorithms that pick M
// transmission sites out of L candidates to maximize measurement-point
// coverage.
//
// Five strategies share one entry point, Solve, and one result shape:
//
//   - GeneticBitstring — population GA over fixed-cardinality bitstrings
//     with elitism, tournament selection, union crossover and swap
//     mutation.
//   - GeneticProbabilistic — estimation-of-distribution GA: a per-site
//     activation-probability vector, refined each generation from the
//     elite fraction of the population.
//   - Greedy — deterministic incremental construction, one site per step.
//   - LocalSearch — 1-swap hill climbing with full neighborhood scans,
//     seeded from the greedy construction.
//   - RandomSampling — uniform draws under a fixed evaluation budget.
//
// Fitness is the coverage ratio reported by a coverage.Oracle; ties fall
// back to mean aggregated power where an algorithm orders candidates, and
// beyond that to the lowest site or population index, so every run is
// reproducible.
//
// Determinism:
//   - All randomness flows from Options.Seed through an explicit
//     *rand.Rand; no process-global generator is touched.
//   - Seed 0 selects a fixed default stream, so the zero Options value is
//     still deterministic.
//
// Termination is never an error: reaching the coverage target, stagnating
// for Patience generations, exhausting the generation cap or sampling
// budget, and settling into a local optimum are all normal outcomes,
// distinguished by Result.Reason.
//
// Use DefaultOptions(m) as the starting point and override what the
// scenario needs:
//
//	opts := search.DefaultOptions(12)
//	opts.RequiredCoverage = 0.95
//	opts.Seed = 42
//	res, err := search.Solve(oracle, 50, search.GeneticBitstring, opts)
//	if err != nil {
//		// degenerate configuration, not a failed search
//	}
//	fmt.Println(res.Best, res.BestStats.Ratio, res.Reason)
package search
