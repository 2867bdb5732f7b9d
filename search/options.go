// Package search - run configuration shared by all algorithms.
package search

// Options configures a Solve run. Fields irrelevant to the chosen
// algorithm are ignored (and not validated), so one Options value can
// drive a whole algorithm comparison.
//
//   - SubsetSize       — M, the exact number of sites every candidate
//     activates. Required for every algorithm.
//   - RequiredCoverage — target coverage ratio in [0,1]; reaching it stops
//     GA/EDA/RandomSampling early with ReasonTargetReached.
//   - PopulationSize   — candidates per generation (GA/EDA).
//   - Generations      — hard generation cap (GA/EDA).
//   - Patience         — consecutive non-improving generations tolerated
//     before ReasonStagnated; 0 disables stagnation stopping (GA/EDA).
//   - TournamentSize   — candidates drawn (without replacement) per parent
//     selection (bitstring GA).
//   - MutationRate     — per-child probability of a one-swap mutation
//     (bitstring GA), in [0,1].
//   - EliteFraction    — fraction of the population whose site frequencies
//     steer the probability vector (EDA), in (0,1].
//   - LearningRate     — EMA weight of the elite frequencies in the
//     probability-vector update (EDA), in (0,1].
//   - MaxEvaluations   — draw budget for RandomSampling.
//   - Parallelism      — worker count for per-generation fitness
//     evaluation; 0 or 1 evaluates sequentially. The search logic itself
//     is sequential either way, only oracle calls fan out.
//   - Seed             — RNG seed; 0 selects the fixed default stream.
//   - Verbose          — per-generation progress through the package
//     logger; silent otherwise.
//   - CollectTelemetry — record per-generation population statistics into
//     Result.Telemetry.
type Options struct {
	SubsetSize       int
	RequiredCoverage float64
	PopulationSize   int
	Generations      int
	Patience         int
	TournamentSize   int
	MutationRate     float64
	EliteFraction    float64
	LearningRate     float64
	MaxEvaluations   int
	Parallelism      int
	Seed             int64
	Verbose          bool
	CollectTelemetry bool
}

// DefaultOptions returns Options initialized with moderate defaults for
// the given subset size. Use it as a base for overrides.
//
// Defaults:
//   - RequiredCoverage: 0.9
//   - PopulationSize:   30
//   - Generations:      100
//   - Patience:         15
//   - TournamentSize:   3
//   - MutationRate:     0.1
//   - EliteFraction:    0.2
//   - LearningRate:     0.3
//   - MaxEvaluations:   1000
//   - Parallelism:      0 (sequential)
//   - Seed:             0 (fixed default stream)
func DefaultOptions(subsetSize int) Options {
	return Options{
		SubsetSize:       subsetSize,
		RequiredCoverage: 0.9,
		PopulationSize:   30,
		Generations:      100,
		Patience:         15,
		TournamentSize:   3,
		MutationRate:     0.1,
		EliteFraction:    0.2,
		LearningRate:     0.3,
		MaxEvaluations:   1000,
	}
}
