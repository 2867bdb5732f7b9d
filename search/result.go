// Package search - the terminal record every algorithm produces.
package search

import (
	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/subset"
)

// Result is the outcome of one Solve run.
//
// Generations counts the units of work the algorithm actually performed:
// generations for GA/EDA, construction steps for Greedy, neighborhood
// rounds for LocalSearch (including the final unimproving one), draws for
// RandomSampling. FoundAtGeneration is the 0-based unit at which Best was
// last improved.
type Result struct {
	// Algorithm identifies the strategy that produced this result.
	Algorithm Algorithm

	// Best is the best selection found across the whole run.
	Best subset.Subset

	// BestStats is Best's coverage ratio and mean aggregated power.
	BestStats coverage.Stats

	// FoundAtGeneration is when Best was last improved (see type doc).
	FoundAtGeneration int

	// Generations is the number of work units performed (see type doc).
	Generations int

	// Evaluations is the number of oracle evaluations this run consumed,
	// measured as the counter delta, so embedded phases (the greedy seed
	// inside LocalSearch) are included.
	Evaluations uint64

	// Reason states which stopping condition ended the run.
	Reason TerminationReason

	// SamplingFallbacks counts EDA candidates that exhausted the sampling
	// retry budget and were repaired to the required cardinality. Zero for
	// every other algorithm.
	SamplingFallbacks int

	// Telemetry holds one entry per generation when CollectTelemetry was
	// set; nil otherwise. Capacity is pre-sized to the generation cap.
	Telemetry []GenerationStats
}
