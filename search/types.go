// Package search - algorithm identifiers, termination reasons, sentinels.
//
// Every error the package returns is one of the sentinels below, possibly
// wrapped with context via fmt.Errorf("…: %w", err). Branch with errors.Is.
package search

import "errors"

// Sentinel errors returned by Solve and the validation stages.
var (
	// ErrNilOracle indicates a nil coverage oracle.
	ErrNilOracle = errors.New("search: oracle is nil")

	// ErrBadUniverse indicates a non-positive candidate site count.
	ErrBadUniverse = errors.New("search: site count must be positive")

	// ErrBadSubsetSize indicates SubsetSize outside 1..siteCount.
	ErrBadSubsetSize = errors.New("search: subset size must be in 1..sites")

	// ErrBadRequiredCoverage indicates RequiredCoverage outside [0,1].
	ErrBadRequiredCoverage = errors.New("search: required coverage must be in [0,1]")

	// ErrBadPopulationSize indicates a population below two members.
	ErrBadPopulationSize = errors.New("search: population size must be at least 2")

	// ErrBadGenerations indicates a non-positive generation cap.
	ErrBadGenerations = errors.New("search: generation cap must be positive")

	// ErrBadPatience indicates a negative stagnation limit (0 disables it).
	ErrBadPatience = errors.New("search: patience must be non-negative")

	// ErrBadTournamentSize indicates TournamentSize outside 1..population.
	ErrBadTournamentSize = errors.New("search: tournament size must be in 1..population")

	// ErrBadMutationRate indicates MutationRate outside [0,1].
	ErrBadMutationRate = errors.New("search: mutation rate must be in [0,1]")

	// ErrBadEliteFraction indicates EliteFraction outside (0,1].
	ErrBadEliteFraction = errors.New("search: elite fraction must be in (0,1]")

	// ErrBadLearningRate indicates LearningRate outside (0,1].
	ErrBadLearningRate = errors.New("search: learning rate must be in (0,1]")

	// ErrBadMaxEvaluations indicates a non-positive sampling budget.
	ErrBadMaxEvaluations = errors.New("search: evaluation budget must be positive")

	// ErrBadParallelism indicates a negative parallelism degree.
	ErrBadParallelism = errors.New("search: parallelism must be non-negative")

	// ErrUnsupportedAlgorithm indicates an Algorithm value Solve cannot route.
	ErrUnsupportedAlgorithm = errors.New("search: unsupported algorithm")

	// ErrIndexedShapeMismatch indicates an Indexed oracle whose entries
	// disagree with the configured universe or subset size.
	ErrIndexedShapeMismatch = errors.New("search: indexed oracle shape disagrees with options")
)

// Algorithm selects the search strategy Solve dispatches to.
type Algorithm int

const (
	// GeneticBitstring is the population GA over fixed-cardinality
	// bitstrings (elitism, tournament selection, union crossover).
	GeneticBitstring Algorithm = iota

	// GeneticProbabilistic is the estimation-of-distribution GA driven by
	// a per-site activation-probability vector.
	GeneticProbabilistic

	// Greedy is the deterministic incremental construction baseline.
	Greedy

	// LocalSearch is 1-swap hill climbing seeded from Greedy.
	LocalSearch

	// RandomSampling is the uniform-draw baseline under a fixed budget.
	RandomSampling
)

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case GeneticBitstring:
		return "genetic-bitstring"
	case GeneticProbabilistic:
		return "genetic-probabilistic"
	case Greedy:
		return "greedy"
	case LocalSearch:
		return "local-search"
	case RandomSampling:
		return "random-sampling"
	default:
		return "unknown"
	}
}

// TerminationReason states which stopping condition ended a run. All of
// these are normal outcomes, not errors.
type TerminationReason int

const (
	// ReasonNone is the zero value; no finished run carries it.
	ReasonNone TerminationReason = iota

	// ReasonTargetReached fires when the best coverage met RequiredCoverage.
	ReasonTargetReached

	// ReasonStagnated fires after Patience generations without strict
	// improvement of the best coverage.
	ReasonStagnated

	// ReasonGenerationCap fires when the generation cap ran out first.
	ReasonGenerationCap

	// ReasonBudgetExhausted fires when RandomSampling spent MaxEvaluations
	// draws without meeting the target.
	ReasonBudgetExhausted

	// ReasonLocalOptimum fires when LocalSearch found no improving swap in
	// a full neighborhood scan.
	ReasonLocalOptimum

	// ReasonConstructed is Greedy's only outcome: the construction always
	// runs its full number of steps.
	ReasonConstructed
)

// String returns a short stable label for the reason.
func (r TerminationReason) String() string {
	switch r {
	case ReasonTargetReached:
		return "target-reached"
	case ReasonStagnated:
		return "stagnated"
	case ReasonGenerationCap:
		return "generation-cap"
	case ReasonBudgetExhausted:
		return "budget-exhausted"
	case ReasonLocalOptimum:
		return "local-optimum"
	case ReasonConstructed:
		return "constructed"
	default:
		return "none"
	}
}
