// Package search - staged validation of run configuration.
//
// Stage 1 checks fields every algorithm shares, stage 2 the fields the
// chosen algorithm actually reads. Fields an algorithm ignores are not
// validated, so a single Options value can drive a whole comparison even
// when, say, its MutationRate would be nonsense for Greedy.
//
// Only sentinel errors from types.go are returned, wrapped with the
// offending value where that helps debugging.
package search

import "fmt"

// validateOptions verifies sites + opts for the given algorithm.
func validateOptions(sites int, algo Algorithm, opts Options) error {
	// Stage 1: shared shape.
	if sites < 1 {
		return fmt.Errorf("%w: got %d", ErrBadUniverse, sites)
	}
	if opts.SubsetSize < 1 || opts.SubsetSize > sites {
		return fmt.Errorf("%w: size %d over %d sites", ErrBadSubsetSize, opts.SubsetSize, sites)
	}
	if opts.RequiredCoverage < 0 || opts.RequiredCoverage > 1 {
		return fmt.Errorf("%w: got %v", ErrBadRequiredCoverage, opts.RequiredCoverage)
	}
	if opts.Parallelism < 0 {
		return fmt.Errorf("%w: got %d", ErrBadParallelism, opts.Parallelism)
	}

	// Stage 2: per-algorithm requirements.
	switch algo {
	case GeneticBitstring:
		if err := validatePopulation(opts); err != nil {
			return err
		}
		if opts.TournamentSize < 1 || opts.TournamentSize > opts.PopulationSize {
			return fmt.Errorf("%w: size %d over population %d",
				ErrBadTournamentSize, opts.TournamentSize, opts.PopulationSize)
		}
		if opts.MutationRate < 0 || opts.MutationRate > 1 {
			return fmt.Errorf("%w: got %v", ErrBadMutationRate, opts.MutationRate)
		}
		return nil

	case GeneticProbabilistic:
		if err := validatePopulation(opts); err != nil {
			return err
		}
		if opts.EliteFraction <= 0 || opts.EliteFraction > 1 {
			return fmt.Errorf("%w: got %v", ErrBadEliteFraction, opts.EliteFraction)
		}
		if opts.LearningRate <= 0 || opts.LearningRate > 1 {
			return fmt.Errorf("%w: got %v", ErrBadLearningRate, opts.LearningRate)
		}
		return nil

	case Greedy, LocalSearch:
		// Fully determined by sites + SubsetSize, already checked.
		return nil

	case RandomSampling:
		if opts.MaxEvaluations < 1 {
			return fmt.Errorf("%w: got %d", ErrBadMaxEvaluations, opts.MaxEvaluations)
		}
		return nil

	default:
		return ErrUnsupportedAlgorithm
	}
}

// validatePopulation checks the generation-loop knobs GA and EDA share.
func validatePopulation(opts Options) error {
	if opts.PopulationSize < 2 {
		return fmt.Errorf("%w: got %d", ErrBadPopulationSize, opts.PopulationSize)
	}
	if opts.Generations < 1 {
		return fmt.Errorf("%w: got %d", ErrBadGenerations, opts.Generations)
	}
	if opts.Patience < 0 {
		return fmt.Errorf("%w: got %d", ErrBadPatience, opts.Patience)
	}
	return nil
}
