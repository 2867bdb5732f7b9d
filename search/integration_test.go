package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/search"
)

func TestGeneticProbabilistic_CardinalityInvariant(t *testing.T) {
	base := directOracle(t, noiseMap(t, 20, 12, 31))
	o := &cardinalityOracle{Oracle: base, t: t, want: 4}

	opts := search.DefaultOptions(4)
	opts.PopulationSize = 16
	opts.Generations = 25
	opts.RequiredCoverage = 1.0
	opts.Patience = 0
	opts.Seed = 13

	res, err := search.Solve(o, 12, search.GeneticProbabilistic, opts)
	require.NoError(t, err)
	require.Equal(t, 4, res.Best.Count())
}

func TestGeneticProbabilistic_Termination(t *testing.T) {
	t.Run("TargetReached", func(t *testing.T) {
		o := directOracle(t, pairMap(t))
		opts := search.DefaultOptions(2)
		opts.PopulationSize = 6
		opts.RequiredCoverage = 0
		res, err := search.Solve(o, 4, search.GeneticProbabilistic, opts)
		require.NoError(t, err)
		require.Equal(t, search.ReasonTargetReached, res.Reason)
		require.Equal(t, 1, res.Generations)
	})
	t.Run("Stagnated", func(t *testing.T) {
		o := directOracle(t, flatMap(t, 5, 6))
		opts := search.DefaultOptions(2)
		opts.PopulationSize = 8
		opts.Patience = 4
		opts.Seed = 3
		res, err := search.Solve(o, 6, search.GeneticProbabilistic, opts)
		require.NoError(t, err)
		require.Equal(t, search.ReasonStagnated, res.Reason)
		require.Equal(t, 5, res.Generations)
	})
	t.Run("GenerationCap", func(t *testing.T) {
		o := directOracle(t, flatMap(t, 5, 6))
		opts := search.DefaultOptions(2)
		opts.PopulationSize = 8
		opts.Patience = 0
		opts.Generations = 6
		opts.Seed = 3
		res, err := search.Solve(o, 6, search.GeneticProbabilistic, opts)
		require.NoError(t, err)
		require.Equal(t, search.ReasonGenerationCap, res.Reason)
		require.Equal(t, 6, res.Generations)
		require.EqualValues(t, 6*8, res.Evaluations)
	})
}

func TestGeneticProbabilistic_MonotoneBestAndTelemetry(t *testing.T) {
	o := directOracle(t, noiseMap(t, 30, 10, 41))

	opts := search.DefaultOptions(3)
	opts.PopulationSize = 12
	opts.Generations = 25
	opts.RequiredCoverage = 1.0
	opts.Patience = 0
	opts.Seed = 19
	opts.CollectTelemetry = true

	res, err := search.Solve(o, 10, search.GeneticProbabilistic, opts)
	require.NoError(t, err)
	require.Len(t, res.Telemetry, res.Generations)

	prev := -1.0
	for _, gs := range res.Telemetry {
		require.GreaterOrEqual(t, gs.BestRatio, prev)
		require.GreaterOrEqual(t, gs.BestRatio, gs.MeanRatio-1e-12,
			"best-so-far can never trail the population mean")
		prev = gs.BestRatio
	}

	// Benign probabilities near M/L never exhaust the retry budget.
	require.Zero(t, res.SamplingFallbacks)
}

func TestGeneticProbabilistic_DeterministicUnderSeed(t *testing.T) {
	m := noiseMap(t, 25, 14, 23)
	opts := search.DefaultOptions(5)
	opts.PopulationSize = 14
	opts.Generations = 12
	opts.RequiredCoverage = 1.0
	opts.Patience = 0
	opts.Seed = 57
	opts.CollectTelemetry = true

	a, err := search.Solve(directOracle(t, m), 14, search.GeneticProbabilistic, opts)
	require.NoError(t, err)
	b, err := search.Solve(directOracle(t, m), 14, search.GeneticProbabilistic, opts)
	require.NoError(t, err)

	require.True(t, a.Best.Equal(b.Best))
	require.Equal(t, a.Telemetry, b.Telemetry)
	require.Equal(t, a.SamplingFallbacks, b.SamplingFallbacks)
}

// TestAllAlgorithms_TableAndDirectAgree: a full-M-cardinality algorithm
// must reach the same deterministic outcome whether the oracle aggregates
// on the fly or looks combinations up in a precomputed table.
func TestAllAlgorithms_TableAndDirectAgree(t *testing.T) {
	m := noiseMap(t, 15, 8, 73)
	table, err := coverage.BuildTable(m, 3, coverageThreshold)
	require.NoError(t, err)

	opts := search.DefaultOptions(3)
	opts.PopulationSize = 10
	opts.Generations = 10
	opts.RequiredCoverage = 1.0
	opts.Patience = 0
	opts.Seed = 101

	for _, algo := range []search.Algorithm{
		search.GeneticBitstring,
		search.GeneticProbabilistic,
	} {
		viaDirect, derr := search.Solve(directOracle(t, m), 8, algo, opts)
		require.NoError(t, derr, algo.String())
		viaTable, terr := search.Solve(table, 8, algo, opts)
		require.NoError(t, terr, algo.String())

		require.True(t, viaDirect.Best.Equal(viaTable.Best), algo.String())
		require.InDelta(t, viaDirect.BestStats.Ratio, viaTable.BestStats.Ratio, 1e-9, algo.String())
		require.Equal(t, viaDirect.Evaluations, viaTable.Evaluations, algo.String())
	}
}

// TestComparisonRun drives all five algorithms over one instance the way
// the trial driver does, checking the result records stay coherent.
func TestComparisonRun(t *testing.T) {
	m := noiseMap(t, 40, 12, 5)

	opts := search.DefaultOptions(4)
	opts.PopulationSize = 16
	opts.Generations = 30
	opts.RequiredCoverage = 0.95
	opts.MaxEvaluations = 300
	opts.Seed = 9

	for _, algo := range []search.Algorithm{
		search.GeneticBitstring,
		search.GeneticProbabilistic,
		search.Greedy,
		search.LocalSearch,
		search.RandomSampling,
	} {
		res, err := search.Solve(directOracle(t, m), 12, algo, opts)
		require.NoError(t, err, algo.String())

		require.Equal(t, 4, res.Best.Count(), algo.String())
		require.GreaterOrEqual(t, res.BestStats.Ratio, 0.0, algo.String())
		require.LessOrEqual(t, res.BestStats.Ratio, 1.0, algo.String())
		require.NotEqual(t, search.ReasonNone, res.Reason, algo.String())
		require.Positive(t, res.Evaluations, algo.String())
		require.Positive(t, res.Generations, algo.String())
	}
}
