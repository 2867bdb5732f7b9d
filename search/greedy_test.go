package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sitecover/search"
)

// TestGreedy_FindsCombiningPair pins down the canonical construction:
// four sites, two to pick, three points. No single site covers more than
// one point, sites 1 and 2 cover everything together. Greedy must return
// exactly {1,2} with full coverage after 4+3 evaluations.
func TestGreedy_FindsCombiningPair(t *testing.T) {
	o := directOracle(t, pairMap(t))

	opts := search.DefaultOptions(2)
	res, err := search.Solve(o, 4, search.Greedy, opts)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2}, res.Best.Indices())
	require.Equal(t, 1.0, res.BestStats.Ratio)
	require.EqualValues(t, 7, res.Evaluations)
	require.Equal(t, search.ReasonConstructed, res.Reason)
	require.Equal(t, 2, res.Generations)
}

// TestGreedy_EvaluationFormula checks the exact evaluation count
// Σ_{k=0}^{M-1}(L-k) on a larger instance.
func TestGreedy_EvaluationFormula(t *testing.T) {
	const sites, m = 12, 5
	o := directOracle(t, noiseMap(t, 20, sites, 99))

	res, err := search.Solve(o, sites, search.Greedy, search.DefaultOptions(m))
	require.NoError(t, err)

	want := 0
	for k := 0; k < m; k++ {
		want += sites - k
	}
	require.EqualValues(t, want, res.Evaluations)
	require.Equal(t, m, res.Best.Count())
	require.Equal(t, m, res.Generations)
}

// TestGreedy_NeverStopsEarly: even when one site already meets the
// coverage target, the construction still runs all M steps.
func TestGreedy_NeverStopsEarly(t *testing.T) {
	o := directOracle(t, pairMap(t))

	opts := search.DefaultOptions(3)
	opts.RequiredCoverage = 0 // trivially met after step 1
	res, err := search.Solve(o, 4, search.Greedy, opts)
	require.NoError(t, err)

	require.Equal(t, 3, res.Best.Count())
	require.EqualValues(t, 4+3+2, res.Evaluations)
	require.Equal(t, search.ReasonConstructed, res.Reason)
}

// TestGreedy_Deterministic: identical runs produce identical selections.
func TestGreedy_Deterministic(t *testing.T) {
	m := noiseMap(t, 15, 10, 7)

	a, err := search.Solve(directOracle(t, m), 10, search.Greedy, search.DefaultOptions(4))
	require.NoError(t, err)
	b, err := search.Solve(directOracle(t, m), 10, search.Greedy, search.DefaultOptions(4))
	require.NoError(t, err)

	require.True(t, a.Best.Equal(b.Best))
	require.Equal(t, a.BestStats, b.BestStats)
}
