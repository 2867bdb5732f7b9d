package coverage_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/radiomap"
	"github.com/katalvlaran/sitecover/subset"
)

// threeByThree is a 3-point x 3-site table with hand-checked coverage.
func threeByThree(t *testing.T) *radiomap.Map {
	t.Helper()
	m, err := radiomap.New(3, 3, []float64{
		-50, -70, -90,
		-80, -55, -85,
		-60, -61, -75,
	})
	require.NoError(t, err)
	return m
}

func pick(t *testing.T, universe int, indices ...int) subset.Subset {
	t.Helper()
	s, err := subset.FromIndices(universe, indices)
	require.NoError(t, err)
	return s
}

func TestNewDirect_Validation(t *testing.T) {
	_, err := coverage.NewDirect(nil, -58)
	require.ErrorIs(t, err, coverage.ErrNilMap)

	_, err = coverage.NewDirect(threeByThree(t), math.NaN())
	require.ErrorIs(t, err, coverage.ErrBadThreshold)
}

func TestDirectOracle_Evaluate(t *testing.T) {
	o, err := coverage.NewDirect(threeByThree(t), -58)
	require.NoError(t, err)

	cases := []struct {
		name    string
		indices []int
		ratio   float64
	}{
		{"SingleStrong", []int{0}, 1.0 / 3.0},
		{"SingleWeak", []int{2}, 0},
		// Point 2 receives -60 and -61 dBm; neither alone clears -58 but
		// their sum is about -57.5 dBm.
		{"PairCombines", []int{0, 1}, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := o.Evaluate(pick(t, 3, tc.indices...))
			require.NoError(t, err)
			require.InDelta(t, tc.ratio, st.Ratio, 1e-12)
		})
	}
}

func TestDirectOracle_MeanPower(t *testing.T) {
	o, err := coverage.NewDirect(threeByThree(t), -58)
	require.NoError(t, err)

	st, err := o.Evaluate(pick(t, 3, 0))
	require.NoError(t, err)
	require.InDelta(t, (-50.0-80.0-60.0)/3.0, st.MeanPower, 1e-9)
}

func TestDirectOracle_ThresholdIsInclusive(t *testing.T) {
	m, err := radiomap.New(1, 1, []float64{-58})
	require.NoError(t, err)
	o, err := coverage.NewDirect(m, -58)
	require.NoError(t, err)

	st, err := o.Evaluate(pick(t, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 1.0, st.Ratio)
}

func TestDirectOracle_EmptySelection(t *testing.T) {
	o, err := coverage.NewDirect(threeByThree(t), -58)
	require.NoError(t, err)

	st, err := o.Evaluate(pick(t, 3))
	require.NoError(t, err)
	require.Equal(t, 0.0, st.Ratio)
	require.True(t, math.IsInf(st.MeanPower, -1))
}

func TestDirectOracle_UniverseMismatch(t *testing.T) {
	o, err := coverage.NewDirect(threeByThree(t), -58)
	require.NoError(t, err)

	_, err = o.Evaluate(pick(t, 4, 0))
	require.ErrorIs(t, err, coverage.ErrUniverseMismatch)
	require.EqualValues(t, 0, o.Evaluations(), "failed calls must not count")
}

func TestDirectOracle_CountsEveryEvaluation(t *testing.T) {
	o, err := coverage.NewDirect(threeByThree(t), -58)
	require.NoError(t, err)

	for i := 0; i < 17; i++ {
		_, err := o.Evaluate(pick(t, 3, 0, 1))
		require.NoError(t, err)
	}
	require.EqualValues(t, 17, o.Evaluations())

	o.ResetEvaluations()
	require.EqualValues(t, 0, o.Evaluations())
}

// randomMap builds an L-site map with seeded dBm noise around -75.
func randomMap(t *testing.T, points, sites int, seed int64) *radiomap.Map {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	power := make([]float64, points*sites)
	for i := range power {
		power[i] = -75 + 20*rng.Float64()
	}
	m, err := radiomap.New(points, sites, power)
	require.NoError(t, err)
	return m
}

func TestBuildTable_MatchesDirect(t *testing.T) {
	m := randomMap(t, 6, 5, 42)
	table, err := coverage.BuildTable(m, 2, -60)
	require.NoError(t, err)
	require.Equal(t, 10, table.Len()) // C(5,2)

	direct, err := coverage.NewDirect(m, -60)
	require.NoError(t, err)

	for i := 0; i < table.Len(); i++ {
		s := table.At(i)
		want, err := direct.Evaluate(s)
		require.NoError(t, err)
		got, err := table.Evaluate(s)
		require.NoError(t, err)
		require.InDelta(t, want.Ratio, got.Ratio, 1e-9)
		require.InDelta(t, want.MeanPower, got.MeanPower, 1e-9)
	}
	require.EqualValues(t, 10, table.Evaluations())
}

func TestBuildTable_LexicographicOrder(t *testing.T) {
	table, err := coverage.BuildTable(randomMap(t, 2, 4, 1), 2, -60)
	require.NoError(t, err)
	require.Equal(t, 6, table.Len()) // C(4,2)

	require.Equal(t, []int{0, 1}, table.At(0).Indices())
	require.Equal(t, []int{0, 2}, table.At(1).Indices())
	require.Equal(t, []int{2, 3}, table.At(5).Indices())
}

func TestBuildTable_TooLarge(t *testing.T) {
	// C(30,15) is far beyond the cap.
	_, err := coverage.BuildTable(randomMap(t, 1, 30, 2), 15, -60)
	require.ErrorIs(t, err, coverage.ErrTableTooLarge)
}

func TestTable_UnknownCombination(t *testing.T) {
	table, err := coverage.BuildTable(randomMap(t, 2, 5, 3), 2, -60)
	require.NoError(t, err)

	_, err = table.Evaluate(pick(t, 5, 0, 1, 2))
	require.ErrorIs(t, err, coverage.ErrCombinationUnknown)
	require.EqualValues(t, 0, table.Evaluations(), "misses must not count")

	_, err = table.Evaluate(pick(t, 6, 0, 1))
	require.ErrorIs(t, err, coverage.ErrUniverseMismatch)
}

func TestNewTable_RoundTrip(t *testing.T) {
	m := randomMap(t, 4, 5, 7)
	built, err := coverage.BuildTable(m, 3, -62)
	require.NoError(t, err)

	rebuilt, err := coverage.NewTable(built.Universe(), built.SubsetSize(), built.Threshold(), built.Entries())
	require.NoError(t, err)
	require.Equal(t, built.Len(), rebuilt.Len())

	for i := 0; i < built.Len(); i++ {
		s := built.At(i)
		require.True(t, s.Equal(rebuilt.At(i)))
		a, err := built.Evaluate(s)
		require.NoError(t, err)
		b, err := rebuilt.Evaluate(s)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestNewTable_RejectsBadEntries(t *testing.T) {
	entries := []coverage.TableEntry{{Indices: []int{0, 1}, Stats: coverage.Stats{Ratio: 1}}}

	_, err := coverage.NewTable(4, 3, -60, entries)
	require.ErrorIs(t, err, coverage.ErrBadEntry)

	dup := append(entries, entries[0])
	_, err = coverage.NewTable(4, 2, -60, dup)
	require.ErrorIs(t, err, coverage.ErrBadEntry)
}

func TestEvaluateBatch(t *testing.T) {
	m := randomMap(t, 8, 6, 5)
	o, err := coverage.NewDirect(m, -60)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(13))
	pop := make([]subset.Subset, 24)
	for i := range pop {
		pop[i] = subset.Random(6, 3, rng)
	}

	seq, err := coverage.EvaluateBatch(o, pop, 1)
	require.NoError(t, err)
	require.EqualValues(t, len(pop), o.Evaluations())

	o.ResetEvaluations()
	par, err := coverage.EvaluateBatch(o, pop, 4)
	require.NoError(t, err)
	require.EqualValues(t, len(pop), o.Evaluations())

	require.Equal(t, seq, par)
}

func TestEvaluateBatch_PropagatesError(t *testing.T) {
	o, err := coverage.NewDirect(threeByThree(t), -58)
	require.NoError(t, err)

	pop := []subset.Subset{pick(t, 3, 0), pick(t, 5, 0)}
	_, err = coverage.EvaluateBatch(o, pop, 2)
	require.ErrorIs(t, err, coverage.ErrUniverseMismatch)
}
