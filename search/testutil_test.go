// Package search_test - shared fixtures for the algorithm tests.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/radiomap"
	"github.com/katalvlaran/sitecover/subset"
)

// coverageThreshold is the dBm threshold shared by the fixtures.
const coverageThreshold = -58.0

// pairMap returns the 3-point x 4-site fixture where no single site
// covers more than one point but sites {1,2} together cover all three:
// point 2 receives -60 and -61 dBm, which combine to about -57.5 dBm.
func pairMap(t *testing.T) *radiomap.Map {
	t.Helper()
	m, err := radiomap.New(3, 4, []float64{
		-90, -50, -90, -90,
		-90, -90, -50, -90,
		-90, -60, -61, -90,
	})
	require.NoError(t, err)
	return m
}

// trapMap returns the 4-point x 3-site fixture where greedy's first pick
// (site 0, covering two points alone) is excluded from the only full
// cover {1,2}: points 0 and 1 need sites 1 and 2 combined.
func trapMap(t *testing.T) *radiomap.Map {
	t.Helper()
	m, err := radiomap.New(4, 3, []float64{
		-50, -60, -61,
		-50, -61, -60,
		-90, -50, -90,
		-90, -90, -50,
	})
	require.NoError(t, err)
	return m
}

// flatMap returns a map where every reading is -90 dBm, so every
// selection scores zero coverage and nothing ever improves.
func flatMap(t *testing.T, points, sites int) *radiomap.Map {
	t.Helper()
	power := make([]float64, points*sites)
	for i := range power {
		power[i] = -90
	}
	m, err := radiomap.New(points, sites, power)
	require.NoError(t, err)
	return m
}

// noiseMap returns a seeded pseudo-random map for property tests.
func noiseMap(t *testing.T, points, sites int, seed int64) *radiomap.Map {
	t.Helper()
	// Spread values around the threshold so subsets differ in coverage.
	power := make([]float64, points*sites)
	x := uint64(seed)
	for i := range power {
		// SplitMix64 step; keeps the fixture independent of math/rand.
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		power[i] = -85 + 30*float64(z%1000)/1000
	}
	m, err := radiomap.New(points, sites, power)
	require.NoError(t, err)
	return m
}

func directOracle(t *testing.T, m *radiomap.Map) *coverage.DirectOracle {
	t.Helper()
	o, err := coverage.NewDirect(m, coverageThreshold)
	require.NoError(t, err)
	return o
}

// cardinalityOracle wraps an oracle and fails the test on any evaluation
// whose selection does not hold exactly the expected number of sites.
type cardinalityOracle struct {
	coverage.Oracle
	t    *testing.T
	want int
}

func (c *cardinalityOracle) Evaluate(s subset.Subset) (coverage.Stats, error) {
	if got := s.Count(); got != c.want {
		c.t.Errorf("evaluated selection with %d active sites, want %d", got, c.want)
	}
	return c.Oracle.Evaluate(s)
}
