package radiomap_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sitecover/radiomap"
)

// buildMap returns a small 3-point x 2-site table used across tests.
func buildMap(t *testing.T) *radiomap.Map {
	t.Helper()
	m, err := radiomap.New(3, 2, []float64{
		-60, -75,
		-82, -55,
		-90, -91,
	})
	require.NoError(t, err)
	return m
}

func TestNew_Validation(t *testing.T) {
	t.Run("NoSites", func(t *testing.T) {
		_, err := radiomap.New(3, 0, nil)
		require.ErrorIs(t, err, radiomap.ErrNoSites)
	})
	t.Run("NoMeasurements", func(t *testing.T) {
		_, err := radiomap.New(0, 2, nil)
		require.ErrorIs(t, err, radiomap.ErrNoMeasurements)
	})
	t.Run("BadShape", func(t *testing.T) {
		_, err := radiomap.New(2, 2, []float64{-60, -61, -62})
		require.ErrorIs(t, err, radiomap.ErrBadShape)
	})
	t.Run("NonFinite", func(t *testing.T) {
		_, err := radiomap.New(1, 2, []float64{-60, math.NaN()})
		require.ErrorIs(t, err, radiomap.ErrNonFinitePower)

		_, err = radiomap.New(1, 2, []float64{math.Inf(-1), -60})
		require.ErrorIs(t, err, radiomap.ErrNonFinitePower)
	})
	t.Run("BadSiteIDs", func(t *testing.T) {
		_, err := radiomap.New(1, 2, []float64{-60, -61},
			radiomap.WithSiteIDs([]string{"only-one"}))
		require.ErrorIs(t, err, radiomap.ErrBadSiteIDs)

		_, err = radiomap.New(1, 2, []float64{-60, -61},
			radiomap.WithSiteIDs([]string{"dup", "dup"}))
		require.ErrorIs(t, err, radiomap.ErrBadSiteIDs)
	})
}

func TestMap_Accessors(t *testing.T) {
	m := buildMap(t)

	require.Equal(t, 2, m.Sites())
	require.Equal(t, 3, m.Points())
	require.Equal(t, -55.0, m.Power(1, 1))
	require.Equal(t, []float64{-90, -91}, m.Row(2))
	require.Equal(t, "S00", m.SiteID(0))
	require.Equal(t, []string{"S00", "S01"}, m.SiteIDs())
}

func TestNew_CopiesInput(t *testing.T) {
	power := []float64{-60, -75}
	m, err := radiomap.New(1, 2, power)
	require.NoError(t, err)

	power[0] = 0 // caller mutation must not leak in
	require.Equal(t, -60.0, m.Power(0, 0))
}

func TestDBmConversions(t *testing.T) {
	cases := []struct {
		dbm, mw float64
	}{
		{0, 1},
		{10, 10},
		{-30, 0.001},
		{3, 1.9952623149688795},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.mw, radiomap.DBmToMilliwatt(tc.dbm), 1e-12)
		require.InDelta(t, tc.dbm, radiomap.MilliwattToDBm(tc.mw), 1e-12)
	}
}

func TestFingerprint(t *testing.T) {
	a := buildMap(t)
	b := buildMap(t)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	c, err := radiomap.New(3, 2, []float64{
		-60, -75,
		-82, -55,
		-90, -92, // one value differs
	})
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestCSV_RoundTrip(t *testing.T) {
	m := buildMap(t)

	var buf bytes.Buffer
	require.NoError(t, radiomap.WriteCSV(&buf, m))

	got, err := radiomap.LoadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, m.Sites(), got.Sites())
	require.Equal(t, m.Points(), got.Points())
	require.Equal(t, m.SiteIDs(), got.SiteIDs())
	require.Equal(t, m.Fingerprint(), got.Fingerprint())
}

func TestLoadCSV_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := radiomap.LoadCSV(strings.NewReader(""))
		require.ErrorIs(t, err, radiomap.ErrEmptyTable)
	})
	t.Run("HeaderOnly", func(t *testing.T) {
		_, err := radiomap.LoadCSV(strings.NewReader("S00,S01\n"))
		require.ErrorIs(t, err, radiomap.ErrEmptyTable)
	})
	t.Run("BadCell", func(t *testing.T) {
		_, err := radiomap.LoadCSV(strings.NewReader("S00,S01\n-60,oops\n"))
		require.ErrorIs(t, err, radiomap.ErrBadCell)
	})
}

func TestXLSX_RoundTrip(t *testing.T) {
	m := buildMap(t)
	path := filepath.Join(t.TempDir(), "powers.xlsx")

	require.NoError(t, radiomap.WriteXLSX(path, m))

	got, err := radiomap.LoadXLSX(path)
	require.NoError(t, err)
	require.Equal(t, m.SiteIDs(), got.SiteIDs())
	require.Equal(t, m.Fingerprint(), got.Fingerprint())

	// A sheet that does not exist must surface an error, not an empty map.
	_, err = radiomap.LoadXLSX(path, radiomap.WithSheet("Nope"))
	require.Error(t, err)
}
