package coverage

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/sitecover/radiomap"
	"github.com/katalvlaran/sitecover/subset"
)

// DirectOracle evaluates selections straight from the measurement table.
// It accepts any cardinality over the map's sites, so constructive
// searches can score partial selections. One Evaluate costs O(K·|s|).
type DirectOracle struct {
	m         *radiomap.Map
	threshold float64
	evals     atomic.Uint64
}

// NewDirect builds an oracle over m with the coverage threshold in dBm.
func NewDirect(m *radiomap.Map, thresholdDBm float64) (*DirectOracle, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if math.IsNaN(thresholdDBm) || math.IsInf(thresholdDBm, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, thresholdDBm)
	}
	return &DirectOracle{m: m, threshold: thresholdDBm}, nil
}

// Threshold returns the coverage threshold in dBm.
func (o *DirectOracle) Threshold() float64 { return o.threshold }

// Evaluate implements Oracle.
func (o *DirectOracle) Evaluate(s subset.Subset) (Stats, error) {
	if s.Len() != o.m.Sites() {
		return Stats{}, fmt.Errorf("%w: selection over %d sites, map has %d",
			ErrUniverseMismatch, s.Len(), o.m.Sites())
	}
	st := computeStats(o.m, o.threshold, s.Indices())
	o.evals.Add(1)
	return st, nil
}

// computeStats aggregates the active sites' powers over every point.
// Shared by the direct oracle and the table builder.
func computeStats(m *radiomap.Map, threshold float64, active []int) Stats {
	if len(active) == 0 {
		return Stats{Ratio: 0, MeanPower: math.Inf(-1)}
	}
	points := m.Points()
	covered := 0
	sum := 0.0
	for k := 0; k < points; k++ {
		row := m.Row(k)
		linear := 0.0
		for _, l := range active {
			linear += radiomap.DBmToMilliwatt(row[l])
		}
		combined := radiomap.MilliwattToDBm(linear)
		if combined >= threshold {
			covered++
		}
		sum += combined
	}
	return Stats{
		Ratio:     float64(covered) / float64(points),
		MeanPower: sum / float64(points),
	}
}

// Evaluations implements Oracle.
func (o *DirectOracle) Evaluations() uint64 { return o.evals.Load() }

// ResetEvaluations implements Oracle.
func (o *DirectOracle) ResetEvaluations() { o.evals.Store(0) }
