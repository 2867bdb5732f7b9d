// Package search - per-generation statistics and progress logging.
package search

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sitecover/coverage"
)

var log = logrus.WithField("prefix", "search")

// GenerationStats summarizes one generation of a population algorithm.
// These feed reporting only; no search decision reads them.
type GenerationStats struct {
	// Generation is the 0-based generation index.
	Generation int
	// BestRatio is the best-so-far coverage after this generation.
	BestRatio float64
	// MaxRatio is the best coverage within this generation's population.
	MaxRatio float64
	// MeanRatio is the population's mean coverage.
	MeanRatio float64
	// MeanPower is the population's mean aggregated power, dBm.
	MeanPower float64
}

// summarizeGeneration computes the telemetry record for one evaluated
// population. bestRatio is the best-so-far value after the tracking
// update.
func summarizeGeneration(gen int, bestRatio float64, stats []coverage.Stats) GenerationStats {
	ratios := make([]float64, len(stats))
	powers := make([]float64, len(stats))
	maxRatio := 0.0
	for i, st := range stats {
		ratios[i] = st.Ratio
		powers[i] = st.MeanPower
		if st.Ratio > maxRatio {
			maxRatio = st.Ratio
		}
	}
	return GenerationStats{
		Generation: gen,
		BestRatio:  bestRatio,
		MaxRatio:   maxRatio,
		MeanRatio:  stat.Mean(ratios, nil),
		MeanPower:  stat.Mean(powers, nil),
	}
}

// logGeneration emits one progress line; called only under opts.Verbose.
func logGeneration(algo Algorithm, gs GenerationStats) {
	log.WithFields(logrus.Fields{
		"algorithm":  algo.String(),
		"generation": gs.Generation,
		"best":       gs.BestRatio,
		"max":        gs.MaxRatio,
		"mean":       gs.MeanRatio,
	}).Info("generation evaluated")
}
