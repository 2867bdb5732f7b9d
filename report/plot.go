// Package report - convergence plotting.
package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sitecover/search"
)

// SavePlot renders per-generation telemetry as a two-line convergence
// chart (best-so-far and population-mean coverage over the generation
// index) and saves it at path. The image format follows the path
// extension (.png, .svg, .pdf, ...). Empty telemetry yields
// ErrNoTelemetry.
func SavePlot(path string, telemetry []search.GenerationStats) error {
	if len(telemetry) == 0 {
		return ErrNoTelemetry
	}

	p := plot.New()
	p.Title.Text = "Coverage convergence"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Coverage ratio"

	bestPts := make(plotter.XYs, len(telemetry))
	meanPts := make(plotter.XYs, len(telemetry))
	for i, gs := range telemetry {
		bestPts[i].X = float64(gs.Generation)
		bestPts[i].Y = gs.BestRatio
		meanPts[i].X = float64(gs.Generation)
		meanPts[i].Y = gs.MeanRatio
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return fmt.Errorf("report: best line: %w", err)
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return fmt.Errorf("report: mean line: %w", err)
	}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: saving plot: %w", err)
	}
	log.WithField("path", path).Info("convergence plot written")
	return nil
}
