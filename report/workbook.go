// Package report - XLSX tabulation of trial suites.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/sitecover/search"
	"github.com/katalvlaran/sitecover/trials"
)

// Sheet names in the written workbook.
const (
	sheetSummary   = "summary"
	sheetTrials    = "trials"
	sheetTelemetry = "telemetry"
)

// WriteWorkbook saves a trial suite as an Excel workbook at path.
//
// The "summary" sheet carries one row per algorithm, the "trials" sheet
// one row per repetition. When any trial recorded telemetry, a third
// "telemetry" sheet carries one row per (trial, generation). An empty
// trial slice yields ErrNoTrials; summaries may be empty.
func WriteWorkbook(path string, ts []trials.Trial, sums []trials.Summary) error {
	if len(ts) == 0 {
		return ErrNoTrials
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return fmt.Errorf("report: naming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetTrials); err != nil {
		return fmt.Errorf("report: creating trials sheet: %w", err)
	}

	if err := writeSummarySheet(f, sums); err != nil {
		return err
	}
	if err := writeTrialsSheet(f, ts); err != nil {
		return err
	}

	withTelemetry := false
	for _, tr := range ts {
		if len(tr.Result.Telemetry) > 0 {
			withTelemetry = true
			break
		}
	}
	if withTelemetry {
		if _, err := f.NewSheet(sheetTelemetry); err != nil {
			return fmt.Errorf("report: creating telemetry sheet: %w", err)
		}
		if err := writeTelemetrySheet(f, ts); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: saving workbook: %w", err)
	}
	log.WithFields(logrus.Fields{
		"path":      path,
		"trials":    len(ts),
		"summaries": len(sums),
		"telemetry": withTelemetry,
	}).Info("workbook written")
	return nil
}

func writeSummarySheet(f *excelize.File, sums []trials.Summary) error {
	header := []interface{}{
		"algorithm", "runs", "mean_coverage", "stddev_coverage",
		"min_coverage", "max_coverage", "mean_evaluations",
		"success_rate", "reasons",
	}
	if err := setRow(f, sheetSummary, 1, header); err != nil {
		return err
	}
	for i, s := range sums {
		row := []interface{}{
			s.Algorithm.String(), s.Runs, s.MeanCoverage, s.StdDevCoverage,
			s.MinCoverage, s.MaxCoverage, s.MeanEvaluations,
			s.SuccessRate, formatReasons(s.Reasons),
		}
		if err := setRow(f, sheetSummary, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTrialsSheet(f *excelize.File, ts []trials.Trial) error {
	header := []interface{}{
		"trial_id", "algorithm", "seed", "selected", "coverage",
		"mean_power_dbm", "evaluations", "generations",
		"found_at_generation", "reason",
	}
	if err := setRow(f, sheetTrials, 1, header); err != nil {
		return err
	}
	for i, tr := range ts {
		row := []interface{}{
			tr.ID.String(), tr.Algorithm.String(), tr.Seed,
			tr.Result.Best.String(), tr.Result.BestStats.Ratio,
			tr.Result.BestStats.MeanPower, tr.Result.Evaluations,
			tr.Result.Generations, tr.Result.FoundAtGeneration,
			tr.Result.Reason.String(),
		}
		if err := setRow(f, sheetTrials, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTelemetrySheet(f *excelize.File, ts []trials.Trial) error {
	header := []interface{}{
		"trial_id", "generation", "best_coverage", "max_coverage",
		"mean_coverage", "mean_power_dbm",
	}
	if err := setRow(f, sheetTelemetry, 1, header); err != nil {
		return err
	}
	row := 2
	for _, tr := range ts {
		for _, gs := range tr.Result.Telemetry {
			values := []interface{}{
				tr.ID.String(), gs.Generation, gs.BestRatio,
				gs.MaxRatio, gs.MeanRatio, gs.MeanPower,
			}
			if err := setRow(f, sheetTelemetry, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// setRow writes values into one sheet row, first column onward.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("report: cell %s!%d:%d: %w", sheet, row, col+1, err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("report: writing %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// formatReasons renders a termination tally as "reason:count" pairs in
// a stable order, e.g. "constructed:3" or "stagnated:2, target-reached:1".
func formatReasons(reasons map[search.TerminationReason]int) string {
	parts := make([]string, 0, len(reasons))
	for r, n := range reasons {
		parts = append(parts, fmt.Sprintf("%s:%d", r, n))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
