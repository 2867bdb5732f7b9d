// Package report exports trial suites as Excel workbooks and renders
// convergence plots for population searches.
//
// WriteWorkbook lays a suite out over three sheets: "summary" holds one
// row per algorithm (the trials.Summary aggregates), "trials" one row
// per repetition, and "telemetry" one row per recorded generation. The
// telemetry sheet appears only when at least one trial ran with
// CollectTelemetry set.
//
// SavePlot draws best-so-far and population-mean coverage against the
// generation index as a two-line chart, the usual way a run of a
// population search is eyeballed for convergence.
package report
