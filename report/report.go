// Package report - shared sentinels and logging.
package report

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "report")

var (
	// ErrNoTrials rejects a workbook request with nothing to tabulate.
	ErrNoTrials = errors.New("report: no trials to write")

	// ErrNoTelemetry rejects a plot request with no generation records.
	ErrNoTelemetry = errors.New("report: no telemetry to plot")
)
