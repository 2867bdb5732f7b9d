package trials

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/radiomap"
	"github.com/katalvlaran/sitecover/search"
	"github.com/katalvlaran/sitecover/subset"
)

// log carries the package prefix on every trials record.
var log = logrus.WithField("prefix", "trials")

// Sentinel errors returned by Run before any repetition starts.
var (
	// ErrNilFactory indicates a Spec without an oracle factory.
	ErrNilFactory = errors.New("trials: oracle factory is nil")

	// ErrNoAlgorithms indicates an empty algorithm list.
	ErrNoAlgorithms = errors.New("trials: no algorithms requested")

	// ErrBadRuns indicates a non-positive repetition count.
	ErrBadRuns = errors.New("trials: runs must be positive")

	// ErrBadParallelism indicates a negative concurrency degree.
	ErrBadParallelism = errors.New("trials: parallelism must be non-negative")
)

// Spec describes one comparison suite.
type Spec struct {
	// NewOracle returns a freshly metered oracle for one repetition.
	// Called once per repetition, possibly concurrently.
	NewOracle func() (coverage.Oracle, error)

	// Sites is the candidate universe size L.
	Sites int

	// Algorithms lists the strategies to compare, in report order.
	Algorithms []search.Algorithm

	// Runs is the repetition count R per algorithm.
	Runs int

	// Opts is the shared run configuration. Its Seed field is the base
	// seed repetition seeds are derived from; per-repetition seeds
	// overwrite it before each search.Solve call.
	Opts search.Options

	// Parallelism bounds concurrent repetitions; 0 or 1 runs them
	// sequentially.
	Parallelism int
}

// Trial is one completed repetition.
type Trial struct {
	// ID tags the repetition for logs and reports.
	ID uuid.UUID

	// Algorithm and Seed reproduce the run together with the suite's
	// oracle inputs.
	Algorithm search.Algorithm
	Seed      int64

	// Result is the search outcome.
	Result search.Result
}

// Summary aggregates all repetitions of one algorithm.
type Summary struct {
	Algorithm search.Algorithm

	// Runs is the repetition count behind the statistics.
	Runs int

	// Best-coverage statistics across repetitions. StdDev is the sample
	// standard deviation, 0 when Runs == 1.
	MeanCoverage   float64
	StdDevCoverage float64
	MinCoverage    float64
	MaxCoverage    float64

	// MeanEvaluations is the average oracle spend per repetition.
	MeanEvaluations float64

	// SuccessRate is the fraction of repetitions whose best coverage
	// reached the required coverage.
	SuccessRate float64

	// Reasons tallies termination reasons across repetitions.
	Reasons map[search.TerminationReason]int
}

// DirectFactory returns a NewOracle function producing an independent
// direct oracle per repetition over one shared map.
func DirectFactory(m *radiomap.Map, thresholdDBm float64) func() (coverage.Oracle, error) {
	return func() (coverage.Oracle, error) {
		return coverage.NewDirect(m, thresholdDBm)
	}
}

// TableFactory returns a NewOracle function wrapping one shared
// precomputed table with a private evaluation counter per repetition.
// The table itself is read-only under Evaluate, so sharing is safe; only
// the metering must not be shared.
func TableFactory(t *coverage.Table) func() (coverage.Oracle, error) {
	return func() (coverage.Oracle, error) {
		if t == nil {
			return nil, search.ErrNilOracle
		}
		return &meteredTable{table: t}, nil
	}
}

// meteredTable gives one repetition its own evaluation counter over a
// shared table. It forwards Indexed so the random baseline still draws
// from the table's combination list.
type meteredTable struct {
	table *coverage.Table
	evals atomic.Uint64
}

func (m *meteredTable) Evaluate(s subset.Subset) (coverage.Stats, error) {
	st, err := m.table.Evaluate(s)
	if err == nil {
		m.evals.Add(1)
	}
	return st, err
}

func (m *meteredTable) Evaluations() uint64 { return m.evals.Load() }

func (m *meteredTable) ResetEvaluations() { m.evals.Store(0) }

func (m *meteredTable) Len() int { return m.table.Len() }

func (m *meteredTable) At(i int) subset.Subset { return m.table.At(i) }
