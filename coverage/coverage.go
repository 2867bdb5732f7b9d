package coverage

import (
	"errors"

	"github.com/katalvlaran/sitecover/subset"
)

var (
	// ErrNilMap indicates an oracle constructed without measurement data.
	ErrNilMap = errors.New("coverage: measurement map is nil")
	// ErrBadThreshold indicates a NaN or infinite coverage threshold.
	ErrBadThreshold = errors.New("coverage: threshold must be finite")
	// ErrUniverseMismatch indicates a selection over the wrong site count.
	ErrUniverseMismatch = errors.New("coverage: selection universe does not match oracle")
	// ErrCombinationUnknown indicates a selection absent from a lookup table.
	ErrCombinationUnknown = errors.New("coverage: combination not present in table")
	// ErrTableTooLarge indicates a combination count beyond the table cap.
	ErrTableTooLarge = errors.New("coverage: too many combinations to tabulate")
	// ErrBadEntry indicates a table entry whose shape contradicts the table.
	ErrBadEntry = errors.New("coverage: table entry does not match table shape")
)

// Stats is the outcome of evaluating one selection.
type Stats struct {
	// Ratio is the fraction of measurement points covered, in [0,1].
	Ratio float64
	// MeanPower is the mean combined received power across all points,
	// in dBm. Negative infinity for an empty selection.
	MeanPower float64
}

// Oracle answers coverage queries and meters how many it has answered.
// Implementations are safe for concurrent use.
type Oracle interface {
	// Evaluate computes the coverage of one selection. Every successful
	// call increments the evaluation counter by exactly one; failed calls
	// leave it untouched.
	Evaluate(s subset.Subset) (Stats, error)
	// Evaluations returns the number of successful Evaluate calls since
	// construction or the last reset.
	Evaluations() uint64
	// ResetEvaluations zeroes the counter.
	ResetEvaluations()
}

// Indexed is implemented by oracles that can enumerate every selection
// they know about, letting a sampler draw uniformly without rejection.
type Indexed interface {
	// Len returns the number of known selections.
	Len() int
	// At returns an independent copy of the i-th selection, with entries
	// ordered lexicographically by active index.
	At(i int) subset.Subset
}
