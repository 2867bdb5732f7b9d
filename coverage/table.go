package coverage

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/sitecover/radiomap"
	"github.com/katalvlaran/sitecover/subset"
)

// MaxTableEntries caps how many combinations BuildTable will enumerate.
// C(L,M) grows fast; beyond this a precomputed table stops paying for
// itself and the direct oracle should be used instead.
const MaxTableEntries = 5_000_000

// maxUniverse bounds the site count so each index fits the 2-byte key slot.
const maxUniverse = math.MaxUint16

// ErrUniverseTooLarge indicates a site count beyond the table key width.
var ErrUniverseTooLarge = errors.New("coverage: universe too large for table keys")

// TableEntry is one precomputed combination, used to rebuild a Table from
// an external store.
type TableEntry struct {
	// Indices are the active sites, ascending.
	Indices []int
	// Stats is the precomputed coverage of that selection.
	Stats Stats
}

// Table answers coverage queries for every selection of one fixed
// cardinality by exact lookup. Entries are kept in lexicographic order of
// their active indices, so At(i) is stable across builds of the same map.
type Table struct {
	universe  int
	size      int
	threshold float64
	index     map[string]int
	subs      []subset.Subset
	stats     []Stats
	evals     atomic.Uint64
}

// BuildTable enumerates every size-of-universe combination of m's sites in
// lexicographic order and precomputes its coverage under thresholdDBm.
// Fails with ErrTableTooLarge when C(sites, size) exceeds MaxTableEntries.
func BuildTable(m *radiomap.Map, size int, thresholdDBm float64) (*Table, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if math.IsNaN(thresholdDBm) || math.IsInf(thresholdDBm, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, thresholdDBm)
	}
	universe := m.Sites()
	if universe > maxUniverse {
		return nil, fmt.Errorf("%w: %d sites", ErrUniverseTooLarge, universe)
	}
	if size < 1 || size > universe {
		return nil, fmt.Errorf("%w: size %d over %d sites", ErrBadEntry, size, universe)
	}
	count, ok := binomial(universe, size)
	if !ok || count > MaxTableEntries {
		return nil, fmt.Errorf("%w: C(%d,%d) exceeds %d", ErrTableTooLarge, universe, size, MaxTableEntries)
	}

	t := &Table{
		universe:  universe,
		size:      size,
		threshold: thresholdDBm,
		index:     make(map[string]int, count),
		subs:      make([]subset.Subset, 0, count),
		stats:     make([]Stats, 0, count),
	}

	active := make([]int, size)
	for i := range active {
		active[i] = i
	}
	for {
		s, err := subset.FromIndices(universe, active)
		if err != nil {
			return nil, err
		}
		t.index[comboKey(active)] = len(t.subs)
		t.subs = append(t.subs, s)
		t.stats = append(t.stats, computeStats(m, thresholdDBm, active))

		// Advance to the next combination in lexicographic order.
		i := size - 1
		for i >= 0 && active[i] == universe-size+i {
			i--
		}
		if i < 0 {
			break
		}
		active[i]++
		for j := i + 1; j < size; j++ {
			active[j] = active[j-1] + 1
		}
	}
	return t, nil
}

// NewTable rebuilds a Table from externally stored entries, e.g. a
// persisted precompute run. Entry order is preserved, so a store that
// kept the build order keeps At(i) stable too.
func NewTable(universe, size int, thresholdDBm float64, entries []TableEntry) (*Table, error) {
	if universe < 1 || universe > maxUniverse {
		return nil, fmt.Errorf("%w: %d sites", ErrUniverseTooLarge, universe)
	}
	if size < 1 || size > universe {
		return nil, fmt.Errorf("%w: size %d over %d sites", ErrBadEntry, size, universe)
	}
	if math.IsNaN(thresholdDBm) || math.IsInf(thresholdDBm, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadThreshold, thresholdDBm)
	}

	t := &Table{
		universe:  universe,
		size:      size,
		threshold: thresholdDBm,
		index:     make(map[string]int, len(entries)),
		subs:      make([]subset.Subset, 0, len(entries)),
		stats:     make([]Stats, 0, len(entries)),
	}
	for i, e := range entries {
		if len(e.Indices) != size {
			return nil, fmt.Errorf("%w: entry %d selects %d sites, want %d", ErrBadEntry, i, len(e.Indices), size)
		}
		s, err := subset.FromIndices(universe, e.Indices)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		key := comboKey(s.Indices())
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%w: entry %d repeats %v", ErrBadEntry, i, e.Indices)
		}
		t.index[key] = len(t.subs)
		t.subs = append(t.subs, s)
		t.stats = append(t.stats, e.Stats)
	}
	return t, nil
}

// Universe returns the site count L the table was built over.
func (t *Table) Universe() int { return t.universe }

// SubsetSize returns the fixed cardinality M of every entry.
func (t *Table) SubsetSize() int { return t.size }

// Threshold returns the coverage threshold in dBm.
func (t *Table) Threshold() float64 { return t.threshold }

// Evaluate implements Oracle by exact lookup. Selections over the wrong
// universe fail with ErrUniverseMismatch; selections the table does not
// hold fail with ErrCombinationUnknown. Neither failure is counted.
func (t *Table) Evaluate(s subset.Subset) (Stats, error) {
	if s.Len() != t.universe {
		return Stats{}, fmt.Errorf("%w: selection over %d sites, table has %d",
			ErrUniverseMismatch, s.Len(), t.universe)
	}
	i, ok := t.index[comboKey(s.Indices())]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %s", ErrCombinationUnknown, s)
	}
	t.evals.Add(1)
	return t.stats[i], nil
}

// Evaluations implements Oracle.
func (t *Table) Evaluations() uint64 { return t.evals.Load() }

// ResetEvaluations implements Oracle.
func (t *Table) ResetEvaluations() { t.evals.Store(0) }

// Len implements Indexed.
func (t *Table) Len() int { return len(t.subs) }

// At implements Indexed.
func (t *Table) At(i int) subset.Subset { return t.subs[i].Clone() }

// Entries returns every combination with its precomputed coverage, in
// table order. Used when persisting the table.
func (t *Table) Entries() []TableEntry {
	out := make([]TableEntry, len(t.subs))
	for i, s := range t.subs {
		out[i] = TableEntry{Indices: s.Indices(), Stats: t.stats[i]}
	}
	return out
}

// comboKey packs ascending indices into a compact map key, two bytes each.
func comboKey(indices []int) string {
	b := make([]byte, 2*len(indices))
	for i, idx := range indices {
		b[2*i] = byte(idx >> 8)
		b[2*i+1] = byte(idx)
	}
	return string(b)
}

// binomial returns C(n, k) and whether it stayed within the table cap
// during computation.
func binomial(n, k int) (int, bool) {
	if k < 0 || k > n {
		return 0, false
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
		if c > MaxTableEntries {
			return c, false
		}
	}
	return c, true
}
