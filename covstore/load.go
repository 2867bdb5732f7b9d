package covstore

import (
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/radiomap"
)

// Load materializes the stored table as a coverage.Table, ready to serve
// as both Oracle and Indexed for search runs. Badger iterates keys in
// byte order, which replays the original lexicographic build order, so
// the loaded table's At(i) matches the freshly built one's.
//
// Tables beyond coverage.MaxTableEntries are refused; Get still serves
// point lookups on such stores.
func (s *Store) Load() (*coverage.Table, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if s.meta == nil {
		return nil, ErrMetaMissing
	}
	meta := *s.meta
	if meta.Entries > coverage.MaxTableEntries {
		return nil, fmt.Errorf("%w: store holds %d entries", coverage.ErrTableTooLarge, meta.Entries)
	}

	entries := make([]coverage.TableEntry, 0, meta.Entries)
	err := s.db.View(func(txn *badger.Txn) error {
		iopts := badger.DefaultIteratorOptions
		iopts.Prefix = []byte(prefixCombo)
		it := txn.NewIterator(iopts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			indices, kerr := decodeComboKey(item.Key()[len(prefixCombo):], meta.SubsetSize)
			if kerr != nil {
				return kerr
			}
			verr := item.Value(func(val []byte) error {
				st, derr := decodeStats(val)
				if derr != nil {
					return derr
				}
				entries = append(entries, coverage.TableEntry{Indices: indices, Stats: st})
				return nil
			})
			if verr != nil {
				return verr
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("covstore: load entries: %w", err)
	}
	if len(entries) != meta.Entries {
		return nil, fmt.Errorf("%w: store holds %d entries, meta says %d", ErrCorruptEntry, len(entries), meta.Entries)
	}

	table, err := coverage.NewTable(meta.Universe, meta.SubsetSize, meta.ThresholdDBm, entries)
	if err != nil {
		return nil, fmt.Errorf("covstore: rebuild table: %w", err)
	}

	log.WithFields(logrus.Fields{
		"universe": meta.Universe,
		"size":     meta.SubsetSize,
		"entries":  meta.Entries,
	}).Info("combination table loaded")
	return table, nil
}

// Get looks one combination up straight from the store, without
// materializing the whole table. Site order in indices does not matter.
// The boolean reports whether the combination was found; a completed
// store misses only when the query names sites outside the build's
// universe shape, so most callers treat false as a bug upstream.
func (s *Store) Get(indices []int) (coverage.Stats, bool, error) {
	if s.db == nil {
		return coverage.Stats{}, false, ErrClosed
	}
	if s.meta == nil {
		return coverage.Stats{}, false, ErrMetaMissing
	}
	meta := *s.meta

	if len(indices) != meta.SubsetSize {
		return coverage.Stats{}, false, fmt.Errorf("%w: %d sites, table holds %d-site combinations",
			ErrBadLookup, len(indices), meta.SubsetSize)
	}
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	for i, idx := range sorted {
		if idx < 0 || idx >= meta.Universe {
			return coverage.Stats{}, false, fmt.Errorf("%w: site %d outside universe %d", ErrBadLookup, idx, meta.Universe)
		}
		if i > 0 && idx == sorted[i-1] {
			return coverage.Stats{}, false, fmt.Errorf("%w: site %d repeated", ErrBadLookup, idx)
		}
	}

	var (
		st    coverage.Stats
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, gerr := txn.Get(comboKey(sorted))
		if gerr == badger.ErrKeyNotFound {
			return nil
		}
		if gerr != nil {
			return gerr
		}
		return item.Value(func(val []byte) error {
			decoded, derr := decodeStats(val)
			if derr != nil {
				return derr
			}
			st = decoded
			found = true
			return nil
		})
	})
	if err != nil {
		return coverage.Stats{}, false, fmt.Errorf("covstore: lookup %v: %w", sorted, err)
	}
	return st, found, nil
}

// CompatibleWith verifies that the stored table was built from exactly
// these inputs: same dataset (by fingerprint), same universe, same
// cardinality, same threshold. ErrMetaMissing means nothing is stored
// yet; ErrMetaMismatch names the disagreeing field.
func (s *Store) CompatibleWith(m *radiomap.Map, subsetSize int, thresholdDBm float64) error {
	if s.db == nil {
		return ErrClosed
	}
	if m == nil {
		return coverage.ErrNilMap
	}
	if s.meta == nil {
		return ErrMetaMissing
	}
	meta := *s.meta

	switch {
	case meta.Universe != m.Sites():
		return fmt.Errorf("%w: universe %d, map has %d sites", ErrMetaMismatch, meta.Universe, m.Sites())
	case meta.SubsetSize != subsetSize:
		return fmt.Errorf("%w: cardinality %d, want %d", ErrMetaMismatch, meta.SubsetSize, subsetSize)
	case meta.ThresholdDBm != thresholdDBm:
		return fmt.Errorf("%w: threshold %v dBm, want %v dBm", ErrMetaMismatch, meta.ThresholdDBm, thresholdDBm)
	case meta.Fingerprint != m.Fingerprint():
		return fmt.Errorf("%w: dataset fingerprint %x, map has %x", ErrMetaMismatch, meta.Fingerprint, m.Fingerprint())
	}
	return nil
}
