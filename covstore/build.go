package covstore

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sitecover/coverage"
	"github.com/katalvlaran/sitecover/radiomap"
)

// Build enumerates every SubsetSize-of-L combination of m's sites,
// computes its coverage under thresholdDBm and streams the entries into
// the store through a write batch. The metadata record goes in last, so
// a store with metadata always holds a complete table.
//
// A store is single-shot: Build on a store that already holds a table
// fails with ErrAlreadyBuilt. Leftover entries from an interrupted
// earlier build are dropped before writing.
//
// Input validation is the coverage package's: expect coverage.ErrNilMap,
// coverage.ErrBadThreshold, coverage.ErrBadEntry, coverage.ErrTableTooLarge
// or coverage.ErrUniverseTooLarge via errors.Is.
func (s *Store) Build(m *radiomap.Map, subsetSize int, thresholdDBm float64) error {
	if s.db == nil {
		return ErrClosed
	}
	if s.meta != nil {
		return fmt.Errorf("%w: C(%d,%d)", ErrAlreadyBuilt, s.meta.Universe, s.meta.SubsetSize)
	}

	start := time.Now()
	table, err := coverage.BuildTable(m, subsetSize, thresholdDBm)
	if err != nil {
		return fmt.Errorf("covstore: precompute: %w", err)
	}

	// Clear any half-written combination entries from a crashed build.
	if err = s.db.DropPrefix([]byte(prefixCombo)); err != nil {
		return fmt.Errorf("covstore: drop stale entries: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, e := range table.Entries() {
		if err = wb.Set(comboKey(e.Indices), encodeStats(e.Stats)); err != nil {
			return fmt.Errorf("covstore: batch entry %v: %w", e.Indices, err)
		}
	}
	if err = wb.Flush(); err != nil {
		return fmt.Errorf("covstore: flush entries: %w", err)
	}

	meta := Meta{
		Universe:     table.Universe(),
		SubsetSize:   table.SubsetSize(),
		ThresholdDBm: table.Threshold(),
		Entries:      table.Len(),
		Fingerprint:  m.Fingerprint(),
	}
	if err = s.writeMeta(meta); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"universe":  meta.Universe,
		"size":      meta.SubsetSize,
		"threshold": meta.ThresholdDBm,
		"entries":   meta.Entries,
		"elapsed":   time.Since(start),
	}).Info("combination table built")
	return nil
}
