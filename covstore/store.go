package covstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/sitecover/coverage"
)

// log carries the package prefix on every covstore record.
var log = logrus.WithField("prefix", "covstore")

// Key layout inside the Badger keyspace. Combination keys sort in
// lexicographic order of their ascending site indices, which is exactly
// the in-memory build order.
const (
	keyMeta     = "meta:"
	prefixCombo = "c:"
)

// comboValueLen is the fixed width of a stored entry value: two
// big-endian IEEE-754 doubles, ratio then mean power.
const comboValueLen = 16

// Meta binds a stored table to the inputs it was built from.
type Meta struct {
	// Universe is the candidate site count L.
	Universe int `json:"universe"`

	// SubsetSize is the fixed cardinality M of every stored combination.
	SubsetSize int `json:"subset_size"`

	// ThresholdDBm is the coverage threshold the stats were computed under.
	ThresholdDBm float64 `json:"threshold_dbm"`

	// Entries is the number of stored combinations, C(Universe, SubsetSize).
	Entries int `json:"entries"`

	// Fingerprint is radiomap.Map.Fingerprint() of the source dataset.
	Fingerprint uint64 `json:"fingerprint"`
}

// Options configures Open.
type Options struct {
	// Dir is the Badger data directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the whole store in RAM with no files. Handy for
	// tests and one-shot runs.
	InMemory bool

	// SyncWrites forces an fsync per write batch. Slower, survives
	// power loss mid-build.
	SyncWrites bool
}

// DefaultOptions returns the options most callers want: an on-disk store
// under dir, or a purely in-memory one when dir is empty.
func DefaultOptions(dir string) Options {
	return Options{
		Dir:      dir,
		InMemory: dir == "",
	}
}

// Store is a handle on one persisted coverage table. Reads (Get, Load,
// Meta, CompatibleWith) are safe for concurrent use; Build is not.
type Store struct {
	db   *badger.DB
	meta *Meta
}

// Open opens or creates the store and reads its metadata record if one
// exists. Badger's own logger is disabled; covstore logs through logrus.
func Open(opts Options) (*Store, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bopts = badger.DefaultOptions(opts.Dir)
	}
	bopts = bopts.WithSyncWrites(opts.SyncWrites).WithLogger(nil)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("covstore: open badger: %w", err)
	}

	s := &Store{db: db}
	if err = s.readMeta(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database. The store is unusable after.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Meta returns a copy of the metadata record and whether one exists.
func (s *Store) Meta() (Meta, bool) {
	if s.meta == nil {
		return Meta{}, false
	}
	return *s.meta, true
}

// readMeta loads the metadata record into s.meta, leaving it nil when
// the store holds no completed table.
func (s *Store) readMeta() error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyMeta))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("covstore: read meta: %w", err)
		}
		return item.Value(func(val []byte) error {
			var m Meta
			if jerr := json.Unmarshal(val, &m); jerr != nil {
				return fmt.Errorf("%w: meta record: %v", ErrCorruptEntry, jerr)
			}
			s.meta = &m
			return nil
		})
	})
}

// writeMeta persists m and caches it on the store.
func (s *Store) writeMeta(m Meta) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("covstore: encode meta: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyMeta), data)
	})
	if err != nil {
		return fmt.Errorf("covstore: write meta: %w", err)
	}
	s.meta = &m
	return nil
}

// comboKey packs ascending site indices into a store key, two big-endian
// bytes per index after the prefix.
func comboKey(indices []int) []byte {
	key := make([]byte, len(prefixCombo)+2*len(indices))
	copy(key, prefixCombo)
	for i, idx := range indices {
		binary.BigEndian.PutUint16(key[len(prefixCombo)+2*i:], uint16(idx))
	}
	return key
}

// decodeComboKey reverses comboKey. The prefix is assumed stripped.
func decodeComboKey(packed []byte, size int) ([]int, error) {
	if len(packed) != 2*size {
		return nil, fmt.Errorf("%w: key holds %d bytes, want %d", ErrCorruptEntry, len(packed), 2*size)
	}
	indices := make([]int, size)
	for i := range indices {
		indices[i] = int(binary.BigEndian.Uint16(packed[2*i:]))
	}
	return indices, nil
}

// encodeStats packs a Stats value into its fixed-width store form.
func encodeStats(st coverage.Stats) []byte {
	val := make([]byte, comboValueLen)
	binary.BigEndian.PutUint64(val, math.Float64bits(st.Ratio))
	binary.BigEndian.PutUint64(val[8:], math.Float64bits(st.MeanPower))
	return val
}

// decodeStats reverses encodeStats.
func decodeStats(val []byte) (coverage.Stats, error) {
	if len(val) != comboValueLen {
		return coverage.Stats{}, fmt.Errorf("%w: value holds %d bytes, want %d", ErrCorruptEntry, len(val), comboValueLen)
	}
	return coverage.Stats{
		Ratio:     math.Float64frombits(binary.BigEndian.Uint64(val)),
		MeanPower: math.Float64frombits(binary.BigEndian.Uint64(val[8:])),
	}, nil
}
