// Package covstore persists a precomputed coverage table in a Badger
// key-value store so expensive C(L,M) sweeps survive process restarts.
//
// A store holds exactly one table: every size-M combination of a map's L
// candidate sites, each with its coverage ratio and mean combined power,
// plus one metadata record binding the table to its inputs (universe,
// cardinality, threshold, entry count, dataset fingerprint).
//
// Layout:
//
//	"meta:"          → JSON Meta record, written only after every entry
//	"c:" + indices   → 16-byte value, big-endian IEEE-754 ratio and mean power
//
// Combination keys pack the ascending site indices two bytes each, so
// Badger's byte-ordered iteration replays the exact lexicographic build
// order and Load reconstructs a table whose At(i) matches the one
// BuildTable would produce in memory.
//
// The metadata record is written last. An interrupted build therefore
// leaves a store without "meta:", which Load and Get refuse with
// ErrMetaMissing; rebuilding drops any half-written entries first.
//
// Typical precompute-then-reuse flow:
//
//	st, err := covstore.Open(covstore.DefaultOptions("/var/lib/sitecover"))
//	...
//	defer st.Close()
//	if err = st.CompatibleWith(m, 4, -58); errors.Is(err, covstore.ErrMetaMissing) {
//		err = st.Build(m, 4, -58)
//	}
//	...
//	table, err := st.Load() // *coverage.Table, pluggable into search.Solve
package covstore
