// errors.go — sentinel errors for the covstore package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w`.
//   • Badger/coverage failures are wrapped and surface alongside these,
//     so errors.Is also matches badger.ErrKeyNotFound and the coverage
//     sentinels where documented.

package covstore

import "errors"

// ErrClosed indicates a call on a store whose Close has already run.
// Classification: lifecycle error.
// Usage: if errors.Is(err, ErrClosed) { /* reopen before use */ }.
var ErrClosed = errors.New("covstore: store is closed")

// ErrMetaMissing indicates the store holds no metadata record, i.e. no
// completed build. A store interrupted mid-build reports this too, since
// metadata is only written after the last entry.
// Usage: if errors.Is(err, ErrMetaMissing) { /* run Build */ }.
var ErrMetaMissing = errors.New("covstore: no completed table in store")

// ErrMetaMismatch indicates the stored table was built from different
// inputs than the caller expects: another map fingerprint, universe,
// cardinality or threshold.
// Usage: if errors.Is(err, ErrMetaMismatch) { /* rebuild elsewhere */ }.
var ErrMetaMismatch = errors.New("covstore: stored table built from different inputs")

// ErrAlreadyBuilt indicates Build ran on a store that already holds a
// completed table. A store is single-shot; precompute into a fresh
// directory instead of rebuilding in place.
// Usage: if errors.Is(err, ErrAlreadyBuilt) { /* open a new store */ }.
var ErrAlreadyBuilt = errors.New("covstore: store already holds a table")

// ErrCorruptEntry indicates a stored key or value that does not decode
// under the layout in doc.go: wrong key width, wrong value width, or an
// entry count disagreeing with the metadata record.
// Usage: if errors.Is(err, ErrCorruptEntry) { /* discard and rebuild */ }.
var ErrCorruptEntry = errors.New("covstore: undecodable stored entry")

// ErrBadLookup indicates Get was called with indices that can never name
// a stored combination: wrong cardinality, an out-of-range site, or a
// duplicate.
// Usage: if errors.Is(err, ErrBadLookup) { /* fix the query */ }.
var ErrBadLookup = errors.New("covstore: malformed combination lookup")
