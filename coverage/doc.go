// Package coverage computes how well a selection of transmission sites
// covers a set of measurement points, and meters how many of those
// computations a search has spent.
//
// A point counts as covered when the power it receives from the selected
// sites combined reaches the threshold. Powers are recorded in dBm, so
// combining is done in the linear milliwatt domain and converted back:
//
//	combined_k = 10*log10( Σ_{l ∈ selection} 10^(P[k,l]/10) )
//
// Two oracle flavors answer coverage queries:
//
//   - DirectOracle aggregates straight from the measurement table and
//     accepts selections of any cardinality, which constructive searches
//     need for their partial selections.
//   - Table holds precomputed results for every selection of one fixed
//     cardinality and answers by exact lookup only; asking it about any
//     other selection returns ErrCombinationUnknown.
//
// Both meter successful evaluations through an atomic counter so that
// search budgets and baseline comparisons count oracle work exactly.
// EvaluateBatch fans one population out over a bounded worker pool.
package coverage
