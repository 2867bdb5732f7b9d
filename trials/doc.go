// Package trials runs repeated, independently seeded searches and
// aggregates them into per-algorithm summaries, the raw material for
// comparing strategies on one instance.
//
// Stochastic searches are only comparable over repetitions: a single GA
// run says little against a single sampling run. Run executes R
// repetitions per requested algorithm, each with a seed derived from the
// base seed via search.DeriveSeed, so the whole suite is reproducible
// while no two repetitions share an RNG stream. Repetitions are
// independent and can run concurrently.
//
// Every repetition gets a fresh oracle from Spec.NewOracle so evaluation
// counts stay exact per run; a shared oracle's counter would interleave
// across concurrent runs. DirectFactory and TableFactory cover the two
// common cases.
//
// Aggregation per algorithm: mean/stddev/min/max of best coverage, mean
// evaluations, success rate against the required coverage, and a tally
// of termination reasons.
package trials
