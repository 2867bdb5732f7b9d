// Package sitecover picks the best M-of-L transmission sites for a
// measured radio field: coverage oracles, evolutionary searches and
// deterministic baselines over one shared dBm power map.
//
// 🚀 What is sitecover?
//
//	A seed-deterministic toolkit that brings together:
//		• Radio maps: dense point x site dBm tables with CSV/XLSX round trip
//		• Selections: fixed-cardinality site subsets on compressed bitlists
//		• Oracles: on-the-fly aggregation or a precomputed C(L,M) table
//		• Searches: bitstring GA, probabilistic GA, greedy, local search, random
//		• Persistence: Badger-backed combination store with map fingerprinting
//		• Campaigns: repeated seeded trials, XLSX workbooks, convergence plots
//
// ✨ Why choose sitecover?
//
//   - Reproducible – every stochastic path is driven by an explicit seed
//   - Exact accounting – atomic oracle counters stay exact under parallelism
//   - Strict sentinels – each misuse fails fast with a named error
//   - Extensible – any coverage.Oracle implementation plugs into search.Solve
//
// Under the hood, everything is organized per subpackage:
//
//	radiomap/ - the immutable point x site power table + loaders
//	subset/   - fixed-cardinality selections over the site universe
//	coverage/ - Stats, the Oracle contract, direct & table oracles
//	covstore/ - persistent combination table on Badger
//	search/   - five strategies behind one Solve dispatcher
//	mapgen/   - synthetic scenarios: lattices, uniform placement, shadowing
//	trials/   - repeated-run campaigns with per-repetition derived seeds
//	report/   - XLSX tabulation and convergence charts
//
// Quick ASCII example (L=4 sites, M=2 chosen, one field):
//
//	    ·  ·  ▫  ·
//	    ▫ [1]  ·  ·        [n] chosen site
//	    ·  · [2]  ▫         ▫  covered point
//	    ·  ▫  ·  ·          ·  uncovered point
//
// Dive into DESIGN.md for the decision log behind the layout.
//
//	go get github.com/katalvlaran/sitecover
package sitecover
