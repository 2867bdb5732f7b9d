// Package radiomap holds the measurement data every solver consumes:
// a fixed universe of L candidate transmission sites and K measurement
// points, with the received power of each (point, site) pair in dBm.
//
// The table is loaded once per run and is read-only afterwards. Storage
// is a single flat []float64 indexed k*L + l, so row access is a cheap
// subslice and the hot aggregation loops touch contiguous memory.
//
// The package also provides the dB-domain helpers shared by the coverage
// oracle (DBmToMilliwatt / MilliwattToDBm) and loaders for the two table
// formats the surrounding tooling produces: CSV and XLSX workbooks.
//
// Construction fails fast on degenerate input: zero sites, zero
// measurement points, shape mismatches and non-finite power values are
// all rejected with sentinel errors rather than carried into a search.
package radiomap
