package radiomap

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
)

// Sentinel errors returned by Map construction and the loaders.
var (
	// ErrNoSites indicates the site universe is empty.
	ErrNoSites = errors.New("radiomap: site count must be positive")

	// ErrNoMeasurements indicates the measurement population is empty.
	ErrNoMeasurements = errors.New("radiomap: measurement point count must be positive")

	// ErrBadShape indicates len(power) != points*sites.
	ErrBadShape = errors.New("radiomap: power slice does not match points*sites")

	// ErrNonFinitePower indicates a NaN or infinite power value.
	ErrNonFinitePower = errors.New("radiomap: power values must be finite")

	// ErrBadSiteIDs indicates the supplied site ID list is unusable:
	// wrong length, an empty ID, or a duplicate ID.
	ErrBadSiteIDs = errors.New("radiomap: invalid site IDs")
)

// Map is the read-only site-by-measurement-point received-power table.
//
// Invariants (enforced by New, relied on everywhere else):
//   - points >= 1, sites >= 1
//   - len(power) == points*sites, every entry finite
//   - len(siteIDs) == sites, IDs unique and non-empty
type Map struct {
	points  int
	sites   int
	siteIDs []string
	power   []float64 // dBm, indexed k*sites + l
}

// Option customizes Map construction.
type Option func(*config)

type config struct {
	siteIDs []string
}

// WithSiteIDs attaches human-readable site labels. len(ids) must equal the
// site count passed to New; IDs must be unique and non-empty.
func WithSiteIDs(ids []string) Option {
	return func(c *config) { c.siteIDs = ids }
}

// New builds a Map from a flat power table in dBm, indexed k*sites + l.
// The slice is copied; callers may reuse their buffer.
//
// Errors: ErrNoSites, ErrNoMeasurements, ErrBadShape, ErrNonFinitePower,
// ErrBadSiteIDs.
//
// Complexity: O(points*sites) time and space.
func New(points, sites int, power []float64, opts ...Option) (*Map, error) {
	if sites < 1 {
		return nil, ErrNoSites
	}
	if points < 1 {
		return nil, ErrNoMeasurements
	}
	if len(power) != points*sites {
		return nil, fmt.Errorf("%w: got %d values for %dx%d", ErrBadShape, len(power), points, sites)
	}
	for i, v := range power {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: power[%d]=%v", ErrNonFinitePower, i, v)
		}
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}
	ids := c.siteIDs
	if ids == nil {
		ids = DefaultSiteIDs(sites)
	} else {
		if err := validateSiteIDs(ids, sites); err != nil {
			return nil, err
		}
		ids = append([]string(nil), ids...)
	}

	m := &Map{
		points:  points,
		sites:   sites,
		siteIDs: ids,
		power:   append([]float64(nil), power...),
	}
	return m, nil
}

// DefaultSiteIDs returns the canonical labels "S00", "S01", ... used when
// a dataset carries no site names of its own.
func DefaultSiteIDs(sites int) []string {
	ids := make([]string, sites)
	for l := 0; l < sites; l++ {
		ids[l] = fmt.Sprintf("S%02d", l)
	}
	return ids
}

func validateSiteIDs(ids []string, sites int) error {
	if len(ids) != sites {
		return fmt.Errorf("%w: got %d IDs for %d sites", ErrBadSiteIDs, len(ids), sites)
	}
	seen := make(map[string]struct{}, sites)
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty ID at index %d", ErrBadSiteIDs, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate ID %q", ErrBadSiteIDs, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Sites returns L, the size of the candidate site universe.
func (m *Map) Sites() int { return m.sites }

// Points returns K, the size of the measurement population.
func (m *Map) Points() int { return m.points }

// Power returns the received power in dBm at measurement point k from
// site l. Indices must be in range; out-of-range access panics like any
// slice access (hot-path accessor, no error return).
func (m *Map) Power(k, l int) float64 { return m.power[k*m.sites+l] }

// Row returns the k-th measurement point's per-site power values as a
// subslice of the backing array. Callers must treat it as read-only.
func (m *Map) Row(k int) []float64 { return m.power[k*m.sites : (k+1)*m.sites] }

// SiteID returns the label of site l.
func (m *Map) SiteID(l int) string { return m.siteIDs[l] }

// SiteIDs returns a copy of all site labels in index order.
func (m *Map) SiteIDs() []string { return append([]string(nil), m.siteIDs...) }

// Fingerprint returns a stable FNV-1a digest of the table dimensions and
// every power value. Two Maps with equal fingerprints hold bit-identical
// data; the combination-table store uses this to reject stale tables.
//
// Complexity: O(points*sites).
func (m *Map) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(u uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(u >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	put(uint64(m.points))
	put(uint64(m.sites))
	for _, v := range m.power {
		put(math.Float64bits(v))
	}
	return h.Sum64()
}

// DBmToMilliwatt converts a log-domain power value to the linear domain.
func DBmToMilliwatt(dbm float64) float64 { return math.Pow(10, dbm/10) }

// MilliwattToDBm converts a linear-domain power value back to dBm.
// mw must be positive; the aggregation paths only ever pass sums of
// positive terms.
func MilliwattToDBm(mw float64) float64 { return 10 * math.Log10(mw) }
