package radiomap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrEmptyTable indicates a dataset with a header but no measurement rows,
// or no content at all.
var ErrEmptyTable = errors.New("radiomap: dataset has no measurement rows")

// ErrBadCell indicates a table cell that does not parse as a float.
var ErrBadCell = errors.New("radiomap: cell is not a number")

// LoadCSV reads a power table from CSV. The first row is the header of
// site IDs (one column per site); every following row holds that point's
// received power from each site, in dBm.
//
// Errors: ErrEmptyTable, ErrBadCell (with row/column context), ErrBadSiteIDs,
// plus any underlying csv read error.
func LoadCSV(r io.Reader) (*Map, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("radiomap: reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return fromStringTable(rows)
}

// WriteCSV writes m in the same layout LoadCSV reads.
func WriteCSV(w io.Writer, m *Map) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(m.siteIDs); err != nil {
		return fmt.Errorf("radiomap: writing csv header: %w", err)
	}
	row := make([]string, m.sites)
	for k := 0; k < m.points; k++ {
		vals := m.Row(k)
		for l, v := range vals {
			row[l] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("radiomap: writing csv row %d: %w", k, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// fromStringTable converts header+rows into a Map. Shared by the CSV and
// XLSX loaders; XLSX rows may be ragged (trailing empty cells dropped by
// the reader), which is rejected here as a shape error.
func fromStringTable(rows [][]string) (*Map, error) {
	header := rows[0]
	sites := len(header)
	if sites == 0 {
		return nil, ErrNoSites
	}
	data := rows[1:]
	if len(data) == 0 {
		return nil, ErrEmptyTable
	}

	power := make([]float64, 0, len(data)*sites)
	for ri, row := range data {
		if len(row) != sites {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrBadShape, ri+1, len(row), sites)
		}
		for ci, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d (%q)", ErrBadCell, ri+1, ci, cell)
			}
			power = append(power, v)
		}
	}
	return New(len(data), sites, power, WithSiteIDs(header))
}
