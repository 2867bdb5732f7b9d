package radiomap

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet consulted when no WithSheet option is given.
const defaultSheet = "Sheet1"

// SheetOption adjusts how workbook I/O locates the power table.
type SheetOption func(*sheetConfig)

type sheetConfig struct {
	sheet string
}

// WithSheet selects the worksheet holding the table. Defaults to "Sheet1".
func WithSheet(name string) SheetOption {
	return func(c *sheetConfig) { c.sheet = name }
}

func resolveSheet(opts []SheetOption) string {
	cfg := sheetConfig{sheet: defaultSheet}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg.sheet
}

// LoadXLSX reads a power table from an Excel workbook. Layout matches
// LoadCSV: header row of site IDs, one row of dBm readings per point.
func LoadXLSX(path string, opts ...SheetOption) (*Map, error) {
	sheet := resolveSheet(opts)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("radiomap: opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("radiomap: reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return fromStringTable(rows)
}

// WriteXLSX writes m as a workbook sheet in the layout LoadXLSX reads.
// Power cells are stored as numbers, not text.
func WriteXLSX(path string, m *Map, opts ...SheetOption) error {
	sheet := resolveSheet(opts)

	f := excelize.NewFile()
	defer f.Close()
	if sheet != defaultSheet {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("radiomap: creating sheet %q: %w", sheet, err)
		}
	}

	for l, id := range m.siteIDs {
		cell, err := excelize.CoordinatesToCellName(l+1, 1)
		if err != nil {
			return fmt.Errorf("radiomap: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, id); err != nil {
			return fmt.Errorf("radiomap: writing header: %w", err)
		}
	}
	for k := 0; k < m.points; k++ {
		for l, v := range m.Row(k) {
			cell, err := excelize.CoordinatesToCellName(l+1, k+2)
			if err != nil {
				return fmt.Errorf("radiomap: data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("radiomap: writing row %d: %w", k, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("radiomap: saving workbook: %w", err)
	}
	return nil
}
