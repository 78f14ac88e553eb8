// Package export writes sampled curves to spreadsheets.
package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Table is one worksheet: a header row followed by numeric rows.
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]float64
}

// WriteXLSX saves the tables to path, one sheet each, in order.
func WriteXLSX(path string, tables ...Table) error {
	if len(tables) == 0 {
		return errors.New("export: no tables")
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Sheet); err != nil {
				return fmt.Errorf("export: sheet %q: %w", t.Sheet, err)
			}
		} else if _, err := f.NewSheet(t.Sheet); err != nil {
			return fmt.Errorf("export: sheet %q: %w", t.Sheet, err)
		}
		if err := writeTable(f, t, bold); err != nil {
			return fmt.Errorf("export: sheet %q: %w", t.Sheet, err)
		}
	}
	return f.SaveAs(path)
}

func writeTable(f *excelize.File, t Table, headerStyle int) error {
	sw, err := f.NewStreamWriter(t.Sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return err
	}

	for r, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return fmt.Errorf("row %d has %d values for %d columns", r+1, len(row), len(t.Headers))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for i, v := range row {
			values[i] = v
		}
		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}
	return sw.Flush()
}
