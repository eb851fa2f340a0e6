// Package xlsx writes parsed database tables into Excel workbooks.
package xlsx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/wh3lua/pkg/tsv"
	"github.com/xuri/excelize/v2"
)

// ErrNoTables is returned when a workbook is requested without any tables.
var ErrNoTables = errors.New("no tables to write")

// Write saves tables into a workbook at path, one sheet per table. The
// sheet carries the column names in the first row and one record per row
// after that. Sheet names are squeezed into Excel's 31-character limit and
// deduplicated with a numeric suffix when truncation makes them collide.
func Write(path string, tables []*tsv.Table) error {
	if len(tables) == 0 {
		return ErrNoTables
	}

	f := excelize.NewFile()
	defer f.Close()
	defaultSheet := f.GetSheetName(0)

	used := make(map[string]bool, len(tables))
	for _, t := range tables {
		name := sheetName(t.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, t); err != nil {
			return err
		}
	}

	if !used[defaultSheet] {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t *tsv.Table) error {
	for col, name := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", sheet, err)
		}
	}

	for row, record := range t.Rows {
		for col, value := range record {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, cellValue(value)); err != nil {
				return fmt.Errorf("failed to write %s: %w", sheet, err)
			}
		}
	}
	return nil
}

// cellValue converts a cell to a typed value so numeric columns sort and
// filter properly in a spreadsheet.
func cellValue(cell string) any {
	if cell == "true" || cell == "false" {
		return cell == "true"
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}

// sheetName fits name into Excel's sheet name limit, keeping names unique
// by replacing the tail with a counter on collision.
func sheetName(name string, used map[string]bool) string {
	const maxLen = 31
	if len(name) > maxLen {
		name = name[:maxLen]
	}

	base := name
	for n := 2; used[name]; n++ {
		suffix := "~" + strconv.Itoa(n)
		if len(base)+len(suffix) > maxLen {
			name = base[:maxLen-len(suffix)] + suffix
		} else {
			name = base + suffix
		}
	}
	used[name] = true
	return name
}
