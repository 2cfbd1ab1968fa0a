// Package export writes list screens to single-sheet xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Column struct {
	Header string
	Width  float64
}

// Sheet is one table: headers in row 1, data from row 2.
type Sheet struct {
	Entity  string
	Columns []Column
	Rows    [][]any
}

// FileName is the download name, e.g. Employees_2025-05-20.xlsx.
func FileName(entity string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", entity, now.Format("2006-01-02"))
}

func (s Sheet) FileName(now time.Time) string { return FileName(s.Entity, now) }

// Workbook builds the excelize file. Callers must Close it.
func (s Sheet) Workbook() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := s.Entity
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	for i, col := range s.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheet, name+"1", col.Header); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			f.Close()
			return nil, err
		}
	}

	for r, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", r+2, err)
		}
	}
	return f, nil
}

// Write streams the workbook to w.
func (s Sheet) Write(w io.Writer) error {
	f, err := s.Workbook()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
