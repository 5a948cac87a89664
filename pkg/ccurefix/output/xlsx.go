// Package output serializes and renders reconstructed records.
package output

import (
	"io"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single sheet in exported workbooks.
const SheetName = "Reporte"

// ToXLSX builds a workbook with one header row (models.Columns) followed by
// one row per record. Every cell is written as a string.
func ToXLSX(records []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeRow(f, 1, models.Columns); err != nil {
		f.Close()
		return nil, err
	}
	for i, rec := range records {
		if err := writeRow(f, i+2, rec.Values()); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteXLSX writes the exported workbook to w.
func WriteXLSX(w io.Writer, records []models.Record) error {
	f, err := ToXLSX(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveXLSX writes the exported workbook to path.
func SaveXLSX(path string, records []models.Record) error {
	f, err := ToXLSX(records)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
