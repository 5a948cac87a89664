package input

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned when a workbook contains no worksheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ReadXLSX reads the first sheet of an OOXML workbook. Cell values are the
// formatted strings Excel would display.
func ReadXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadFirstSheet(f)
}

// ReadFirstSheet extracts every row of the workbook's first sheet.
func ReadFirstSheet(f *excelize.File) (*Sheet, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}

	return &Sheet{Name: sheetName, Rows: rows}, nil
}
