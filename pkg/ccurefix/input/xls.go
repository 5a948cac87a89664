package input

import (
	"bytes"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// ReadXLS reads the first sheet of a legacy BIFF (.xls) workbook.
// Missing rows inside the used range are returned as empty rows so row
// order and numbering match the sheet.
func ReadXLS(r io.Reader, charset string) (*Sheet, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xls: %w", err)
	}
	wb, err := xls.OpenReader(bytes.NewReader(b), charsetOrDefault(charset))
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheets
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheets
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, []string{})
			continue
		}
		cols := make([]string, row.LastCol())
		for j := range cols {
			cols[j] = row.Col(j)
		}
		rows = append(rows, cols)
	}

	return &Sheet{Name: sheet.Name, Rows: trimTrailingEmpty(rows)}, nil
}

// trimTrailingEmpty drops empty rows at the end of the sheet.
func trimTrailingEmpty(rows [][]string) [][]string {
	for len(rows) > 0 && isEmptyRow(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
