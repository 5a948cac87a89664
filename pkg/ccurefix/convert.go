package ccurefix

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/input"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/parser"
)

// FallbackFileName is offered for downloads when the upload had no name.
const FallbackFileName = "reporte_fixed.xlsx"

// Convert reads the first sheet of the file at path and rebuilds its records.
func Convert(path string, opts Options) (*models.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, NewConversionError(filepath.Base(path), "open", err)
	}
	defer f.Close()

	return ConvertReader(f, filepath.Base(path), opts)
}

// ConvertReader decodes r as the file named name and rebuilds its records.
// The format is chosen from name's extension.
func ConvertReader(r io.Reader, name string, opts Options) (*models.Report, error) {
	format, err := input.DetectFormat(name)
	if err != nil {
		return nil, err
	}

	sheet, err := input.Read(r, format, opts.CharsetOrDefault())
	if err != nil {
		return nil, NewConversionError(name, "read", err)
	}

	report := ConvertRows(sheet.Rows, opts)
	report.BookName = filepath.Base(name)
	report.SheetName = sheet.Name
	return report, nil
}

// ConvertRows rebuilds records from decoded rows. rows[0] is the header;
// no rows yields an empty report.
func ConvertRows(rows [][]string, opts Options) *models.Report {
	report := &models.Report{Records: []models.Record{}}
	if len(rows) == 0 {
		return report
	}

	col := parser.ResolveMessageColumn(rows[0])
	if opts.MessageColumn != nil && *opts.MessageColumn >= 0 {
		col = *opts.MessageColumn
	}

	data := rows[1:]
	blocks := parser.Segment(data, col)

	report.MessageColumn = col
	report.DataRows = len(data)
	report.Records = parser.ExtractRecords(blocks)
	return report
}

// FixedFileName derives the download name for a corrected workbook:
// "<stem>_fixed.xlsx", or FallbackFileName when name is empty.
func FixedFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return FallbackFileName
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return FallbackFileName
	}
	return stem + "_fixed.xlsx"
}
