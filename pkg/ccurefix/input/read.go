// Package input decodes the first sheet of an uploaded workbook into rows of
// strings. Empty cells come back as "".
package input

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Format identifies a supported input file type.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// Sheet is the decoded first sheet of a workbook.
type Sheet struct {
	// Name is the sheet name; empty for CSV input.
	Name string
	// Rows holds every row in file order, header first.
	Rows [][]string
}

// DetectFormat maps a file name to its input format by extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Read decodes r according to format. charset is used for legacy .xls and
// CSV input only.
func Read(r io.Reader, format Format, charset string) (*Sheet, error) {
	switch format {
	case FormatXLSX:
		return ReadXLSX(r)
	case FormatXLS:
		return ReadXLS(r, charset)
	case FormatCSV:
		return ReadCSV(r, charset)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
