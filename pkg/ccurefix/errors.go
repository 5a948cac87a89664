package ccurefix

import (
	"errors"
	"fmt"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/input"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the file extension is not .xlsx, .xlsm, .xls or .csv.
var ErrUnsupportedFormat = input.ErrUnsupportedFormat

// ErrNoSheets indicates the workbook has no worksheet to read.
var ErrNoSheets = input.ErrNoSheets

// ConversionError represents an error while converting one file.
type ConversionError struct {
	Name  string
	Stage string // "open", "read"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error for %q (%s): %v", e.Name, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(name, stage string, err error) *ConversionError {
	return &ConversionError{
		Name:  name,
		Stage: stage,
		Err:   err,
	}
}
