package parser

import (
	"regexp"
	"strings"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
)

// datePattern matches d/m/y h:m:s stamps with either "/" or "-" as the date
// separator. Both separators in one stamp must agree. Date and time may be
// split by any Unicode space, since exports often carry a no-break space.
var datePattern = regexp.MustCompile(
	`\b(?:\d{1,2}/\d{1,2}/(?:\d{4}|\d{2})|\d{1,2}-\d{1,2}-(?:\d{4}|\d{2}))[\s\p{Zs}]+\d{1,2}:\d{2}:\d{2}\b`,
)

// FindDate returns the first date/time stamp in the row, searching all
// cells joined with a single space.
func FindDate(row []string) (string, bool) {
	m := datePattern.FindString(strings.Join(row, " "))
	return m, m != ""
}

// Segmenter groups consecutive message fragments into blocks. A block closes
// when a fragment ends with "." The last seen date survives block
// boundaries, so untimed continuation rows inherit the previous stamp.
//
// The zero value is ready to use with MessageColumn 0.
type Segmenter struct {
	// MessageColumn is the zero-based column holding message text.
	MessageColumn int

	pending  []string
	rows     []int
	lastDate string
}

// NewSegmenter returns a Segmenter reading messages from column col.
func NewSegmenter(col int) *Segmenter {
	return &Segmenter{MessageColumn: col}
}

// Add feeds one data row. rowNum is the row's 1-based position in the sheet
// and is only recorded for diagnostics. It returns the completed block when
// this row terminates one.
func (s *Segmenter) Add(rowNum int, row []string) (models.Block, bool) {
	message := cell(row, s.MessageColumn)
	if message == "" {
		return models.Block{}, false
	}

	if date, ok := FindDate(row); ok {
		s.lastDate = date
	}

	s.pending = append(s.pending, message)
	s.rows = append(s.rows, rowNum)

	if !strings.HasSuffix(message, ".") {
		return models.Block{}, false
	}
	return s.emit(), true
}

// Flush returns the unterminated trailing block, if any.
func (s *Segmenter) Flush() (models.Block, bool) {
	if len(s.pending) == 0 {
		return models.Block{}, false
	}
	return s.emit(), true
}

// LastDate returns the most recent date/time stamp seen so far.
func (s *Segmenter) LastDate() string {
	return s.lastDate
}

func (s *Segmenter) emit() models.Block {
	b := models.Block{
		Text: NormalizeSpace(strings.Join(s.pending, " ")),
		Date: s.lastDate,
		Rows: s.rows,
	}
	s.pending = nil
	s.rows = nil
	return b
}

// Segment walks data rows in order and returns the blocks they form.
// Data rows are numbered from 2 since row 1 of the sheet is the header.
func Segment(rows [][]string, messageColumn int) []models.Block {
	seg := NewSegmenter(messageColumn)

	var blocks []models.Block
	for i, row := range rows {
		if b, ok := seg.Add(i+2, row); ok {
			blocks = append(blocks, b)
		}
	}
	if b, ok := seg.Flush(); ok {
		blocks = append(blocks, b)
	}
	return blocks
}

// cell returns the trimmed value at idx, or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
