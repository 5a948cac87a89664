// Package ccurefix rebuilds structured access-control records from
// spreadsheet exports whose messages wrap across several rows.
package ccurefix

import (
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/input"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/output"
)

// DefaultPreviewLimit is the number of records shown in previews.
const DefaultPreviewLimit = output.DefaultPreviewLimit

// Options configures conversion behavior.
type Options struct {
	// Charset is the text encoding of CSV and legacy .xls input.
	// Empty means UTF-8.
	Charset string
	// MessageColumn forces the zero-based message column.
	// If nil, the column is detected from the header row.
	MessageColumn *int
	// PreviewLimit caps how many records previews display.
	// Zero or negative means DefaultPreviewLimit.
	PreviewLimit int
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Charset:      input.DefaultCharset,
		PreviewLimit: DefaultPreviewLimit,
	}
}

// CharsetOrDefault returns the input charset to use.
func (o Options) CharsetOrDefault() string {
	if o.Charset == "" {
		return input.DefaultCharset
	}
	return o.Charset
}

// PreviewRows returns how many records previews should display.
func (o Options) PreviewRows() int {
	if o.PreviewLimit <= 0 {
		return DefaultPreviewLimit
	}
	return o.PreviewLimit
}
