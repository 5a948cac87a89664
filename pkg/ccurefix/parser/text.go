// Package parser reconstructs access-control events from spreadsheet rows.
package parser

import "strings"

// NormalizeSpace collapses every run of whitespace to a single space and
// trims both ends. Applying it twice gives the same result as once.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
