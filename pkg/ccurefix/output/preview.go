package output

import (
	"fmt"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
)

// DefaultPreviewLimit caps how many records previews display.
const DefaultPreviewLimit = 100

// Preview is the slice of a record list shown to the user.
type Preview struct {
	// Records are the records to display.
	Records []models.Record
	// Total is the number of records in the full list.
	Total int
}

// NewPreview keeps at most limit records. A limit <= 0 uses
// DefaultPreviewLimit.
func NewPreview(records []models.Record, limit int) Preview {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	shown := records
	if len(shown) > limit {
		shown = shown[:limit]
	}
	return Preview{Records: shown, Total: len(records)}
}

// Truncated reports whether some records were left out.
func (p Preview) Truncated() bool {
	return len(p.Records) < p.Total
}

// Footer is the note shown under a truncated preview, or "".
func (p Preview) Footer() string {
	if !p.Truncated() {
		return ""
	}
	return fmt.Sprintf("Mostrando %d primeras filas de %d.", len(p.Records), p.Total)
}
