package output

import (
	"encoding/json"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
