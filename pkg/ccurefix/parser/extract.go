package parser

import (
	"regexp"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
)

var (
	cardRE        = regexp.MustCompile(`(?i)\(Card:\s*(\d+)\)`)
	quotedRE      = regexp.MustCompile(`'(.*?)'`)
	doorRE        = regexp.MustCompile(`(?i)\ben\s+'(.*?)'`)
	messageTypeRE = regexp.MustCompile(`(?i)^(Admitido|Denegado|Rechazado)`)
)

// ExtractRecord builds a record from one block's text and date.
// Each field is matched independently; a field with no match is "".
func ExtractRecord(text, date string) models.Record {
	return models.Record{
		Numero:      firstGroup(cardRE, text),
		Name:        firstGroup(quotedRE, text),
		DoorName:    firstGroup(doorRE, text),
		MessageType: firstGroup(messageTypeRE, text),
		MessageText: text,
		DateTime:    date,
	}
}

// ExtractRecords converts blocks to records, preserving order.
func ExtractRecords(blocks []models.Block) []models.Record {
	records := make([]models.Record, 0, len(blocks))
	for _, b := range blocks {
		records = append(records, ExtractRecord(b.Text, b.Date))
	}
	return records
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return ""
}
