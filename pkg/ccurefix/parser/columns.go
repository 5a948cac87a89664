package parser

import (
	"regexp"
	"strings"
)

var (
	messageTextHeaderRE = regexp.MustCompile(`(?i)message\s*text`)
	textHeaderRE        = regexp.MustCompile(`(?i)text`)
)

// ResolveMessageColumn picks the column holding message text from the header
// row: a "Message Text" header first, then any header containing "text",
// falling back to column 0.
func ResolveMessageColumn(header []string) int {
	if i := headerIndex(header, messageTextHeaderRE); i >= 0 {
		return i
	}
	if i := headerIndex(header, textHeaderRE); i >= 0 {
		return i
	}
	return 0
}

func headerIndex(header []string, re *regexp.Regexp) int {
	for i, h := range header {
		if re.MatchString(strings.TrimSpace(h)) {
			return i
		}
	}
	return -1
}
