package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCharset is assumed when no charset is given.
const DefaultCharset = "utf-8"

// charsets lists the single-byte code pages access-control exports are
// commonly saved in.
var charsets = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1251": charmap.Windows1251,
}

// ReadCSV reads a comma-separated export. UTF-8 input may start with a BOM;
// other charsets must be listed in charsets.
func ReadCSV(r io.Reader, charset string) (*Sheet, error) {
	dec, err := decoder(charset)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return &Sheet{Rows: rows}, nil
}

func decoder(charset string) (transform.Transformer, error) {
	name := charsetOrDefault(charset)
	switch name {
	case "utf-8", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	}
	if enc, ok := charsets[name]; ok {
		return enc.NewDecoder(), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}

func charsetOrDefault(charset string) string {
	charset = strings.ToLower(strings.TrimSpace(charset))
	if charset == "" {
		return DefaultCharset
	}
	return charset
}
