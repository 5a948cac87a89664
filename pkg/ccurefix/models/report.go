package models

// Report is the result of converting a single uploaded file.
type Report struct {
	// BookName is the source file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the name of the sheet that was read (empty for CSV).
	SheetName string `json:"sheet_name,omitempty"`
	// MessageColumn is the zero-based column the messages were read from.
	MessageColumn int `json:"message_column"`
	// DataRows is the number of rows read below the header.
	DataRows int `json:"data_rows"`
	// Records contains one record per block, in source order.
	Records []Record `json:"records"`
}
