package models

// Block is one logical message reassembled from consecutive source rows.
type Block struct {
	// Text is the joined, whitespace-normalized message.
	Text string `json:"text"`
	// Date is the last date/time seen when the block closed (may be empty).
	Date string `json:"date"`
	// Rows lists the 1-based sheet rows that contributed fragments.
	Rows []int `json:"rows"`
}
