// Package models defines data structures for access-log reconstruction.
package models

// Column names of a reconstructed record, in export order.
const (
	ColNumero      = "Numero"
	ColName        = "Name"
	ColDoorName    = "Door Name"
	ColMessageType = "Message Type"
	ColMessageText = "Message Text"
	ColDateTime    = "Date/Time"
)

// Columns is the fixed column order used for export and display.
var Columns = []string{
	ColNumero,
	ColName,
	ColDoorName,
	ColMessageType,
	ColMessageText,
	ColDateTime,
}

// Record is one structured access-control event.
// Every field is always present; failed extraction leaves it empty.
type Record struct {
	// Numero is the card number taken from "(Card: N)".
	Numero string `json:"Numero"`
	// Name is the first single-quoted span of the message.
	Name string `json:"Name"`
	// DoorName is the quoted span following the word "en".
	DoorName string `json:"Door Name"`
	// MessageType is Admitido, Denegado or Rechazado when the message starts with it.
	MessageType string `json:"Message Type"`
	// MessageText is the full whitespace-normalized message.
	MessageText string `json:"Message Text"`
	// DateTime is the most recent date/time stamp seen up to the block close.
	DateTime string `json:"Date/Time"`
}

// Values returns the record fields in Columns order.
func (r Record) Values() []string {
	return []string{r.Numero, r.Name, r.DoorName, r.MessageType, r.MessageText, r.DateTime}
}
