package models

import "encoding/json"

// MaxReceipts is the upper bound on attachments per record enforced at the
// editing layer. The store itself persists whatever it is handed.
const MaxReceipts = 3

// Receipt is a single receipt attachment: a display name plus the remote
// location of the uploaded file.
type Receipt struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
}

// EncodeReceipts serializes receipts into the blob form stored on the
// record. A nil or empty list encodes as an empty JSON array so the column
// never holds SQL-visible garbage.
func EncodeReceipts(receipts []Receipt) string {
	if len(receipts) == 0 {
		return "[]"
	}

	blob, err := json.Marshal(receipts)
	if err != nil {
		return "[]"
	}

	return string(blob)
}

// DecodeReceipts parses a stored receipts blob. Malformed input decodes to
// an empty list rather than failing the record that carries it.
func DecodeReceipts(blob string) []Receipt {
	if blob == "" {
		return []Receipt{}
	}

	var receipts []Receipt
	if err := json.Unmarshal([]byte(blob), &receipts); err != nil {
		return []Receipt{}
	}
	if receipts == nil {
		return []Receipt{}
	}

	return receipts
}
