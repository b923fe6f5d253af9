package models

// ChatMessage is one turn of the conversational assistant exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is sent to the assistant endpoint: the new message plus the
// prior turns so the server can keep conversational context.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

// ChatResponse is the assistant's reply, optionally referencing warranties
// it looked up while answering.
type ChatResponse struct {
	Reply     string   `json:"reply"`
	ServerIDs []string `json:"warrantyIds,omitempty"`
}

// ReceiptScan is the field set the OCR endpoint extracts from an uploaded
// receipt image. Absent fields stay zero-valued and the form falls back to
// manual entry.
type ReceiptScan struct {
	ProductName    string    `json:"productName"`
	PurchaseDate   string    `json:"purchaseDate"`
	WarrantyMonths int       `json:"warrantyMonths"`
	Category       string    `json:"category"`
	Receipts       []Receipt `json:"receipts"`
}

// ImageLookupRequest asks the server to find a stock image for a product.
type ImageLookupRequest struct {
	ProductName string `json:"productName"`
	Category    string `json:"category,omitempty"`
}

// ImageLookupResponse carries the resolved image URL, empty when nothing
// suitable was found.
type ImageLookupResponse struct {
	ImageURL string `json:"imageUrl"`
}
