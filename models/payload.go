package models

import "time"

// WarrantyPayload is the wire shape exchanged with the server for a single
// warranty. It carries only the editable product fields: local identifiers,
// sync status, and store timestamps never cross the wire.
type WarrantyPayload struct {
	ProductName          string    `json:"productName"`
	PurchaseDate         time.Time `json:"purchaseDate"`
	WarrantyLengthMonths int       `json:"warrantyLengthMonths"`
	Category             string    `json:"category,omitempty"`
	Description          string    `json:"description,omitempty"`
	ProductImageURL      string    `json:"productImageUrl,omitempty"`
	Receipts             []Receipt `json:"receipts"`
}

// ServerWarranty is a warranty as the server reports it: the payload fields
// plus the server-issued identifier.
type ServerWarranty struct {
	ServerID string `json:"_id"`
	WarrantyPayload
}

// NewWarrantyPayload encodes a local record into its wire representation.
// The stored receipts blob is expanded into the structured list; a malformed
// blob encodes as an empty list.
func NewWarrantyPayload(rec WarrantyRecord) WarrantyPayload {
	return WarrantyPayload{
		ProductName:          rec.ProductName,
		PurchaseDate:         rec.PurchaseDate,
		WarrantyLengthMonths: rec.WarrantyLengthMonths,
		Category:             rec.Category,
		Description:          rec.Description,
		ProductImageURL:      rec.ProductImageURL,
		Receipts:             rec.Receipts(),
	}
}

// ApplyPayload overwrites the record's editable fields from p. LocalID,
// ServerID, Status and the store timestamps are left untouched; callers that
// need a status transition run it through NextStatus separately.
func (w *WarrantyRecord) ApplyPayload(p WarrantyPayload) {
	w.ProductName = p.ProductName
	w.PurchaseDate = p.PurchaseDate
	w.WarrantyLengthMonths = p.WarrantyLengthMonths
	w.Category = p.Category
	w.Description = p.Description
	w.ProductImageURL = p.ProductImageURL
	w.ReceiptsBlob = EncodeReceipts(p.Receipts)
}
