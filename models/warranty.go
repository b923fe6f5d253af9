package models

import "time"

// WarrantyRecord is the central entity of the local store: a purchased
// product, its warranty window, attached receipts, and the replication
// status of the row.
type WarrantyRecord struct {
	// LocalID is the opaque device-local identifier. It is stable for the
	// life of the row and never leaves the device.
	LocalID string `json:"local_id"`

	// ServerID is the identifier assigned by the server on first successful
	// push. Empty until the create has round-tripped.
	ServerID string `json:"server_id"`

	ProductName          string    `json:"product_name"`
	PurchaseDate         time.Time `json:"purchase_date"`
	WarrantyLengthMonths int       `json:"warranty_length_months"`
	Category             string    `json:"category"`
	Description          string    `json:"description"`
	ProductImageURL      string    `json:"product_image_url"`

	// ReceiptsBlob is the serialized receipt attachment list exactly as the
	// store persists it. Use Receipts to decode it.
	ReceiptsBlob string `json:"receipts_blob"`

	Status SyncStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarrantyDraft carries the user-editable fields used when creating or
// updating a record. The store owns everything else (IDs, status, stamps).
type WarrantyDraft struct {
	ProductName          string
	PurchaseDate         time.Time
	WarrantyLengthMonths int
	Category             string
	Description          string
	ProductImageURL      string
	Receipts             []Receipt
}

// Receipts decodes the stored receipts blob. A malformed blob yields an
// empty list, never an error: one bad attachment column must not take the
// whole record down.
func (w WarrantyRecord) Receipts() []Receipt {
	return DecodeReceipts(w.ReceiptsBlob)
}

// ExpiryDate computes when the warranty runs out. It is derived state,
// never persisted.
//
// Month arithmetic follows time.AddDate normalization: adding one month to
// January 31 lands in early March rather than clamping to the end of
// February. This mirrors how the purchase dates were computed historically,
// so stored and displayed expiries stay consistent.
func (w WarrantyRecord) ExpiryDate() time.Time {
	return w.PurchaseDate.AddDate(0, w.WarrantyLengthMonths, 0)
}

// Expired reports whether the warranty had run out at instant now.
func (w WarrantyRecord) Expired(now time.Time) bool {
	return w.ExpiryDate().Before(now)
}

// MonthsLeft returns the number of whole months remaining until expiry,
// clamped at zero once the warranty has run out.
func (w WarrantyRecord) MonthsLeft(now time.Time) int {
	end := w.ExpiryDate()
	if end.Before(now) {
		return 0
	}

	months := (end.Year()-now.Year())*12 + int(end.Month()) - int(now.Month())
	if end.Day() < now.Day() {
		months--
	}
	if months < 0 {
		return 0
	}

	return months
}

// ProgressPercent returns how much of the warranty window has elapsed at
// instant now, in the range [0, 100].
func (w WarrantyRecord) ProgressPercent(now time.Time) float64 {
	start := w.PurchaseDate
	end := w.ExpiryDate()

	if !now.Before(end) {
		return 100
	}
	if !now.After(start) {
		return 0
	}

	total := end.Sub(start)
	if total == 0 {
		return 100
	}

	return float64(now.Sub(start)) / float64(total) * 100
}
