package models

// SortMode selects the ordering of a warranty listing.
type SortMode string

const (
	SortByName         SortMode = "name"
	SortByPurchaseDate SortMode = "purchase_date"
	SortByExpiryDate   SortMode = "expiry_date"
)

// ExpiryFilter narrows a listing to active or expired warranties.
type ExpiryFilter string

const (
	FilterAll     ExpiryFilter = "all"
	FilterActive  ExpiryFilter = "active"
	FilterExpired ExpiryFilter = "expired"
)

// ListOptions describes how the warranty list should be shaped for display:
// free-text search, expiry filtering, ordering and optional grouping.
type ListOptions struct {
	Search string
	Filter ExpiryFilter
	Sort   SortMode

	// Desc reverses the chosen sort order. Ignored when Sort is unset.
	Desc bool
}

// WarrantyGroup is one category bucket of a grouped listing. Records without
// a category land in the "Other" bucket.
type WarrantyGroup struct {
	Category string
	Records  []WarrantyRecord
}

// UncategorizedGroup is the bucket name used for records without a category.
const UncategorizedGroup = "Other"
