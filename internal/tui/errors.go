package tui

import "errors"

var (
	errInvalidPurchaseDate   = errors.New("purchase date must look like 2024-01-31")
	errInvalidWarrantyLength = errors.New("warranty length must be a whole number of months")
)
