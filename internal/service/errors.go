package service

import "errors"

var (
	// ErrSyncInFlight is returned by Sync when a cycle is already running.
	// The trigger is a no-op; the running cycle covers the caller's changes.
	ErrSyncInFlight = errors.New("sync already in flight")

	// ErrNotAuthenticated is returned when an operation requires a logged-in
	// session and no bearer token is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrRecordDeleted is returned when an edit targets a record already
	// marked for deletion.
	ErrRecordDeleted = errors.New("record is deleted")
)

// Validation errors for user-supplied warranty fields.
var (
	ErrEmptyProductName      = errors.New("product name is required")
	ErrEmptyPurchaseDate     = errors.New("purchase date is required")
	ErrInvalidWarrantyLength = errors.New("warranty length must be positive")
	ErrTooManyReceipts       = errors.New("too many receipts attached")
	ErrEmptyLogin            = errors.New("login is required")
	ErrEmptyPassword         = errors.New("password is required")
)
