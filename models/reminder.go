package models

import "time"

// Reminder is a planned expiry notification for one warranty.
type Reminder struct {
	LocalID     string
	ProductName string
	ExpiryDate  time.Time

	// FireAt is when the reminder should be shown: the expiry date minus the
	// configured offset.
	FireAt time.Time
}
