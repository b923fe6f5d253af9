package models

import "time"

// User represents an account on the warranty server. Credentials exist only
// on the server side; the client holds a bearer token instead.
type User struct {
	// UserID is the internal unique identifier of the user. It is not
	// exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the plaintext password on register/login requests
	// only. The server persists a bcrypt hash, never this value.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt hash. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}
