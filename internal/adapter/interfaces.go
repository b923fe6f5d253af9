// Package adapter provides the transport layer the client uses to talk to the
// warranty server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// and the UI from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"time"

	"github.com/akhmetshin/warranty-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the warranty
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account on the server. On success the bearer token
	// from the response is stored via SetToken.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server. On success the bearer token
	// from the response is stored via SetToken.
	Login(ctx context.Context, user models.User) error

	// CreateWarranty pushes a freshly created record. The returned value
	// carries the server-assigned identifier.
	CreateWarranty(ctx context.Context, payload models.WarrantyPayload) (models.ServerWarranty, error)

	// UpdateWarranty replaces the server copy of the record.
	UpdateWarranty(ctx context.Context, serverID string, payload models.WarrantyPayload) (models.ServerWarranty, error)

	// DeleteWarranty removes the server copy of the record. Deleting a record
	// the server no longer has is not an error.
	DeleteWarranty(ctx context.Context, serverID string) error

	// ListChanges returns every warranty changed since the given cursor
	// (epoch milliseconds; zero means everything) together with the server's
	// notion of the current time, taken from the response Date header.
	ListChanges(ctx context.Context, lastPulledAt int64) ([]models.ServerWarranty, time.Time, error)

	// Chat forwards a product-question conversation to the assistant
	// endpoint.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// ProcessReceipt submits a receipt photo for field extraction.
	ProcessReceipt(ctx context.Context, imageBase64 string) (models.ReceiptScan, error)

	// FindProductImage asks the server to locate a stock photo for the
	// product.
	FindProductImage(ctx context.Context, req models.ImageLookupRequest) (models.ImageLookupResponse, error)
}
