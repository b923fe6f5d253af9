package store

import (
	"context"
	"time"

	"github.com/akhmetshin/warranty-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// UserRepository handles account creation and lookup on the server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ServerWarrantyRepository is the server-side warranty store. Records are
// scoped per user; ChangesSince drives the incremental pull endpoint.
type ServerWarrantyRepository interface {
	Insert(ctx context.Context, userID int64, id string, payload models.WarrantyPayload) (models.ServerWarranty, error)
	Replace(ctx context.Context, userID int64, id string, payload models.WarrantyPayload) (models.ServerWarranty, error)
	Delete(ctx context.Context, userID int64, id string) error
	ChangesSince(ctx context.Context, userID int64, since time.Time) ([]models.ServerWarranty, error)
}
