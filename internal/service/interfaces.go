package service

import (
	"context"
	"time"

	"github.com/akhmetshin/warranty-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_service_mock.go -package=mock

// AuthService is the server-side account service: registration, credential
// verification and JWT lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// WarrantyService is the server-side warranty catalogue, scoped per user.
type WarrantyService interface {
	Create(ctx context.Context, userID int64, payload models.WarrantyPayload) (models.ServerWarranty, error)
	Replace(ctx context.Context, userID int64, id string, payload models.WarrantyPayload) (models.ServerWarranty, error)
	Delete(ctx context.Context, userID int64, id string) error

	// ChangesSince returns every warranty of the user changed strictly after
	// since; the zero time returns the whole catalogue.
	ChangesSince(ctx context.Context, userID int64, since time.Time) ([]models.ServerWarranty, error)
}
