package store

import (
	"context"
	"fmt"

	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository     UserRepository
	WarrantyRepository ServerWarrantyRepository
}

// NewStorages connects to PostgreSQL, applies migrations and wires the
// repositories.
func NewStorages(cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		WarrantyRepository: NewServerWarrantyRepository(db, logger),
	}, nil
}
