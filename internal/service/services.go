package service

import (
	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
)

// Services groups the server-side services.
type Services struct {
	AuthService     AuthService
	WarrantyService WarrantyService
}

// NewServices wires the server service layer over the storages.
func NewServices(storages *store.Storages, cfg config.ServerApp, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		WarrantyService: NewWarrantyService(storages.WarrantyRepository, logger),
	}
}
