package service

import (
	"context"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/internal/utils"
	"github.com/akhmetshin/warranty-keeper/models"
)

// warrantyService is the concrete implementation of [WarrantyService]. It
// assigns server identifiers and delegates persistence to the repository.
type warrantyService struct {
	repository store.ServerWarrantyRepository
	uuid       *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewWarrantyService constructs a [WarrantyService] over the given
// repository.
func NewWarrantyService(repository store.ServerWarrantyRepository, logger *logger.Logger) WarrantyService {
	return &warrantyService{
		repository: repository,
		uuid:       utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Create implements [WarrantyService].
func (s *warrantyService) Create(ctx context.Context, userID int64, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	if err := validatePayload(payload); err != nil {
		return models.ServerWarranty{}, err
	}

	return s.repository.Insert(ctx, userID, s.uuid.Generate(), payload)
}

// Replace implements [WarrantyService].
func (s *warrantyService) Replace(ctx context.Context, userID int64, id string, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	if err := validatePayload(payload); err != nil {
		return models.ServerWarranty{}, err
	}

	return s.repository.Replace(ctx, userID, id, payload)
}

// Delete implements [WarrantyService].
func (s *warrantyService) Delete(ctx context.Context, userID int64, id string) error {
	return s.repository.Delete(ctx, userID, id)
}

// ChangesSince implements [WarrantyService].
func (s *warrantyService) ChangesSince(ctx context.Context, userID int64, since time.Time) ([]models.ServerWarranty, error) {
	return s.repository.ChangesSince(ctx, userID, since)
}

func validatePayload(payload models.WarrantyPayload) error {
	if payload.ProductName == "" {
		return ErrEmptyProductName
	}
	if payload.PurchaseDate.IsZero() {
		return ErrEmptyPurchaseDate
	}
	if payload.WarrantyLengthMonths <= 0 {
		return ErrInvalidWarrantyLength
	}
	if len(payload.Receipts) > models.MaxReceipts {
		return ErrTooManyReceipts
	}

	return nil
}
