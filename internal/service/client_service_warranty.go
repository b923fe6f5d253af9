package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/models"
)

type clientWarrantyService struct {
	repo   store.WarrantyRepository
	logger *logger.Logger
}

// NewClientWarrantyService constructs the local-first warranty catalogue over
// the record store.
func NewClientWarrantyService(repo store.WarrantyRepository, logger *logger.Logger) ClientWarrantyService {
	return &clientWarrantyService{repo: repo, logger: logger}
}

// Create implements [ClientWarrantyService]. The record lands in the local
// store with status "created"; the next sync cycle pushes it.
func (s *clientWarrantyService) Create(ctx context.Context, draft models.WarrantyDraft) (models.WarrantyRecord, error) {
	if err := validateDraft(draft); err != nil {
		return models.WarrantyRecord{}, err
	}

	record, err := s.repo.Create(ctx, draft)
	if err != nil {
		return models.WarrantyRecord{}, err
	}

	s.logger.Debug().Str("func", "Create").Str("local_id", record.LocalID).Msg("warranty created")
	return record, nil
}

// Edit implements [ClientWarrantyService]. Editing a record the server has
// never seen keeps it in "created": it must still be pushed as a create.
// Editing a tombstone is rejected.
func (s *clientWarrantyService) Edit(ctx context.Context, localID string, draft models.WarrantyDraft) (models.WarrantyRecord, error) {
	if err := validateDraft(draft); err != nil {
		return models.WarrantyRecord{}, err
	}

	return s.repo.Update(ctx, localID, func(rec *models.WarrantyRecord) error {
		if rec.Status == models.StatusDeleted {
			return ErrRecordDeleted
		}

		next, err := models.NextStatus(rec.Status, models.OpLocalEdit)
		if err != nil {
			return err
		}

		rec.ProductName = draft.ProductName
		rec.PurchaseDate = draft.PurchaseDate
		rec.WarrantyLengthMonths = draft.WarrantyLengthMonths
		rec.Category = draft.Category
		rec.Description = draft.Description
		rec.ProductImageURL = draft.ProductImageURL
		rec.ReceiptsBlob = models.EncodeReceipts(draft.Receipts)
		rec.Status = next

		return nil
	})
}

// Delete implements [ClientWarrantyService]. A record the server has never
// seen is destroyed outright; everything else becomes a tombstone that the
// next sync cycle propagates.
func (s *clientWarrantyService) Delete(ctx context.Context, localID string) error {
	record, err := s.repo.FindByLocalID(ctx, localID)
	if err != nil {
		return err
	}

	if record.Status == models.StatusCreated {
		return s.repo.Destroy(ctx, localID)
	}

	_, err = s.repo.Update(ctx, localID, func(rec *models.WarrantyRecord) error {
		next, err := models.NextStatus(rec.Status, models.OpLocalDelete)
		if err != nil {
			return err
		}
		rec.Status = next
		return nil
	})

	return err
}

// Get implements [ClientWarrantyService].
func (s *clientWarrantyService) Get(ctx context.Context, localID string) (models.WarrantyRecord, error) {
	return s.repo.FindByLocalID(ctx, localID)
}

// List implements [ClientWarrantyService].
func (s *clientWarrantyService) List(ctx context.Context, opts models.ListOptions) ([]models.WarrantyRecord, error) {
	visible, err := s.repo.QueryByStatus(ctx, models.StatusNot(models.StatusDeleted))
	if err != nil {
		return nil, err
	}

	return shapeList(visible, opts, time.Now()), nil
}

// ListGrouped implements [ClientWarrantyService].
func (s *clientWarrantyService) ListGrouped(ctx context.Context, opts models.ListOptions) ([]models.WarrantyGroup, error) {
	records, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]models.WarrantyRecord)
	for _, record := range records {
		category := record.Category
		if category == "" {
			category = models.UncategorizedGroup
		}
		buckets[category] = append(buckets[category], record)
	}

	groups := make([]models.WarrantyGroup, 0, len(buckets))
	for category, bucket := range buckets {
		groups = append(groups, models.WarrantyGroup{Category: category, Records: bucket})
	}

	sort.Slice(groups, func(i, j int) bool {
		// fallback bucket sorts last
		if groups[i].Category == models.UncategorizedGroup {
			return false
		}
		if groups[j].Category == models.UncategorizedGroup {
			return true
		}
		return groups[i].Category < groups[j].Category
	})

	return groups, nil
}

// Watch implements [ClientWarrantyService]. Deleted records never appear in
// the snapshots.
func (s *clientWarrantyService) Watch(ctx context.Context) (<-chan []models.WarrantyRecord, func()) {
	return s.repo.Subscribe(models.StatusNot(models.StatusDeleted))
}

func validateDraft(draft models.WarrantyDraft) error {
	if strings.TrimSpace(draft.ProductName) == "" {
		return ErrEmptyProductName
	}
	if draft.PurchaseDate.IsZero() {
		return ErrEmptyPurchaseDate
	}
	if draft.WarrantyLengthMonths <= 0 {
		return ErrInvalidWarrantyLength
	}
	if len(draft.Receipts) > models.MaxReceipts {
		return ErrTooManyReceipts
	}

	return nil
}

// shapeList applies search, expiry filtering and ordering. The input order
// (creation time) is the fallback when no sort mode is set.
func shapeList(records []models.WarrantyRecord, opts models.ListOptions, now time.Time) []models.WarrantyRecord {
	shaped := make([]models.WarrantyRecord, 0, len(records))

	needle := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, record := range records {
		if needle != "" && !matchesSearch(record, needle) {
			continue
		}

		switch opts.Filter {
		case models.FilterActive:
			if record.Expired(now) {
				continue
			}
		case models.FilterExpired:
			if !record.Expired(now) {
				continue
			}
		}

		shaped = append(shaped, record)
	}

	switch opts.Sort {
	case models.SortByName:
		sort.SliceStable(shaped, func(i, j int) bool {
			return strings.ToLower(shaped[i].ProductName) < strings.ToLower(shaped[j].ProductName)
		})
	case models.SortByPurchaseDate:
		sort.SliceStable(shaped, func(i, j int) bool {
			return shaped[i].PurchaseDate.Before(shaped[j].PurchaseDate)
		})
	case models.SortByExpiryDate:
		sort.SliceStable(shaped, func(i, j int) bool {
			return shaped[i].ExpiryDate().Before(shaped[j].ExpiryDate())
		})
	}

	if opts.Desc && opts.Sort != "" {
		for i, j := 0, len(shaped)-1; i < j; i, j = i+1, j-1 {
			shaped[i], shaped[j] = shaped[j], shaped[i]
		}
	}

	return shaped
}

func matchesSearch(record models.WarrantyRecord, needle string) bool {
	return strings.Contains(strings.ToLower(record.ProductName), needle) ||
		strings.Contains(strings.ToLower(record.Category), needle) ||
		strings.Contains(strings.ToLower(record.Description), needle)
}
