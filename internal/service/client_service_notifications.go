package service

import (
	"context"
	"sort"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/models"
)

type notificationService struct {
	repo   store.WarrantyRepository
	offset time.Duration
	logger *logger.Logger
}

// NewNotificationService constructs the reminder planner. offsetDays is how
// far ahead of expiry a reminder fires.
func NewNotificationService(repo store.WarrantyRepository, offsetDays int, logger *logger.Logger) NotificationService {
	if offsetDays <= 0 {
		offsetDays = 7
	}

	return &notificationService{
		repo:   repo,
		offset: time.Duration(offsetDays) * 24 * time.Hour,
		logger: logger,
	}
}

// PlanReminders implements [NotificationService]. Records already expired at
// now are skipped: there is nothing left to warn about.
func (s *notificationService) PlanReminders(ctx context.Context, now time.Time, horizon time.Duration) ([]models.Reminder, error) {
	visible, err := s.repo.QueryByStatus(ctx, models.StatusNot(models.StatusDeleted))
	if err != nil {
		return nil, err
	}

	var reminders []models.Reminder
	for _, record := range visible {
		expiry := record.ExpiryDate()
		if expiry.Before(now) {
			continue
		}
		if horizon > 0 && expiry.After(now.Add(horizon)) {
			continue
		}

		fireAt := expiry.Add(-s.offset)
		if fireAt.Before(now) {
			fireAt = now
		}

		reminders = append(reminders, models.Reminder{
			LocalID:     record.LocalID,
			ProductName: record.ProductName,
			ExpiryDate:  expiry,
			FireAt:      fireAt,
		})
	}

	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].ExpiryDate.Before(reminders[j].ExpiryDate)
	})

	return reminders, nil
}
