package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/models"
)

// push drains the dirty records one by one. A failure on one record is
// collected and the loop continues: a single bad record must not hold the
// rest of the catalogue hostage.
func (s *clientSyncService) push(ctx context.Context) error {
	dirty, err := s.repo.QueryByStatus(ctx, models.StatusNot(models.StatusSynced))
	if err != nil {
		return fmt.Errorf("load dirty records: %w", err)
	}

	var errs []error
	for _, record := range dirty {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := s.pushRecord(ctx, record); err != nil {
			s.logger.Warn().
				Err(err).
				Str("func", "push").
				Str("local_id", record.LocalID).
				Str("status", string(record.Status)).
				Msg("push failed, record stays dirty")
			errs = append(errs, fmt.Errorf("push %s: %w", record.LocalID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *clientSyncService) pushRecord(ctx context.Context, record models.WarrantyRecord) error {
	switch record.Status {
	case models.StatusCreated:
		return s.pushCreate(ctx, record)
	case models.StatusUpdated:
		return s.pushUpdate(ctx, record)
	case models.StatusDeleted:
		return s.pushDelete(ctx, record)
	default:
		return fmt.Errorf("unexpected dirty status %q", record.Status)
	}
}

// pushCreate uploads a record the server has never seen and links the
// returned server identifier. The status moves to synced only if the user has
// not edited the record while the request was on the wire.
func (s *clientSyncService) pushCreate(ctx context.Context, record models.WarrantyRecord) error {
	saved, err := s.adapter.CreateWarranty(ctx, models.NewWarrantyPayload(record))
	if err != nil {
		return err
	}

	_, err = s.repo.Update(ctx, record.LocalID, func(rec *models.WarrantyRecord) error {
		rec.ServerID = saved.ServerID

		if rec.UpdatedAt.After(record.UpdatedAt) {
			// edited mid-flight: keep it dirty, but as an update now that a
			// server identifier exists
			if rec.Status == models.StatusCreated {
				rec.Status = models.StatusUpdated
			}
			return nil
		}

		next, err := models.NextStatus(rec.Status, models.OpPushAck)
		if err != nil {
			return err
		}
		rec.Status = next
		return nil
	})

	return err
}

func (s *clientSyncService) pushUpdate(ctx context.Context, record models.WarrantyRecord) error {
	if _, err := s.adapter.UpdateWarranty(ctx, record.ServerID, models.NewWarrantyPayload(record)); err != nil {
		return err
	}

	_, err := s.repo.Update(ctx, record.LocalID, func(rec *models.WarrantyRecord) error {
		if rec.UpdatedAt.After(record.UpdatedAt) {
			// edited mid-flight, the new edit still needs a push
			return nil
		}

		next, err := models.NextStatus(rec.Status, models.OpPushAck)
		if err != nil {
			return err
		}
		rec.Status = next
		return nil
	})

	return err
}

// pushDelete confirms the tombstone on the server, then drops the local row.
// The adapter treats an already-gone server record as success, so delete
// retries are idempotent.
func (s *clientSyncService) pushDelete(ctx context.Context, record models.WarrantyRecord) error {
	if record.ServerID != "" {
		if err := s.adapter.DeleteWarranty(ctx, record.ServerID); err != nil {
			return err
		}
	}

	err := s.repo.Destroy(ctx, record.LocalID)
	if errors.Is(err, store.ErrWarrantyNotFound) {
		return nil
	}
	return err
}
