package service

import (
	"context"
	"fmt"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/models"
)

// pull fetches every server change since the stored cursor and applies the
// whole batch in one transaction together with the new cursor. The cursor is
// the server's clock, captured before the results are applied, so changes
// landing on the server mid-pull are picked up next cycle instead of being
// skipped.
func (s *clientSyncService) pull(ctx context.Context) error {
	lastPulledAt, hasCursor, err := s.cursor.LastPulledAt(ctx)
	if err != nil {
		return fmt.Errorf("load cursor: %w", err)
	}

	changes, serverTime, err := s.adapter.ListChanges(ctx, lastPulledAt)
	if err != nil {
		return fmt.Errorf("list changes: %w", err)
	}

	firstPull := !hasCursor

	err = s.repo.ApplyBatch(ctx, func(batch store.RecordBatch) error {
		if firstPull {
			// full-baseline pull: the server becomes the sole source of
			// truth, no merge ambiguity. The push has already run in this
			// cycle, so local creates are on the server and come back in
			// the change set rather than vanishing.
			if err := batch.ResetAll(); err != nil {
				return err
			}
		}

		for _, change := range changes {
			if err := applyServerChange(batch, change, serverTime); err != nil {
				return err
			}
		}

		return batch.SetLastPulledAt(serverTime.UnixMilli())
	})
	if err != nil {
		return fmt.Errorf("apply pulled changes: %w", err)
	}

	s.logger.Debug().
		Str("func", "pull").
		Int("changes", len(changes)).
		Bool("first_pull", firstPull).
		Msg("pull applied")

	return nil
}

// applyServerChange upserts one server record. The server wins: whatever the
// local row held, it now mirrors the server copy and reads synced. A tombstone
// overwritten here had its deletion completed server-side, so the local
// delete intent is gone with it.
func applyServerChange(batch store.RecordBatch, change models.ServerWarranty, serverTime time.Time) error {
	record, found, err := batch.FindByServerID(change.ServerID)
	if err != nil {
		return err
	}

	if !found {
		// a record another device created: the server identifier doubles as
		// the local one, which keeps re-pulls idempotent
		record = models.WarrantyRecord{
			LocalID:   change.ServerID,
			ServerID:  change.ServerID,
			Status:    models.StatusCreated,
			CreatedAt: serverTime,
		}
	}

	record.ApplyPayload(change.WarrantyPayload)
	record.UpdatedAt = serverTime

	next, err := models.NextStatus(record.Status, models.OpPullApply)
	if err != nil {
		return err
	}
	record.Status = next

	return batch.Save(record)
}
