package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/adapter"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
)

type clientSyncService struct {
	repo    store.WarrantyRepository
	cursor  store.CursorStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	inFlight atomic.Bool
}

// NewClientSyncService constructs the replication engine over the record
// store and the server adapter.
func NewClientSyncService(repo store.WarrantyRepository, cursor store.CursorStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		repo:    repo,
		cursor:  cursor,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Sync implements [ClientSyncService]. One cycle pushes every dirty record,
// then pulls server changes since the stored cursor. Push failures on
// individual records do not abort the cycle; those records stay dirty and are
// retried next time. A pull failure is returned after the push has already
// landed.
func (s *clientSyncService) Sync(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSyncInFlight
	}
	defer s.inFlight.Store(false)

	if s.adapter.Token() == "" {
		return ErrNotAuthenticated
	}

	started := time.Now()
	s.logger.Debug().Str("func", "Sync").Msg("sync cycle started")

	pushErr := s.push(ctx)
	pullErr := s.pull(ctx)

	s.logger.Debug().
		Str("func", "Sync").
		Dur("took", time.Since(started)).
		Bool("push_ok", pushErr == nil).
		Bool("pull_ok", pullErr == nil).
		Msg("sync cycle finished")

	return errors.Join(pushErr, pullErr)
}

// LastSyncedAt implements [ClientSyncService].
func (s *clientSyncService) LastSyncedAt(ctx context.Context) (time.Time, bool, error) {
	ms, ok, err := s.cursor.LastPulledAt(ctx)
	if err != nil || !ok {
		return time.Time{}, ok, err
	}

	return time.UnixMilli(ms).UTC(), true, nil
}
