package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
)

// SyncStateStore persists the pull cursor in the sync_state key-value table.
type SyncStateStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncStateStore constructs a [SyncStateStore] over an open client DB.
func NewSyncStateStore(db *DB, log *logger.Logger) *SyncStateStore {
	return &SyncStateStore{db: db, logger: log}
}

// LastPulledAt implements [CursorStore].
func (s *SyncStateStore) LastPulledAt(ctx context.Context) (int64, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, selectSyncStateQuery, lastPulledAtKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "LastPulledAt").Msg("error reading cursor")
		return 0, false, errors.Join(ErrExecutingQuery, err)
	}

	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// corrupt cursor: treat as never pulled so the next cycle rebuilds
		// local state from scratch
		s.logger.Err(err).Str("func", "LastPulledAt").Str("value", value).Msg("corrupt cursor value")
		return 0, false, nil
	}

	return ms, true, nil
}

// SetLastPulledAt implements [CursorStore].
func (s *SyncStateStore) SetLastPulledAt(ctx context.Context, ms int64) error {
	s.db.writeMu.Lock()
	defer s.db.writeMu.Unlock()

	if _, err := s.db.ExecContext(ctx, upsertSyncStateQuery, lastPulledAtKey, strconv.FormatInt(ms, 10)); err != nil {
		s.logger.Err(err).Str("func", "SetLastPulledAt").Msg("error writing cursor")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}
