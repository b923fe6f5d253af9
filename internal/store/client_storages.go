package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// WarrantyRepository is the SQLite-backed record store.
	WarrantyRepository WarrantyRepository

	// Cursor persists the pull cursor between sync cycles.
	Cursor CursorStore
}

// NewClientStorages initialises the client storage layer: it opens the SQLite
// file named in cfg.DB.DSN (creating it when missing), runs pending schema
// migrations and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		WarrantyRepository: NewLocalWarrantyRepository(db, logger),
		Cursor:             NewSyncStateStore(db, logger),
	}, nil
}

// NewClientStoragesFromDB wires the repositories over an already open and
// migrated connection.
func NewClientStoragesFromDB(conn *sql.DB, logger *logger.Logger) (*ClientStorages, error) {
	db := &DB{DB: conn, logger: logger}

	return &ClientStorages{
		WarrantyRepository: NewLocalWarrantyRepository(db, logger),
		Cursor:             NewSyncStateStore(db, logger),
	}, nil
}
