package store

import (
	"database/sql"
	"sync"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
)

// DB wraps a sql.DB handle together with the process logger. On the client the
// writeMu serialises all mutating statements: SQLite allows a single writer at
// a time and the sync job, the UI and the reminder worker may all mutate
// records concurrently.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
	writeMu         sync.Mutex
}
