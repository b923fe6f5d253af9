package store

import (
	"context"

	"github.com/akhmetshin/warranty-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// WarrantyRepository is the low-level local record store. Every mutation
// stamps the record with a strictly increasing updated_at so last-write-wins
// comparisons against server state stay well ordered even within a single
// millisecond.
type WarrantyRepository interface {
	Create(ctx context.Context, draft models.WarrantyDraft) (models.WarrantyRecord, error)
	Update(ctx context.Context, localID string, mutate func(*models.WarrantyRecord) error) (models.WarrantyRecord, error)
	FindByLocalID(ctx context.Context, localID string) (models.WarrantyRecord, error)
	FindByServerID(ctx context.Context, serverID string) (models.WarrantyRecord, error)
	QueryByStatus(ctx context.Context, query models.StatusQuery) ([]models.WarrantyRecord, error)
	Destroy(ctx context.Context, localID string) error
	ResetAll(ctx context.Context) error

	// ApplyBatch runs fn inside a single write transaction. If fn returns an
	// error, every change made through the batch is rolled back.
	ApplyBatch(ctx context.Context, fn func(batch RecordBatch) error) error

	// Subscribe registers an observer for the given status query. The channel
	// receives a fresh snapshot after every committed mutation; the returned
	// function cancels the subscription and closes the channel.
	Subscribe(query models.StatusQuery) (<-chan []models.WarrantyRecord, func())
}

// RecordBatch is the view of the record store available inside an
// [WarrantyRepository.ApplyBatch] transaction.
type RecordBatch interface {
	FindByServerID(serverID string) (models.WarrantyRecord, bool, error)
	Save(record models.WarrantyRecord) error

	// ResetAll empties the store within the transaction, establishing a clean
	// baseline before a full pull.
	ResetAll() error

	SetLastPulledAt(ms int64) error
}

// CursorStore persists the pull cursor between sync cycles.
type CursorStore interface {
	// LastPulledAt returns the stored cursor in epoch milliseconds. The
	// second return value is false when no pull has completed yet.
	LastPulledAt(ctx context.Context) (int64, bool, error)
	SetLastPulledAt(ctx context.Context, ms int64) error
}
