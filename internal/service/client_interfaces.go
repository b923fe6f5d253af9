package service

import (
	"context"
	"time"

	"github.com/akhmetshin/warranty-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService handles account registration, login and logout against
// the remote server.
type ClientAuthService interface {
	// Register creates a new account and leaves the adapter holding a fresh
	// bearer token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates an existing account. Local records are wiped on the
	// first pull after login, not here: a failed login must not destroy data.
	Login(ctx context.Context, user models.User) error

	// Logout drops the bearer token and wipes the local store.
	Logout(ctx context.Context) error

	// Authenticated reports whether a bearer token is currently held.
	Authenticated() bool
}

// ClientWarrantyService is the local-first warranty catalogue. Every mutation
// lands in the local store immediately and is marked for replication; nothing
// here talks to the network.
type ClientWarrantyService interface {
	Create(ctx context.Context, draft models.WarrantyDraft) (models.WarrantyRecord, error)
	Edit(ctx context.Context, localID string, draft models.WarrantyDraft) (models.WarrantyRecord, error)
	Delete(ctx context.Context, localID string) error
	Get(ctx context.Context, localID string) (models.WarrantyRecord, error)

	// List returns the visible records (deleted ones excluded) shaped by the
	// given options.
	List(ctx context.Context, opts models.ListOptions) ([]models.WarrantyRecord, error)

	// ListGrouped returns the visible records bucketed by category, buckets
	// ordered alphabetically with the fallback bucket last.
	ListGrouped(ctx context.Context, opts models.ListOptions) ([]models.WarrantyGroup, error)

	// Watch streams list snapshots after every committed store mutation.
	Watch(ctx context.Context) (<-chan []models.WarrantyRecord, func())
}

// ClientSyncService runs bidirectional replication cycles against the server.
type ClientSyncService interface {
	// Sync runs one full push-then-pull cycle. At most one cycle runs at a
	// time; a concurrent call returns ErrSyncInFlight without side effects.
	Sync(ctx context.Context) error

	// LastSyncedAt returns the pull cursor, zero when no pull has completed.
	LastSyncedAt(ctx context.Context) (time.Time, bool, error)
}

// ClientSyncJob runs Sync on a ticker in the background.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// AssistantService fronts the server-side helpers: the product chat, receipt
// OCR and stock image lookup.
type AssistantService interface {
	Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatResponse, error)

	// ScanReceipt extracts a prefilled draft from a receipt photo. Fields the
	// scanner could not read stay zero-valued.
	ScanReceipt(ctx context.Context, imageBase64 string) (models.WarrantyDraft, error)

	FindProductImage(ctx context.Context, productName, category string) (string, error)
}

// NotificationService plans expiry reminders from the local catalogue.
type NotificationService interface {
	// PlanReminders returns one reminder per visible record whose expiry
	// falls within horizon of now, ordered by expiry.
	PlanReminders(ctx context.Context, now time.Time, horizon time.Duration) ([]models.Reminder, error)
}
