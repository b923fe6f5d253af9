package service

import (
	"github.com/akhmetshin/warranty-keeper/internal/adapter"
	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/store"
)

// ClientServices groups every client-side service behind one value.
type ClientServices struct {
	AuthService         ClientAuthService
	WarrantyService     ClientWarrantyService
	SyncService         ClientSyncService
	SyncJob             ClientSyncJob
	AssistantService    AssistantService
	NotificationService NotificationService
}

// NewClientServices wires the client service layer over the local storages
// and the server adapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages.WarrantyRepository, storages.Cursor, serverAdapter, log)

	return &ClientServices{
		AuthService:         NewClientAuthService(storages.WarrantyRepository, serverAdapter, log),
		WarrantyService:     NewClientWarrantyService(storages.WarrantyRepository, log),
		SyncService:         syncSvc,
		SyncJob:             NewClientSyncJob(syncSvc),
		AssistantService:    NewAssistantService(serverAdapter, log),
		NotificationService: NewNotificationService(storages.WarrantyRepository, cfg.ReminderOffsetDays, log),
	}
}
