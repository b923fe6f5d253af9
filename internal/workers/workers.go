package workers

import (
	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client's background workers: the periodic sync
// job and, when reminders are enabled, the reminder planner.
func NewWorkers(services *service.ClientServices, appCfg config.ClientApp, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	ws := &Workers{
		workers: []Worker{
			newSyncWorker(services.SyncJob, cfg.SyncInterval),
		},
	}

	if appCfg.RemindersEnabled {
		ws.workers = append(ws.workers,
			newReminderWorker(services.NotificationService, cfg.ReminderRefreshInterval, logger).
				watchCatalogue(services.WarrantyService))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down the workers that support it, in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if stopper, ok := w.workers[i].(Stopper); ok {
			stopper.Stop()
		}
	}
}
