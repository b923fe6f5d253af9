package workers

import (
	"context"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/service"
)

// syncWorker adapts the service-level sync job to the Worker contract.
type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func newSyncWorker(job service.ClientSyncJob, interval time.Duration) *syncWorker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
