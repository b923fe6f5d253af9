package workers

import (
	"context"
	"sync"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/service"
	"github.com/akhmetshin/warranty-keeper/models"
)

// reminderHorizon bounds how far ahead the plan looks. Expiries beyond it
// are picked up by a later refresh.
const reminderHorizon = 90 * 24 * time.Hour

// reminderWorker periodically recomputes the expiry reminder plan and logs
// the reminders that are due. The terminal client has no OS notification
// channel, so the log is the delivery mechanism.
type reminderWorker struct {
	planner   service.NotificationService
	catalogue service.ClientWarrantyService
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newReminderWorker(planner service.NotificationService, interval time.Duration, logger *logger.Logger) *reminderWorker {
	if interval <= 0 {
		interval = time.Hour
	}

	return &reminderWorker{
		planner:  planner,
		interval: interval,
		logger:   logger,
	}
}

// watchCatalogue makes the worker replan after every committed store change
// in addition to the periodic refresh.
func (w *reminderWorker) watchCatalogue(catalogue service.ClientWarrantyService) *reminderWorker {
	w.catalogue = catalogue
	return w
}

func (w *reminderWorker) Run() {
	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()

		var changes <-chan []models.WarrantyRecord
		if w.catalogue != nil {
			var unsubscribe func()
			changes, unsubscribe = w.catalogue.Watch(ctx)
			defer unsubscribe()
		}

		w.refresh(ctx)

		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.refresh(ctx)
			case _, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
				w.refresh(ctx)
			}
		}
	}()
}

func (w *reminderWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *reminderWorker) refresh(ctx context.Context) {
	now := time.Now().UTC()

	reminders, err := w.planner.PlanReminders(ctx, now, reminderHorizon)
	if err != nil {
		w.logger.Err(err).Str("func", "refresh").Msg("error planning reminders")
		return
	}

	for _, reminder := range reminders {
		if reminder.FireAt.After(now) {
			continue
		}
		w.logger.Info().
			Str("local_id", reminder.LocalID).
			Str("product", reminder.ProductName).
			Time("expires", reminder.ExpiryDate).
			Msg("warranty expires soon")
	}
}
