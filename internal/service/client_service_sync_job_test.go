package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSyncService records Sync calls without touching any store.
type countingSyncService struct {
	calls atomic.Int64
	err   error
}

func (s *countingSyncService) Sync(ctx context.Context) error {
	s.calls.Add(1)
	return s.err
}

func (s *countingSyncService) LastSyncedAt(ctx context.Context) (time.Time, bool, error) {
	return time.Time{}, false, nil
}

func TestSyncJob_TicksUntilStopped(t *testing.T) {
	svc := &countingSyncService{}
	job := NewClientSyncJob(svc)

	job.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return svc.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	job.Stop()
	settled := svc.calls.Load()

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, svc.calls.Load(), "no cycles after Stop")
}

func TestSyncJob_KeepsTickingPastFailures(t *testing.T) {
	svc := &countingSyncService{err: ErrNotAuthenticated}
	job := NewClientSyncJob(svc)
	defer job.Stop()

	job.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return svc.calls.Load() >= 3
	}, time.Second, time.Millisecond)
}

func TestSyncJob_ContextCancelStops(t *testing.T) {
	svc := &countingSyncService{}
	job := NewClientSyncJob(svc)
	defer job.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return svc.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(10 * time.Millisecond)
	settled := svc.calls.Load()

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, svc.calls.Load())
}

func TestSyncJob_RestartReplacesJob(t *testing.T) {
	svc := &countingSyncService{}
	job := NewClientSyncJob(svc)
	defer job.Stop()

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return svc.calls.Load() >= 1
	}, time.Second, time.Millisecond)
}

func TestSyncJob_StopIdleIsNoop(t *testing.T) {
	job := NewClientSyncJob(&countingSyncService{})
	job.Stop()
}
