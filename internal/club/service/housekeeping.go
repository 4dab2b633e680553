package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/chapterhouse/pageturn/internal/club/store"
)

// HousekeepingService periodically prunes the invites table: pending
// invites whose token has expired, and processed invites past the audit
// retention window.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Retention is how long accepted/declined invites are kept.
	Retention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour; a non-positive retention to 90 days.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"retention", s.Retention,
	)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the actual deletion of stale records.
// Each deletion is independent; a failure in one won't stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := nowUTC()

	if n, err := s.Store.Invites().DeleteExpiredInvites(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired invites", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted expired pending invites", "count", n)
	}

	cutoff := now.Add(-s.Retention)
	if n, err := s.Store.Invites().DeleteProcessedInvitesBefore(ctx, cutoff); err != nil {
		s.Logger.Error("failed to delete processed invites", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted processed invites past retention", "count", n)
	}
}
