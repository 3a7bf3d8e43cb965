// Package worker hosts the background jobs of the booking engine.
package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// SlotRepository is the storage surface the reclaimer needs.
type SlotRepository interface {
	ReclaimExpiredLocks(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger is the logging surface the reclaimer needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Reclaimer periodically reverts expired slot locks to AVAILABLE. The
// schedule read path runs the same sweep lazily; the cron job bounds how
// long a stale lock can survive without any traffic.
type Reclaimer struct {
	slotRepo SlotRepository
	lockTTL  time.Duration
	interval time.Duration
	cron     *cron.Cron
	logger   Logger
}

// NewReclaimer creates the lock reclaimer job.
func NewReclaimer(slotRepo SlotRepository, lockTTL, interval time.Duration, logger Logger) *Reclaimer {
	return &Reclaimer{
		slotRepo: slotRepo,
		lockTTL:  lockTTL,
		interval: interval,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start registers and launches the sweep schedule.
func (r *Reclaimer) Start() error {
	_, err := r.cron.AddFunc("@every "+r.interval.String(), r.sweep)
	if err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("Lock reclaimer started: interval=%s, ttl=%s", r.interval, r.lockTTL)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (r *Reclaimer) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("Lock reclaimer stopped")
}

func (r *Reclaimer) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-r.lockTTL)
	reclaimed, err := r.slotRepo.ReclaimExpiredLocks(ctx, cutoff)
	if err != nil {
		r.logger.Error("Lock reclaimer sweep failed: %v", err)
		return
	}

	if reclaimed > 0 {
		r.logger.Info("Lock reclaimer reverted %d expired locks", reclaimed)
	}
}
