package worker

import (
	"context"
	"time"

	"merchant-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// Sweeper runs the aggregation sweep on a fixed interval, guarded by the
// distributed sweep lock so only one instance settles at a time.
type Sweeper struct {
	settlement ports.SettlementService
	lock       ports.SweepLock
	interval   time.Duration
	lockTTL    time.Duration
	log        zerolog.Logger
}

// NewSweeper creates a new Sweeper.
func NewSweeper(settlement ports.SettlementService, lock ports.SweepLock, interval, lockTTL time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		settlement: settlement,
		lock:       lock,
		interval:   interval,
		lockTTL:    lockTTL,
		log:        log,
	}
}

// Run ticks until the context is cancelled. A tick that cannot take the lock
// is skipped; whoever holds it is already sweeping the same table.
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info().Dur("interval", w.interval).Msg("settlement sweeper started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("settlement sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Sweeper) sweep(ctx context.Context) {
	acquired, err := w.lock.Acquire(ctx, w.lockTTL)
	if err != nil {
		w.log.Error().Err(err).Msg("sweep lock acquire failed")
		return
	}
	if !acquired {
		w.log.Debug().Msg("sweep skipped, lock held elsewhere")
		return
	}
	defer func() {
		if err := w.lock.Release(ctx); err != nil {
			w.log.Error().Err(err).Msg("sweep lock release failed")
		}
	}()

	if _, err := w.settlement.RunSweep(ctx); err != nil {
		w.log.Error().Err(err).Msg("scheduled sweep failed")
	}
}
