package worker

import (
	"context"
	"testing"
	"time"

	"merchant-settlement/internal/core/ports"
	"merchant-settlement/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestSweeper_RunsSweepWhenLockAcquired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settlement := mocks.NewMockSettlementService(ctrl)
	lock := mocks.NewMockSweepLock(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lock.EXPECT().Acquire(gomock.Any(), time.Minute).Return(true, nil)
	settlement.EXPECT().RunSweep(gomock.Any()).
		DoAndReturn(func(context.Context) (*ports.SweepSummary, error) {
			close(done)
			return &ports.SweepSummary{}, nil
		})
	lock.EXPECT().Release(gomock.Any()).Return(nil)
	// Later ticks may fire before cancellation lands.
	lock.EXPECT().Acquire(gomock.Any(), time.Minute).Return(false, nil).AnyTimes()

	w := NewSweeper(settlement, lock, 5*time.Millisecond, time.Minute, zerolog.Nop())
	go w.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep never ran")
	}
	cancel()
}

func TestSweeper_SkipsWhenLockHeldElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settlement := mocks.NewMockSettlementService(ctrl)
	lock := mocks.NewMockSweepLock(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// No RunSweep expectation: losing the lock must skip the whole tick.
	lock.EXPECT().Acquire(gomock.Any(), time.Minute).
		DoAndReturn(func(context.Context, time.Duration) (bool, error) {
			close(done)
			return false, nil
		})
	lock.EXPECT().Acquire(gomock.Any(), time.Minute).Return(false, nil).AnyTimes()

	w := NewSweeper(settlement, lock, 5*time.Millisecond, time.Minute, zerolog.Nop())
	go w.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tick never fired")
	}
	cancel()
}
