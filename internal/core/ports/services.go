package ports

import (
	"context"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Outbound collaborators ---

// MerchantClient is the synchronous lookup surface of the merchant registry.
type MerchantClient interface {
	// GetByID returns nil, nil when the merchant does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	UpdateDebt(ctx context.Context, id uuid.UUID, debt decimal.Decimal) error
}

// PaymentResult is the gateway's verdict on one payment attempt.
type PaymentResult struct {
	Succeeded bool
	Reason    string
}

// PaymentGateway executes a payment attempt with a bounded wait.
// An error means the attempt could not be carried out; it is treated as a
// failed outcome for the current unit of work and never retried in-attempt.
type PaymentGateway interface {
	Pay(ctx context.Context, p *domain.Payout) (*PaymentResult, error)
}

// EventPublisher publishes the pipeline's messages.
type EventPublisher interface {
	PublishTransactionCreated(ctx context.Context, ev domain.TransactionCreatedEvent) error
	PublishValidationResult(ctx context.Context, ev domain.ValidationResultEvent) error
	PublishPayoutReady(ctx context.Context, ev domain.PayoutReadyEvent) error
}

// SweepLock serialises aggregation sweeps (single-runner invariant).
type SweepLock interface {
	// Acquire returns false when another sweep holds the lock.
	Acquire(ctx context.Context, ttl time.Duration) (bool, error)
	Release(ctx context.Context) error
}

// --- Service ports (business logic) ---

// TransactionService owns transaction records and their status transitions.
type TransactionService interface {
	Submit(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	FindByStatus(ctx context.Context, status domain.TransactionStatus, page, size int) (*TransactionPage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
	// ApplyValidationResult applies a validator verdict; unknown transaction
	// ids are logged no-ops, unknown status values are rejected.
	ApplyValidationResult(ctx context.Context, id uuid.UUID, status string) error
	SetPending(ctx context.Context, id uuid.UUID) error
	// BulkSetStatus continues past per-id failures and returns the number of
	// transactions actually updated.
	BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.TransactionStatus) (int, error)
	BulkSetPending(ctx context.Context, ids []uuid.UUID) (int, error)
}

// ValidationService consumes transaction-created events.
type ValidationService interface {
	HandleTransactionCreated(ctx context.Context, ev domain.TransactionCreatedEvent) error
}

// SweepSummary reports what one aggregation run did.
type SweepSummary struct {
	PagesVisited   int `json:"pages_visited"`
	Seen           int `json:"transactions_seen"`
	Skipped        int `json:"transactions_skipped"`
	Settled        int `json:"transactions_settled"`
	PayoutsCreated int `json:"payouts_created"`
	GroupsFailed   int `json:"merchant_groups_failed"`
}

// SettlementService converts validated transactions into payouts.
type SettlementService interface {
	RunSweep(ctx context.Context) (*SweepSummary, error)
	GetPayout(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	ListPayouts(ctx context.Context, status *domain.PayoutStatus, merchantID *uuid.UUID) ([]domain.Payout, error)
	TransactionsForPayout(ctx context.Context, payoutID uuid.UUID) ([]domain.Transaction, error)
}

// PayoutProcessingService drives the payout state machine.
type PayoutProcessingService interface {
	// ProcessPayout performs one pickup: CAS to PROCESSING, one gateway
	// attempt, attempt history, final status.
	ProcessPayout(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	// ProcessReadyPayouts is the manual trigger: fetch all READY_TO_PAY and
	// run each through the same state machine, isolating per-payout failures.
	ProcessReadyPayouts(ctx context.Context) ([]domain.Payout, error)
	GetAttempts(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutAttemptHistory, error)
}
