package ports

import (
	"context"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionPage is one page of a paginated transaction scan.
type TransactionPage struct {
	Items []domain.Transaction
	Total int64
	Page  int
	Size  int
}

// HasNext reports whether another page exists after this one.
func (p TransactionPage) HasNext() bool {
	return int64(p.Page+1)*int64(p.Size) < p.Total
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error
	// SetPending transitions VALIDATED -> PENDING. It is a no-op for any other
	// current status; the return value reports whether the row moved.
	SetPending(ctx context.Context, id uuid.UUID) (bool, error)
	// FindByStatus pages through transactions in a status, total-count aware.
	FindByStatus(ctx context.Context, status domain.TransactionStatus, page, size int) (*TransactionPage, error)
}

// PayoutRepository defines persistence operations for payouts.
// Methods accepting pgx.Tx run inside the aggregation transaction so the
// payout and its links commit atomically.
type PayoutRepository interface {
	Create(ctx context.Context, tx pgx.Tx, p *domain.Payout) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error)
	FindByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error)
	FindByMerchant(ctx context.Context, merchantID uuid.UUID, status *domain.PayoutStatus) ([]domain.Payout, error)
	// MarkProcessing is the pickup guard: a single compare-and-swap that moves
	// READY_TO_PAY -> PROCESSING. False means another pickup already won (or
	// the payout is not ready) and the caller must back off.
	MarkProcessing(ctx context.Context, id uuid.UUID, processedAt time.Time) (bool, error)
	SetFinalStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, processedAt time.Time) error
}

// PayoutTransactionRepository defines persistence for the idempotency ledger.
type PayoutTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, link *domain.PayoutTransaction) error
	// Exists reports whether a transaction id is already bound to any payout.
	Exists(ctx context.Context, transactionID uuid.UUID) (bool, error)
	FindByPayoutID(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutTransaction, error)
}

// AttemptHistoryRepository defines persistence for the append-only attempt log.
type AttemptHistoryRepository interface {
	Create(ctx context.Context, attempt *domain.PayoutAttemptHistory) error
	FindByPayoutID(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutAttemptHistory, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
