package postgres

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayoutTransactionRepo implements ports.PayoutTransactionRepository.
// The unique index on transaction_id makes this table the idempotency ledger:
// a transaction can belong to at most one payout, ever.
type PayoutTransactionRepo struct {
	pool Pool
}

// NewPayoutTransactionRepo creates a new PayoutTransactionRepo.
func NewPayoutTransactionRepo(pool Pool) *PayoutTransactionRepo {
	return &PayoutTransactionRepo{pool: pool}
}

// Create inserts a payout-transaction link within the aggregation transaction.
func (r *PayoutTransactionRepo) Create(ctx context.Context, tx pgx.Tx, link *domain.PayoutTransaction) error {
	query := `INSERT INTO payout_transactions (id, payout_id, transaction_id) VALUES ($1, $2, $3)`

	_, err := tx.Exec(ctx, query, link.ID, link.PayoutID, link.TransactionID)
	if err != nil {
		return fmt.Errorf("insert payout transaction: %w", err)
	}
	return nil
}

// Exists reports whether a transaction is already bound to any payout.
func (r *PayoutTransactionRepo) Exists(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM payout_transactions WHERE transaction_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, transactionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check payout transaction exists: %w", err)
	}
	return exists, nil
}

// FindByPayoutID fetches all links of one payout.
func (r *PayoutTransactionRepo) FindByPayoutID(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutTransaction, error) {
	query := `SELECT id, payout_id, transaction_id FROM payout_transactions WHERE payout_id = $1`

	rows, err := r.pool.Query(ctx, query, payoutID)
	if err != nil {
		return nil, fmt.Errorf("find payout transactions: %w", err)
	}
	defer rows.Close()

	var links []domain.PayoutTransaction
	for rows.Next() {
		var l domain.PayoutTransaction
		if err := rows.Scan(&l.ID, &l.PayoutID, &l.TransactionID); err != nil {
			return nil, fmt.Errorf("scan payout transaction row: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout transaction rows: %w", err)
	}
	return links, nil
}
