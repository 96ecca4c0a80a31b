package postgres

import (
	"context"
	"errors"
	"fmt"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a new transaction.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, merchant_id, amount, currency, card_scheme, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.MerchantID, t.Amount, t.Currency, t.CardScheme, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by UUID. Returns nil, nil when absent.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT id, merchant_id, amount, currency, card_scheme, status, created_at
		FROM transactions WHERE id = $1`

	return r.scanTransaction(r.pool.QueryRow(ctx, query, id))
}

// UpdateStatus overwrites a transaction's status.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	query := `UPDATE transactions SET status = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// SetPending moves a transaction from VALIDATED to PENDING. Any other current
// status leaves the row untouched and returns false; a FAILED or PAID
// transaction is never resurrected.
func (r *TransactionRepo) SetPending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE transactions SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := r.pool.Exec(ctx, query, domain.TransactionStatusPending, id, domain.TransactionStatusValidated)
	if err != nil {
		return false, fmt.Errorf("set transaction pending: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindByStatus returns one page of transactions in a status, oldest first,
// along with the total count so callers can tell whether more pages exist.
func (r *TransactionRepo) FindByStatus(ctx context.Context, status domain.TransactionStatus, page, size int) (*ports.TransactionPage, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE status = $1`, status).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count transactions by status: %w", err)
	}

	query := `SELECT id, merchant_id, amount, currency, card_scheme, status, created_at
		FROM transactions WHERE status = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, status, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("find transactions by status: %w", err)
	}
	defer rows.Close()

	var items []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.MerchantID, &t.Amount, &t.Currency, &t.CardScheme, &t.Status, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return &ports.TransactionPage{Items: items, Total: total, Page: page, Size: size}, nil
}

// scanTransaction is a helper to scan a single row into a Transaction.
func (r *TransactionRepo) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(&t.ID, &t.MerchantID, &t.Amount, &t.Currency, &t.CardScheme, &t.Status, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}
