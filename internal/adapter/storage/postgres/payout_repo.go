package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct {
	pool Pool
}

// NewPayoutRepo creates a new PayoutRepo.
func NewPayoutRepo(pool Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

const payoutColumns = `id, merchant_id, gross_amount, commission_rate, debt_amount, net_amount, status, created_at, processed_at`

// Create inserts a payout within the aggregation transaction.
func (r *PayoutRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payout) error {
	query := `INSERT INTO payouts (` + payoutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.MerchantID, p.GrossAmount, p.CommissionRate, p.DebtAmount,
		p.NetAmount, p.Status, p.CreatedAt, p.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout: %w", err)
	}
	return nil
}

// GetByID fetches a payout by UUID. Returns nil, nil when absent.
func (r *PayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`
	return r.scanPayout(r.pool.QueryRow(ctx, query, id))
}

// FindByStatus fetches all payouts in a status, oldest first.
func (r *PayoutRepo) FindByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE status = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("find payouts by status: %w", err)
	}
	defer rows.Close()
	return r.collectPayouts(rows)
}

// FindByMerchant fetches a merchant's payouts, optionally filtered by status.
func (r *PayoutRepo) FindByMerchant(ctx context.Context, merchantID uuid.UUID, status *domain.PayoutStatus) ([]domain.Payout, error) {
	query := `SELECT ` + payoutColumns + ` FROM payouts WHERE merchant_id = $1 ORDER BY created_at ASC`
	args := []any{merchantID}

	if status != nil {
		query = `SELECT ` + payoutColumns + ` FROM payouts WHERE merchant_id = $1 AND status = $2 ORDER BY created_at ASC`
		args = append(args, *status)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find payouts by merchant: %w", err)
	}
	defer rows.Close()
	return r.collectPayouts(rows)
}

// MarkProcessing is the pickup compare-and-swap: only a payout still in
// READY_TO_PAY moves to PROCESSING. False means the pickup lost.
func (r *PayoutRepo) MarkProcessing(ctx context.Context, id uuid.UUID, processedAt time.Time) (bool, error) {
	query := `UPDATE payouts SET status = $1, processed_at = $2 WHERE id = $3 AND status = $4`

	tag, err := r.pool.Exec(ctx, query, domain.PayoutStatusProcessing, processedAt, id, domain.PayoutStatusReadyToPay)
	if err != nil {
		return false, fmt.Errorf("mark payout processing: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetFinalStatus records the outcome of a payment attempt.
func (r *PayoutRepo) SetFinalStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, processedAt time.Time) error {
	query := `UPDATE payouts SET status = $1, processed_at = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, status, processedAt, id)
	if err != nil {
		return fmt.Errorf("set payout status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout not found: %s", id)
	}
	return nil
}

func (r *PayoutRepo) collectPayouts(rows pgx.Rows) ([]domain.Payout, error) {
	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.MerchantID, &p.GrossAmount, &p.CommissionRate, &p.DebtAmount,
			&p.NetAmount, &p.Status, &p.CreatedAt, &p.ProcessedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payout row: %w", err)
		}
		payouts = append(payouts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout rows: %w", err)
	}
	return payouts, nil
}

func (r *PayoutRepo) scanPayout(row pgx.Row) (*domain.Payout, error) {
	p := &domain.Payout{}
	err := row.Scan(&p.ID, &p.MerchantID, &p.GrossAmount, &p.CommissionRate, &p.DebtAmount,
		&p.NetAmount, &p.Status, &p.CreatedAt, &p.ProcessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payout: %w", err)
	}
	return p, nil
}
