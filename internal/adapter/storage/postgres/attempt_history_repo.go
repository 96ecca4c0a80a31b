package postgres

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
)

// AttemptHistoryRepo implements ports.AttemptHistoryRepository. Rows are
// append-only; there is no update path.
type AttemptHistoryRepo struct {
	pool Pool
}

// NewAttemptHistoryRepo creates a new AttemptHistoryRepo.
func NewAttemptHistoryRepo(pool Pool) *AttemptHistoryRepo {
	return &AttemptHistoryRepo{pool: pool}
}

// Create appends one attempt row.
func (r *AttemptHistoryRepo) Create(ctx context.Context, attempt *domain.PayoutAttemptHistory) error {
	query := `INSERT INTO payout_attempt_history (id, payout_id, attempted_at, status, reason)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		attempt.ID, attempt.PayoutID, attempt.AttemptedAt, attempt.Status, attempt.Reason,
	)
	if err != nil {
		return fmt.Errorf("insert payout attempt: %w", err)
	}
	return nil
}

// FindByPayoutID fetches a payout's attempts, oldest first.
func (r *AttemptHistoryRepo) FindByPayoutID(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutAttemptHistory, error) {
	query := `SELECT id, payout_id, attempted_at, status, reason
		FROM payout_attempt_history WHERE payout_id = $1 ORDER BY attempted_at ASC`

	rows, err := r.pool.Query(ctx, query, payoutID)
	if err != nil {
		return nil, fmt.Errorf("find payout attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.PayoutAttemptHistory
	for rows.Next() {
		var a domain.PayoutAttemptHistory
		if err := rows.Scan(&a.ID, &a.PayoutID, &a.AttemptedAt, &a.Status, &a.Reason); err != nil {
			return nil, fmt.Errorf("scan payout attempt row: %w", err)
		}
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout attempt rows: %w", err)
	}
	return attempts, nil
}
