package service

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionServiceImpl implements ports.TransactionService. It owns the
// transaction store and is the only component that mutates transaction status.
type TransactionServiceImpl struct {
	repo      ports.TransactionRepository
	publisher ports.EventPublisher
	log       zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(repo ports.TransactionRepository, publisher ports.EventPublisher, log zerolog.Logger) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Submit persists a RECEIVED transaction and publishes the created event.
func (s *TransactionServiceImpl) Submit(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if !t.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if t.Amount.Exponent() < -2 {
		return nil, apperror.ErrInvalidAmount()
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create transaction: %w", err))
	}

	if err := s.publisher.PublishTransactionCreated(ctx, domain.NewTransactionCreatedEvent(t)); err != nil {
		// The row exists but the pipeline never heard about it; surface the
		// error so the submitter can retry.
		return nil, apperror.InternalError(fmt.Errorf("publish transaction created: %w", err))
	}

	s.log.Info().
		Str("transaction_id", t.ID.String()).
		Str("merchant_id", t.MerchantID.String()).
		Str("amount", t.Amount.String()).
		Msg("transaction submitted")
	return t, nil
}

// GetByID fetches one transaction.
func (s *TransactionServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if t == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	return t, nil
}

// FindByStatus pages through transactions in a status.
func (s *TransactionServiceImpl) FindByStatus(ctx context.Context, status domain.TransactionStatus, page, size int) (*ports.TransactionPage, error) {
	tp, err := s.repo.FindByStatus(ctx, status, page, size)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return tp, nil
}

// UpdateStatus overwrites a transaction's status.
func (s *TransactionServiceImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if t == nil {
		return apperror.ErrTransactionNotFound()
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// ApplyValidationResult applies a validator verdict. The status travels as a
// string and is parsed here; only VALIDATED and FAILED are legal verdicts. An
// unknown transaction id is a logged no-op since the message may predate a
// purge or belong to another environment.
func (s *TransactionServiceImpl) ApplyValidationResult(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := domain.ParseTransactionStatus(status)
	if err != nil {
		return apperror.ErrInvalidStatus(status)
	}
	if !parsed.IsValidationResult() {
		return apperror.ErrInvalidStatus(status)
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if t == nil {
		s.log.Warn().Str("transaction_id", id.String()).Msg("validation result for unknown transaction, ignored")
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, id, parsed); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("transaction_id", id.String()).
		Str("from", string(t.Status)).
		Str("to", string(parsed)).
		Msg("validation result applied")
	return nil
}

// SetPending moves one VALIDATED transaction to PENDING. Transactions in any
// other status are left untouched.
func (s *TransactionServiceImpl) SetPending(ctx context.Context, id uuid.UUID) error {
	moved, err := s.repo.SetPending(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !moved {
		s.log.Debug().Str("transaction_id", id.String()).Msg("set pending skipped, transaction not VALIDATED")
	}
	return nil
}

// BulkSetPending applies SetPending to each id, continuing past failures.
// Returns the number of transactions that actually moved.
func (s *TransactionServiceImpl) BulkSetPending(ctx context.Context, ids []uuid.UUID) (int, error) {
	moved := 0
	for _, id := range ids {
		ok, err := s.repo.SetPending(ctx, id)
		if err != nil {
			s.log.Error().Err(err).Str("transaction_id", id.String()).Msg("bulk set pending failed for transaction")
			continue
		}
		if ok {
			moved++
		}
	}
	return moved, nil
}

// BulkSetStatus overwrites the status of each id, continuing past failures.
// Returns the number of transactions updated.
func (s *TransactionServiceImpl) BulkSetStatus(ctx context.Context, ids []uuid.UUID, status domain.TransactionStatus) (int, error) {
	updated := 0
	for _, id := range ids {
		if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
			s.log.Error().Err(err).
				Str("transaction_id", id.String()).
				Str("status", string(status)).
				Msg("bulk status update failed for transaction")
			continue
		}
		updated++
	}
	return updated, nil
}
