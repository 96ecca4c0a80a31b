package service

import (
	"context"
	"fmt"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PayoutServiceImpl implements ports.PayoutProcessingService. One call to
// ProcessPayout is one pickup: win the compare-and-swap, make exactly one
// gateway attempt, record it, land on a final status.
type PayoutServiceImpl struct {
	payouts      ports.PayoutRepository
	attempts     ports.AttemptHistoryRepository
	links        ports.PayoutTransactionRepository
	gateway      ports.PaymentGateway
	merchants    ports.MerchantClient
	transactions ports.TransactionService
	log          zerolog.Logger
}

// NewPayoutService creates a new PayoutServiceImpl.
func NewPayoutService(
	payouts ports.PayoutRepository,
	attempts ports.AttemptHistoryRepository,
	links ports.PayoutTransactionRepository,
	gateway ports.PaymentGateway,
	merchants ports.MerchantClient,
	transactions ports.TransactionService,
	log zerolog.Logger,
) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		payouts:      payouts,
		attempts:     attempts,
		links:        links,
		gateway:      gateway,
		merchants:    merchants,
		transactions: transactions,
		log:          log,
	}
}

// ProcessPayout runs one payout through the payment state machine. The
// conditional MarkProcessing update is the only admission gate: losing it
// means the payout was not READY_TO_PAY at pickup time, either because a
// concurrent pickup won or because it already reached a final status.
func (s *PayoutServiceImpl) ProcessPayout(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	p, err := s.payouts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if p == nil {
		return nil, apperror.ErrPayoutNotFound()
	}

	now := time.Now().UTC()
	won, err := s.payouts.MarkProcessing(ctx, id, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !won {
		return nil, apperror.ErrPayoutNotReady()
	}
	p.Status = domain.PayoutStatusProcessing
	p.ProcessedAt = &now

	result, err := s.gateway.Pay(ctx, p)
	if err != nil {
		s.finalize(ctx, p, domain.PayoutStatusFailed, fmt.Sprintf("payment attempt error: %v", err))
		return nil, apperror.ErrPaymentFailed(err)
	}

	if !result.Succeeded {
		reason := result.Reason
		if reason == "" {
			reason = "payment declined"
		}
		s.finalize(ctx, p, domain.PayoutStatusFailed, reason)
		return p, nil
	}

	s.finalize(ctx, p, domain.PayoutStatusPaid, "payment successful")
	s.settleAftermath(ctx, p)
	return p, nil
}

// finalize records the attempt and lands the payout on its final status. The
// attempt row is written first so the audit trail survives even when the
// status update fails; persistence errors here are logged, not propagated,
// because the gateway verdict already happened and must not be retried.
func (s *PayoutServiceImpl) finalize(ctx context.Context, p *domain.Payout, status domain.PayoutStatus, reason string) {
	if err := s.attempts.Create(ctx, domain.NewAttempt(p.ID, status, reason)); err != nil {
		s.log.Error().Err(err).
			Str("payout_id", p.ID.String()).
			Msg("failed to record payment attempt")
	}

	now := time.Now().UTC()
	if err := s.payouts.SetFinalStatus(ctx, p.ID, status, now); err != nil {
		s.log.Error().Err(err).
			Str("payout_id", p.ID.String()).
			Str("status", string(status)).
			Msg("failed to set final payout status, payout stuck in PROCESSING")
		return
	}
	p.Status = status
	p.ProcessedAt = &now

	s.log.Info().
		Str("payout_id", p.ID.String()).
		Str("merchant_id", p.MerchantID.String()).
		Str("net", p.NetAmount.String()).
		Str("status", string(status)).
		Str("reason", reason).
		Msg("payout attempt finished")
}

// settleAftermath performs the best-effort bookkeeping after a successful
// payment: the withheld debt is written back to the merchant registry and the
// settled transactions move to PAID. Neither step can undo the payment, so
// failures are logged and left for reconciliation.
func (s *PayoutServiceImpl) settleAftermath(ctx context.Context, p *domain.Payout) {
	if p.DebtAmount.IsPositive() {
		if err := s.writeBackDebt(ctx, p); err != nil {
			s.log.Error().Err(err).
				Str("payout_id", p.ID.String()).
				Str("merchant_id", p.MerchantID.String()).
				Msg("debt write-back failed")
		}
	}

	links, err := s.links.FindByPayoutID(ctx, p.ID)
	if err != nil {
		s.log.Error().Err(err).
			Str("payout_id", p.ID.String()).
			Msg("could not load settled transactions for PAID transition")
		return
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.TransactionID)
	}
	updated, _ := s.transactions.BulkSetStatus(ctx, ids, domain.TransactionStatusPaid)
	if updated < len(ids) {
		s.log.Warn().
			Str("payout_id", p.ID.String()).
			Int("expected", len(ids)).
			Int("updated", updated).
			Msg("not all settled transactions moved to PAID")
	}
}

// writeBackDebt reduces the merchant's registry debt by the amount this payout
// withheld, floored at zero.
func (s *PayoutServiceImpl) writeBackDebt(ctx context.Context, p *domain.Payout) error {
	merchant, err := s.merchants.GetByID(ctx, p.MerchantID)
	if err != nil {
		return fmt.Errorf("merchant lookup: %w", err)
	}
	if merchant == nil {
		return fmt.Errorf("merchant %s not found", p.MerchantID)
	}

	remaining := merchant.Debt.Sub(p.DebtAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	if err := s.merchants.UpdateDebt(ctx, p.MerchantID, remaining); err != nil {
		return fmt.Errorf("update debt: %w", err)
	}

	s.log.Info().
		Str("merchant_id", p.MerchantID.String()).
		Str("withheld", p.DebtAmount.String()).
		Str("remaining", remaining.String()).
		Msg("merchant debt written back")
	return nil
}

// ProcessReadyPayouts fetches every READY_TO_PAY payout and runs each through
// ProcessPayout. A failed payout never stops the batch; losing the pickup race
// for one of them is expected when a queue consumer is working the same set.
func (s *PayoutServiceImpl) ProcessReadyPayouts(ctx context.Context) ([]domain.Payout, error) {
	ready, err := s.payouts.FindByStatus(ctx, domain.PayoutStatusReadyToPay)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	processed := make([]domain.Payout, 0, len(ready))
	for _, candidate := range ready {
		p, err := s.ProcessPayout(ctx, candidate.ID)
		if err != nil {
			s.log.Warn().Err(err).
				Str("payout_id", candidate.ID.String()).
				Msg("payout skipped during batch processing")
			continue
		}
		processed = append(processed, *p)
	}

	s.log.Info().
		Int("ready", len(ready)).
		Int("processed", len(processed)).
		Msg("ready payout batch finished")
	return processed, nil
}

// GetAttempts returns the attempt history of one payout, oldest first.
func (s *PayoutServiceImpl) GetAttempts(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutAttemptHistory, error) {
	p, err := s.payouts.GetByID(ctx, payoutID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if p == nil {
		return nil, apperror.ErrPayoutNotFound()
	}

	attempts, err := s.attempts.FindByPayoutID(ctx, payoutID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return attempts, nil
}
