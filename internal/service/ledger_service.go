package service

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.SettlementService. It sweeps VALIDATED
// transactions into per-merchant payouts exactly once per transaction, with
// the payout_transactions ledger as the idempotency record.
type LedgerServiceImpl struct {
	transactions ports.TransactionService
	payouts      ports.PayoutRepository
	links        ports.PayoutTransactionRepository
	merchants    ports.MerchantClient
	publisher    ports.EventPublisher
	transactor   ports.DBTransactor
	pageSize     int
	log          zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. pageSize bounds how many
// transactions one sweep page reads.
func NewLedgerService(
	transactions ports.TransactionService,
	payouts ports.PayoutRepository,
	links ports.PayoutTransactionRepository,
	merchants ports.MerchantClient,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	pageSize int,
	log zerolog.Logger,
) *LedgerServiceImpl {
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &LedgerServiceImpl{
		transactions: transactions,
		payouts:      payouts,
		links:        links,
		merchants:    merchants,
		publisher:    publisher,
		transactor:   transactor,
		pageSize:     pageSize,
		log:          log,
	}
}

// RunSweep walks every page of VALIDATED transactions, settling each
// merchant's group independently. A failed group is logged and left VALIDATED
// for the next run; a failed page read aborts the sweep. Callers are expected
// to hold the sweep lock: the walk itself does not guard against concurrent
// runs.
func (s *LedgerServiceImpl) RunSweep(ctx context.Context) (*ports.SweepSummary, error) {
	summary := &ports.SweepSummary{}

	for page := 0; ; page++ {
		tp, err := s.transactions.FindByStatus(ctx, domain.TransactionStatusValidated, page, s.pageSize)
		if err != nil {
			return summary, fmt.Errorf("sweep page %d: %w", page, err)
		}
		summary.PagesVisited++
		if len(tp.Items) == 0 {
			break
		}
		summary.Seen += len(tp.Items)

		fresh, err := s.filterSettled(ctx, tp.Items, summary)
		if err != nil {
			return summary, fmt.Errorf("sweep page %d: %w", page, err)
		}

		groups := make(map[uuid.UUID][]domain.Transaction)
		for _, t := range fresh {
			groups[t.MerchantID] = append(groups[t.MerchantID], t)
		}

		for merchantID, txns := range groups {
			if err := s.settleGroup(ctx, merchantID, txns); err != nil {
				summary.GroupsFailed++
				s.log.Error().Err(err).
					Str("merchant_id", merchantID.String()).
					Int("transactions", len(txns)).
					Msg("merchant group settlement failed, transactions left for next sweep")
				continue
			}
			summary.PayoutsCreated++
			summary.Settled += len(txns)
		}

		if !tp.HasNext() {
			break
		}
	}

	s.log.Info().
		Int("pages", summary.PagesVisited).
		Int("seen", summary.Seen).
		Int("skipped", summary.Skipped).
		Int("settled", summary.Settled).
		Int("payouts", summary.PayoutsCreated).
		Int("groups_failed", summary.GroupsFailed).
		Msg("settlement sweep finished")
	return summary, nil
}

// filterSettled drops transactions already linked to a payout. The ledger
// check, not the status column, is what makes the sweep exactly-once.
func (s *LedgerServiceImpl) filterSettled(ctx context.Context, items []domain.Transaction, summary *ports.SweepSummary) ([]domain.Transaction, error) {
	fresh := make([]domain.Transaction, 0, len(items))
	for _, t := range items {
		exists, err := s.links.Exists(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("check settlement ledger for %s: %w", t.ID, err)
		}
		if exists {
			summary.Skipped++
			continue
		}
		fresh = append(fresh, t)
	}
	return fresh, nil
}

// settleGroup turns one merchant's transactions into a payout. The payout row
// and its ledger links commit atomically; only then are the source
// transactions moved to PENDING and the ready event published. A crash after
// the commit leaves transactions VALIDATED but linked, which the ledger
// filter skips on the next run.
func (s *LedgerServiceImpl) settleGroup(ctx context.Context, merchantID uuid.UUID, txns []domain.Transaction) error {
	merchant, err := s.merchants.GetByID(ctx, merchantID)
	if err != nil {
		return apperror.ErrMerchantLookupFailed(err)
	}
	if merchant == nil {
		return apperror.ErrMerchantLookupFailed(fmt.Errorf("merchant %s not found", merchantID))
	}

	gross := decimal.Zero
	for _, t := range txns {
		gross = gross.Add(t.Amount)
	}
	payout := domain.NewPayout(merchantID, gross, merchant.CommissionPercentage, merchant.Debt)

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin settlement tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.payouts.Create(ctx, tx, payout); err != nil {
		return fmt.Errorf("create payout: %w", err)
	}
	for _, t := range txns {
		link := &domain.PayoutTransaction{
			ID:            uuid.New(),
			PayoutID:      payout.ID,
			TransactionID: t.ID,
		}
		if err := s.links.Create(ctx, tx, link); err != nil {
			return fmt.Errorf("link transaction %s: %w", t.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit settlement tx: %w", err)
	}

	for _, t := range txns {
		if err := s.transactions.SetPending(ctx, t.ID); err != nil {
			s.log.Error().Err(err).
				Str("transaction_id", t.ID.String()).
				Msg("failed to move settled transaction to PENDING")
		}
	}

	if payout.IsReadyToPay() {
		if err := s.publisher.PublishPayoutReady(ctx, domain.NewPayoutReadyEvent(payout)); err != nil {
			// The payout is durable and READY_TO_PAY; the manual process-ready
			// endpoint can still pick it up.
			s.log.Error().Err(err).
				Str("payout_id", payout.ID.String()).
				Msg("failed to publish payout ready event")
		}
	}

	s.log.Info().
		Str("payout_id", payout.ID.String()).
		Str("merchant_id", merchantID.String()).
		Str("gross", payout.GrossAmount.String()).
		Str("net", payout.NetAmount.String()).
		Str("status", string(payout.Status)).
		Int("transactions", len(txns)).
		Msg("merchant group settled")
	return nil
}

// GetPayout fetches one payout.
func (s *LedgerServiceImpl) GetPayout(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	p, err := s.payouts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if p == nil {
		return nil, apperror.ErrPayoutNotFound()
	}
	return p, nil
}

// ListPayouts returns payouts filtered by status, merchant, or both. At least
// one filter must be given.
func (s *LedgerServiceImpl) ListPayouts(ctx context.Context, status *domain.PayoutStatus, merchantID *uuid.UUID) ([]domain.Payout, error) {
	var (
		payouts []domain.Payout
		err     error
	)
	switch {
	case merchantID != nil:
		payouts, err = s.payouts.FindByMerchant(ctx, *merchantID, status)
	case status != nil:
		payouts, err = s.payouts.FindByStatus(ctx, *status)
	default:
		return nil, apperror.Validation("status or merchant_id filter is required")
	}
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return payouts, nil
}

// TransactionsForPayout resolves the ledger links of a payout back to the
// settled transactions.
func (s *LedgerServiceImpl) TransactionsForPayout(ctx context.Context, payoutID uuid.UUID) ([]domain.Transaction, error) {
	p, err := s.payouts.GetByID(ctx, payoutID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if p == nil {
		return nil, apperror.ErrPayoutNotFound()
	}

	links, err := s.links.FindByPayoutID(ctx, payoutID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	txns := make([]domain.Transaction, 0, len(links))
	for _, link := range links {
		t, err := s.transactions.GetByID(ctx, link.TransactionID)
		if err != nil {
			s.log.Warn().Err(err).
				Str("transaction_id", link.TransactionID.String()).
				Str("payout_id", payoutID.String()).
				Msg("linked transaction could not be resolved")
			continue
		}
		txns = append(txns, *t)
	}
	return txns, nil
}
