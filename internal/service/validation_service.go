package service

import (
	"context"
	"fmt"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"

	"github.com/rs/zerolog"
)

// ValidationServiceImpl implements ports.ValidationService. It is a stateless
// relay: it never touches the transaction store, only the merchant registry
// and the validation-result topic.
type ValidationServiceImpl struct {
	merchants ports.MerchantClient
	publisher ports.EventPublisher
	log       zerolog.Logger
}

// NewValidationService creates a new ValidationServiceImpl.
func NewValidationService(merchants ports.MerchantClient, publisher ports.EventPublisher, log zerolog.Logger) *ValidationServiceImpl {
	return &ValidationServiceImpl{
		merchants: merchants,
		publisher: publisher,
		log:       log,
	}
}

// HandleTransactionCreated validates one submitted transaction against the
// merchant registry. A lookup error is treated the same as an unknown
// merchant: the transaction fails closed rather than staying in limbo. The
// verdict message is always sent.
func (s *ValidationServiceImpl) HandleTransactionCreated(ctx context.Context, ev domain.TransactionCreatedEvent) error {
	status := domain.TransactionStatusValidated

	merchant, err := s.merchants.GetByID(ctx, ev.MerchantID)
	if err != nil {
		s.log.Error().Err(err).
			Str("transaction_id", ev.ID.String()).
			Str("merchant_id", ev.MerchantID.String()).
			Msg("merchant lookup failed, failing transaction closed")
		status = domain.TransactionStatusFailed
	} else if merchant == nil {
		s.log.Warn().
			Str("transaction_id", ev.ID.String()).
			Str("merchant_id", ev.MerchantID.String()).
			Msg("merchant not found, failing transaction")
		status = domain.TransactionStatusFailed
	}

	result := domain.ValidationResultEvent{ID: ev.ID, Status: string(status)}
	if err := s.publisher.PublishValidationResult(ctx, result); err != nil {
		return fmt.Errorf("publish validation result: %w", err)
	}

	s.log.Info().
		Str("transaction_id", ev.ID.String()).
		Str("status", string(status)).
		Msg("validation result published")
	return nil
}
