package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreatedEvent is published once per accepted submission.
// Status travels as a string and is parsed back at the consuming boundary.
type TransactionCreatedEvent struct {
	ID         uuid.UUID       `json:"id"`
	MerchantID uuid.UUID       `json:"merchant_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CardScheme string          `json:"card_scheme"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewTransactionCreatedEvent snapshots a transaction for publication.
func NewTransactionCreatedEvent(t *Transaction) TransactionCreatedEvent {
	return TransactionCreatedEvent{
		ID:         t.ID,
		MerchantID: t.MerchantID,
		Amount:     t.Amount,
		Currency:   t.Currency,
		CardScheme: string(t.CardScheme),
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt,
	}
}

// ValidationResultEvent carries the validator's verdict for one transaction.
type ValidationResultEvent struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"` // VALIDATED or FAILED
}

// PayoutReadyEvent is the full payout snapshot emitted for READY_TO_PAY payouts.
type PayoutReadyEvent struct {
	ID             uuid.UUID       `json:"id"`
	MerchantID     uuid.UUID       `json:"merchant_id"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	DebtAmount     decimal.Decimal `json:"debt_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
}

// NewPayoutReadyEvent snapshots a payout for publication.
func NewPayoutReadyEvent(p *Payout) PayoutReadyEvent {
	return PayoutReadyEvent{
		ID:             p.ID,
		MerchantID:     p.MerchantID,
		GrossAmount:    p.GrossAmount,
		CommissionRate: p.CommissionRate,
		DebtAmount:     p.DebtAmount,
		NetAmount:      p.NetAmount,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		ProcessedAt:    p.ProcessedAt,
	}
}
