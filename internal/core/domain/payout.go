package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutStatus represents the lifecycle state of a payout.
type PayoutStatus string

const (
	PayoutStatusNew          PayoutStatus = "NEW"
	PayoutStatusReadyToPay   PayoutStatus = "READY_TO_PAY"
	PayoutStatusProcessing   PayoutStatus = "PROCESSING"
	PayoutStatusInsufficient PayoutStatus = "INSUFFICIENT"
	PayoutStatusPaid         PayoutStatus = "PAID"
	PayoutStatusFailed       PayoutStatus = "FAILED"
	PayoutStatusCancelled    PayoutStatus = "CANCELLED"
)

// ParsePayoutStatus validates a status value received at a boundary.
func ParsePayoutStatus(value string) (PayoutStatus, error) {
	switch PayoutStatus(value) {
	case PayoutStatusNew, PayoutStatusReadyToPay, PayoutStatusProcessing,
		PayoutStatusInsufficient, PayoutStatusPaid, PayoutStatusFailed, PayoutStatusCancelled:
		return PayoutStatus(value), nil
	}
	return "", fmt.Errorf("unknown payout status %q", value)
}

// Payout is one aggregation result for one merchant. The amount fields are a
// snapshot taken at aggregation time and never change afterwards; only Status
// and ProcessedAt move.
type Payout struct {
	ID             uuid.UUID       `json:"id"`
	MerchantID     uuid.UUID       `json:"merchant_id"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	DebtAmount     decimal.Decimal `json:"debt_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	Status         PayoutStatus    `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
}

// ComputeCommission applies the commission rate to a gross amount,
// rounded to two decimal places, half up.
func ComputeCommission(gross, rate decimal.Decimal) decimal.Decimal {
	return gross.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}

// NewPayout builds the payout snapshot for a merchant batch:
// net = gross - commission - debt. Net > 0 yields READY_TO_PAY,
// anything else INSUFFICIENT.
func NewPayout(merchantID uuid.UUID, gross, commissionRate, debt decimal.Decimal) *Payout {
	commission := ComputeCommission(gross, commissionRate)
	net := gross.Sub(commission).Sub(debt)

	now := time.Now().UTC()
	p := &Payout{
		ID:             uuid.New(),
		MerchantID:     merchantID,
		GrossAmount:    gross,
		CommissionRate: commissionRate,
		DebtAmount:     debt,
		NetAmount:      net,
		CreatedAt:      now,
	}

	if net.IsPositive() {
		p.Status = PayoutStatusReadyToPay
		p.ProcessedAt = &now
	} else {
		p.Status = PayoutStatusInsufficient
	}
	return p
}

// IsReadyToPay reports whether the payout is eligible for processor pickup.
func (p *Payout) IsReadyToPay() bool {
	return p.Status == PayoutStatusReadyToPay
}

// PayoutTransaction links a payout to one of its source transactions.
// A transaction id appears in at most one link, ever; this table is the
// idempotency ledger that prevents double aggregation.
type PayoutTransaction struct {
	ID            uuid.UUID `json:"id"`
	PayoutID      uuid.UUID `json:"payout_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
}

// PayoutAttemptHistory is one append-only audit row per payment attempt.
type PayoutAttemptHistory struct {
	ID          uuid.UUID    `json:"id"`
	PayoutID    uuid.UUID    `json:"payout_id"`
	AttemptedAt time.Time    `json:"attempted_at"`
	Status      PayoutStatus `json:"status"`
	Reason      string       `json:"reason"`
}

// NewAttempt records the outcome of a single payment attempt.
func NewAttempt(payoutID uuid.UUID, status PayoutStatus, reason string) *PayoutAttemptHistory {
	return &PayoutAttemptHistory{
		ID:          uuid.New(),
		PayoutID:    payoutID,
		AttemptedAt: time.Now().UTC(),
		Status:      status,
		Reason:      reason,
	}
}
