package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Merchant is an immutable snapshot fetched from the merchant registry.
// This service never owns merchant records; commission and debt are read at
// aggregation time and embedded in the payout.
type Merchant struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Email                string          `json:"email"`
	IBAN                 string          `json:"iban"`
	Debt                 decimal.Decimal `json:"debt"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
}
