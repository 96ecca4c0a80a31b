package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusReceived  TransactionStatus = "RECEIVED"
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusValidated TransactionStatus = "VALIDATED"
	TransactionStatusPaid      TransactionStatus = "PAID"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// ParseTransactionStatus validates a status value received at a boundary.
// Unknown values are rejected, never coerced.
func ParseTransactionStatus(value string) (TransactionStatus, error) {
	switch TransactionStatus(value) {
	case TransactionStatusReceived, TransactionStatusPending, TransactionStatusValidated,
		TransactionStatusPaid, TransactionStatusFailed:
		return TransactionStatus(value), nil
	}
	return "", fmt.Errorf("unknown transaction status %q", value)
}

// IsValidationResult reports whether the status is a legal validator outcome.
func (s TransactionStatus) IsValidationResult() bool {
	return s == TransactionStatusValidated || s == TransactionStatusFailed
}

// CardScheme tags the card network a transaction was made on.
type CardScheme string

const (
	CardSchemeVisa       CardScheme = "VISA"
	CardSchemeMastercard CardScheme = "MASTERCARD"
	CardSchemeTroy       CardScheme = "TROY"
)

// ParseCardScheme validates a card scheme value received at a boundary.
func ParseCardScheme(value string) (CardScheme, error) {
	switch CardScheme(value) {
	case CardSchemeVisa, CardSchemeMastercard, CardSchemeTroy:
		return CardScheme(value), nil
	}
	return "", fmt.Errorf("unknown card scheme %q", value)
}

// Transaction represents a merchant payment awaiting settlement.
// Amounts are fixed-point with two decimal places.
type Transaction struct {
	ID         uuid.UUID         `json:"id"`
	MerchantID uuid.UUID         `json:"merchant_id"`
	Amount     decimal.Decimal   `json:"amount"`
	Currency   string            `json:"currency"`
	CardScheme CardScheme        `json:"card_scheme"`
	Status     TransactionStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewTransaction creates a transaction in the initial RECEIVED state.
func NewTransaction(merchantID uuid.UUID, amount decimal.Decimal, currency string, scheme CardScheme) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Amount:     amount,
		Currency:   currency,
		CardScheme: scheme,
		Status:     TransactionStatusReceived,
		CreatedAt:  time.Now().UTC(),
	}
}
