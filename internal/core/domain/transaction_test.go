package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionStatus(t *testing.T) {
	for _, value := range []string{"RECEIVED", "PENDING", "VALIDATED", "PAID", "FAILED"} {
		status, err := ParseTransactionStatus(value)
		require.NoError(t, err, value)
		assert.Equal(t, TransactionStatus(value), status)
	}

	_, err := ParseTransactionStatus("APPROVED")
	assert.Error(t, err)

	_, err = ParseTransactionStatus("validated")
	assert.Error(t, err, "lowercase values are not coerced")
}

func TestIsValidationResult(t *testing.T) {
	assert.True(t, TransactionStatusValidated.IsValidationResult())
	assert.True(t, TransactionStatusFailed.IsValidationResult())
	assert.False(t, TransactionStatusPaid.IsValidationResult())
	assert.False(t, TransactionStatusReceived.IsValidationResult())
	assert.False(t, TransactionStatusPending.IsValidationResult())
}

func TestParseCardScheme(t *testing.T) {
	scheme, err := ParseCardScheme("TROY")
	require.NoError(t, err)
	assert.Equal(t, CardSchemeTroy, scheme)

	_, err = ParseCardScheme("AMEX")
	assert.Error(t, err)
}

func TestNewTransaction(t *testing.T) {
	merchantID := uuid.New()

	txn := NewTransaction(merchantID, decimal.RequireFromString("150.00"), "TRY", CardSchemeVisa)

	assert.Equal(t, merchantID, txn.MerchantID)
	assert.Equal(t, TransactionStatusReceived, txn.Status)
	assert.Equal(t, "TRY", txn.Currency)
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())
}
