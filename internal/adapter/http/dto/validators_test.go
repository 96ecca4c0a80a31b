package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, v any) error {
	t.Helper()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return engine.Struct(v)
}

func TestCreateTransactionRequest_Valid(t *testing.T) {
	req := CreateTransactionRequest{
		MerchantID: "0b4ecb34-0a4b-47c9-b1f7-4a4f8fbc1db1",
		Amount:     decimal.RequireFromString("100.50"),
		Currency:   "TRY",
		CardScheme: "VISA",
	}
	assert.NoError(t, validate(t, req))
}

func TestCreateTransactionRequest_UnknownCardScheme(t *testing.T) {
	req := CreateTransactionRequest{
		MerchantID: "0b4ecb34-0a4b-47c9-b1f7-4a4f8fbc1db1",
		Amount:     decimal.RequireFromString("100.50"),
		Currency:   "TRY",
		CardScheme: "AMEX",
	}
	assert.Error(t, validate(t, req))
}

func TestCreateTransactionRequest_LowercaseCurrency(t *testing.T) {
	req := CreateTransactionRequest{
		MerchantID: "0b4ecb34-0a4b-47c9-b1f7-4a4f8fbc1db1",
		Amount:     decimal.RequireFromString("100.50"),
		Currency:   "try",
		CardScheme: "TROY",
	}
	assert.Error(t, validate(t, req))
}

func TestUpdateStatusRequest_RejectsUnknownStatus(t *testing.T) {
	assert.Error(t, validate(t, UpdateStatusRequest{Status: "APPROVED"}))
	assert.NoError(t, validate(t, UpdateStatusRequest{Status: "VALIDATED"}))
}

func TestBulkStatusRequest_RejectsMalformedIDs(t *testing.T) {
	req := BulkStatusRequest{
		IDs:    []string{"not-a-uuid"},
		Status: "PAID",
	}
	assert.Error(t, validate(t, req))
}

func TestBulkPendingRequest_RequiresIDs(t *testing.T) {
	assert.Error(t, validate(t, BulkPendingRequest{}))
}
