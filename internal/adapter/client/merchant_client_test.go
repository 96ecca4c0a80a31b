package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantClient_GetByID(t *testing.T) {
	merchantID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/merchants/"+merchantID.String(), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Merchant{
			ID:                   merchantID,
			Name:                 "Acme Market",
			IBAN:                 "TR330006100519786457841326",
			Debt:                 decimal.RequireFromString("12.50"),
			CommissionPercentage: decimal.RequireFromString("5"),
		})
	}))
	defer srv.Close()

	c := NewMerchantClient(srv.URL, srv.Client())

	m, err := c.GetByID(context.Background(), merchantID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, merchantID, m.ID)
	assert.True(t, m.CommissionPercentage.Equal(decimal.RequireFromString("5")))
	assert.True(t, m.Debt.Equal(decimal.RequireFromString("12.50")))
}

func TestMerchantClient_GetByID_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewMerchantClient(srv.URL, srv.Client())

	m, err := c.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestMerchantClient_GetByID_RegistryError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewMerchantClient(srv.URL, srv.Client())

	m, err := c.GetByID(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestMerchantClient_UpdateDebt(t *testing.T) {
	merchantID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/merchants/"+merchantID.String()+"/debt", r.URL.Path)

		var body map[string]decimal.Decimal
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body["debt"].Equal(decimal.Zero))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewMerchantClient(srv.URL, srv.Client())

	err := c.UpdateDebt(context.Background(), merchantID, decimal.Zero)
	assert.NoError(t, err)
}

func TestMerchantClient_UpdateDebt_RegistryError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewMerchantClient(srv.URL, srv.Client())

	err := c.UpdateDebt(context.Background(), uuid.New(), decimal.RequireFromString("10.00"))
	assert.Error(t, err)
}
