package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankClient implements ports.PaymentGateway against the downstream payment
// provider. One call is one attempt; the provider's verdict is final for this
// pickup and never retried here.
type BankClient struct {
	baseURL string
	httpc   *http.Client
}

// NewBankClient creates a payment gateway client.
func NewBankClient(baseURL string, httpc *http.Client) *BankClient {
	return &BankClient{baseURL: baseURL, httpc: httpc}
}

type paymentRequest struct {
	PayoutID   uuid.UUID       `json:"payout_id"`
	MerchantID uuid.UUID       `json:"merchant_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type paymentResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

// Pay submits one payment attempt for a payout's net amount.
func (c *BankClient) Pay(ctx context.Context, p *domain.Payout) (*ports.PaymentResult, error) {
	body, err := json.Marshal(paymentRequest{
		PayoutID:   p.ID,
		MerchantID: p.MerchantID,
		Amount:     p.NetAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment attempt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment attempt: unexpected status %d", resp.StatusCode)
	}

	var result paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}

	return &ports.PaymentResult{Succeeded: result.Success, Reason: result.Reason}, nil
}
