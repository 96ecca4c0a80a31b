package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantClient implements ports.MerchantClient against the merchant
// registry's REST surface. The injected http.Client carries the bounded
// timeout; a timeout surfaces as an error of the current unit of work.
type MerchantClient struct {
	baseURL string
	httpc   *http.Client
}

// NewMerchantClient creates a merchant registry client.
func NewMerchantClient(baseURL string, httpc *http.Client) *MerchantClient {
	return &MerchantClient{baseURL: baseURL, httpc: httpc}
}

// GetByID fetches a merchant snapshot. Returns nil, nil when the merchant
// does not exist.
func (c *MerchantClient) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	url := fmt.Sprintf("%s/api/merchants/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build merchant request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("merchant lookup: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var m domain.Merchant
		if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
			return nil, fmt.Errorf("decode merchant response: %w", err)
		}
		return &m, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("merchant lookup: unexpected status %d", resp.StatusCode)
	}
}

// UpdateDebt writes a merchant's new outstanding debt balance back to the
// registry.
func (c *MerchantClient) UpdateDebt(ctx context.Context, id uuid.UUID, debt decimal.Decimal) error {
	url := fmt.Sprintf("%s/api/merchants/%s/debt", c.baseURL, id)

	body, err := json.Marshal(map[string]decimal.Decimal{"debt": debt})
	if err != nil {
		return fmt.Errorf("marshal debt update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build debt update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("merchant debt update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("merchant debt update: unexpected status %d", resp.StatusCode)
	}
	return nil
}
