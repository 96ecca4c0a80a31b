package dto

import (
	"merchant-settlement/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the request body for transaction submission.
type CreateTransactionRequest struct {
	MerchantID string          `json:"merchant_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"required,len=3,uppercase"`
	CardScheme string          `json:"card_scheme" binding:"required,card_scheme"`
}

// UpdateStatusRequest is the request body for a single status overwrite.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,transaction_status"`
}

// BulkStatusRequest is the request body for a bulk status overwrite.
type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,dive,uuid"`
	Status string   `json:"status" binding:"required,transaction_status"`
}

// BulkPendingRequest is the request body for a bulk VALIDATED -> PENDING move.
type BulkPendingRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// BulkUpdateResponse reports how many of the requested ids actually changed.
type BulkUpdateResponse struct {
	Requested int `json:"requested"`
	Updated   int `json:"updated"`
}

// TransactionResponse is the response body for one transaction.
type TransactionResponse struct {
	ID         string          `json:"id"`
	MerchantID string          `json:"merchant_id"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CardScheme string          `json:"card_scheme"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
}

// TransactionListResponse wraps a paginated transaction list.
type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// PayoutResponse is the response body for one payout.
type PayoutResponse struct {
	ID             string          `json:"id"`
	MerchantID     string          `json:"merchant_id"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	DebtAmount     decimal.Decimal `json:"debt_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
	ProcessedAt    *string         `json:"processed_at,omitempty"`
}

// AttemptResponse is the response body for one payment attempt record.
type AttemptResponse struct {
	ID          string `json:"id"`
	PayoutID    string `json:"payout_id"`
	AttemptedAt string `json:"attempted_at"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// FromTransaction converts a domain transaction to its DTO.
func FromTransaction(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID.String(),
		MerchantID: t.MerchantID.String(),
		Amount:     t.Amount,
		Currency:   t.Currency,
		CardScheme: string(t.CardScheme),
		Status:     string(t.Status),
		CreatedAt:  t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromPayout converts a domain payout to its DTO.
func FromPayout(p *domain.Payout) PayoutResponse {
	resp := PayoutResponse{
		ID:             p.ID.String(),
		MerchantID:     p.MerchantID.String(),
		GrossAmount:    p.GrossAmount,
		CommissionRate: p.CommissionRate,
		DebtAmount:     p.DebtAmount,
		NetAmount:      p.NetAmount,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.ProcessedAt != nil {
		s := p.ProcessedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ProcessedAt = &s
	}
	return resp
}

// FromAttempt converts a domain attempt record to its DTO.
func FromAttempt(a *domain.PayoutAttemptHistory) AttemptResponse {
	return AttemptResponse{
		ID:          a.ID.String(),
		PayoutID:    a.PayoutID.String(),
		AttemptedAt: a.AttemptedAt.Format("2006-01-02T15:04:05Z07:00"),
		Status:      string(a.Status),
		Reason:      a.Reason,
	}
}
