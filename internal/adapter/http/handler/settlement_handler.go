package handler

import (
	"net/http"
	"time"

	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SettlementHandler handles aggregation and payout query endpoints.
type SettlementHandler struct {
	settlementSvc ports.SettlementService
	lock          ports.SweepLock
	lockTTL       time.Duration
	log           zerolog.Logger
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementSvc ports.SettlementService, lock ports.SweepLock, lockTTL time.Duration, log zerolog.Logger) *SettlementHandler {
	return &SettlementHandler{
		settlementSvc: settlementSvc,
		lock:          lock,
		lockTTL:       lockTTL,
		log:           log,
	}
}

// RunSweep handles POST /api/v1/settlements/run. The manual trigger competes
// for the same lock as the scheduled sweeper, so a sweep can never run twice
// over the same table.
func (h *SettlementHandler) RunSweep(c *gin.Context) {
	ctx := c.Request.Context()

	acquired, err := h.lock.Acquire(ctx, h.lockTTL)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if !acquired {
		response.Error(c, apperror.ErrSweepAlreadyRunning())
		return
	}
	defer func() {
		if err := h.lock.Release(ctx); err != nil {
			h.log.Error().Err(err).Msg("sweep lock release failed")
		}
	}()

	summary, err := h.settlementSvc.RunSweep(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, summary)
}

// GetPayout handles GET /api/v1/payouts/:id.
func (h *SettlementHandler) GetPayout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	p, err := h.settlementSvc.GetPayout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPayout(p))
}

// ListPayouts handles GET /api/v1/payouts?status=&merchant_id=.
func (h *SettlementHandler) ListPayouts(c *gin.Context) {
	var status *domain.PayoutStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := domain.ParsePayoutStatus(raw)
		if err != nil {
			response.Error(c, apperror.ErrInvalidStatus(raw))
			return
		}
		status = &parsed
	}

	var merchantID *uuid.UUID
	if raw := c.Query("merchant_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("merchant_id must be a UUID"))
			return
		}
		merchantID = &parsed
	}

	payouts, err := h.settlementSvc.ListPayouts(c.Request.Context(), status, merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PayoutResponse, 0, len(payouts))
	for i := range payouts {
		items = append(items, dto.FromPayout(&payouts[i]))
	}
	response.OK(c, items)
}

// PayoutTransactions handles GET /api/v1/payouts/:id/transactions.
func (h *SettlementHandler) PayoutTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	txns, err := h.settlementSvc.TransactionsForPayout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, dto.FromTransaction(&txns[i]))
	}
	response.OK(c, items)
}

// HealthCheck verifies every registered dependency and reports per-dependency
// status. Any failure degrades the overall verdict to 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
