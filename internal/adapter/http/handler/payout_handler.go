package handler

import (
	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayoutHandler handles payout execution endpoints.
type PayoutHandler struct {
	payoutSvc ports.PayoutProcessingService
}

// NewPayoutHandler creates a new PayoutHandler.
func NewPayoutHandler(payoutSvc ports.PayoutProcessingService) *PayoutHandler {
	return &PayoutHandler{payoutSvc: payoutSvc}
}

// Process handles POST /api/v1/payouts/:id/process.
func (h *PayoutHandler) Process(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	p, err := h.payoutSvc.ProcessPayout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromPayout(p))
}

// ProcessReady handles POST /api/v1/payouts/process-ready.
func (h *PayoutHandler) ProcessReady(c *gin.Context) {
	processed, err := h.payoutSvc.ProcessReadyPayouts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PayoutResponse, 0, len(processed))
	for i := range processed {
		items = append(items, dto.FromPayout(&processed[i]))
	}
	response.OK(c, items)
}

// Attempts handles GET /api/v1/payouts/:id/attempts.
func (h *PayoutHandler) Attempts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	attempts, err := h.payoutSvc.GetAttempts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		items = append(items, dto.FromAttempt(&attempts[i]))
	}
	response.OK(c, items)
}
