package handler

import (
	"strconv"

	"merchant-settlement/internal/adapter/http/dto"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/pkg/apperror"
	"merchant-settlement/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

// TransactionHandler handles transaction endpoints.
type TransactionHandler struct {
	txSvc ports.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txSvc ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

// Submit handles POST /api/v1/transactions.
func (h *TransactionHandler) Submit(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		response.Error(c, apperror.Validation("merchant_id must be a UUID"))
		return
	}
	scheme, err := domain.ParseCardScheme(req.CardScheme)
	if err != nil {
		response.Error(c, apperror.ErrInvalidCardScheme(req.CardScheme))
		return
	}

	txn := domain.NewTransaction(merchantID, req.Amount, req.Currency, scheme)
	created, err := h.txSvc.Submit(c.Request.Context(), txn)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromTransaction(created))
}

// Get handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	txn, err := h.txSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromTransaction(txn))
}

// List handles GET /api/v1/transactions?status=&page=&size=.
func (h *TransactionHandler) List(c *gin.Context) {
	status, err := domain.ParseTransactionStatus(c.Query("status"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidStatus(c.Query("status")))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	tp, err := h.txSvc.FindByStatus(c.Request.Context(), status, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(tp.Items))
	for i := range tp.Items {
		items = append(items, dto.FromTransaction(&tp.Items[i]))
	}
	totalPages := int((tp.Total + int64(size) - 1) / int64(size))

	response.OK(c, dto.TransactionListResponse{
		Items:      items,
		Total:      tp.Total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	})
}

// UpdateStatus handles PUT /api/v1/transactions/:id/status.
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	status, err := domain.ParseTransactionStatus(req.Status)
	if err != nil {
		response.Error(c, apperror.ErrInvalidStatus(req.Status))
		return
	}

	if err := h.txSvc.UpdateStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}

	txn, err := h.txSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromTransaction(txn))
}

// BulkStatus handles POST /api/v1/transactions/bulk-status.
func (h *TransactionHandler) BulkStatus(c *gin.Context) {
	var req dto.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	status, err := domain.ParseTransactionStatus(req.Status)
	if err != nil {
		response.Error(c, apperror.ErrInvalidStatus(req.Status))
		return
	}
	ids, err := parseIDs(req.IDs)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	updated, err := h.txSvc.BulkSetStatus(c.Request.Context(), ids, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BulkUpdateResponse{Requested: len(ids), Updated: updated})
}

// BulkPending handles POST /api/v1/transactions/bulk-pending.
func (h *TransactionHandler) BulkPending(c *gin.Context) {
	var req dto.BulkPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	ids, err := parseIDs(req.IDs)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	moved, err := h.txSvc.BulkSetPending(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BulkUpdateResponse{Requested: len(ids), Updated: moved})
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
