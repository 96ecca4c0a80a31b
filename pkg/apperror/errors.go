package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Transactions (TXN) ----

func ErrTransactionNotFound() *AppError {
	return New("TXN_001", "Transaction not found", http.StatusNotFound)
}

func ErrInvalidStatus(value string) *AppError {
	return New("TXN_002", fmt.Sprintf("Unknown status value: %s", value), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("TXN_003", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidCardScheme(value string) *AppError {
	return New("TXN_004", fmt.Sprintf("Unknown card scheme: %s", value), http.StatusBadRequest)
}

// ---- Settlement / aggregation (SET) ----

func ErrSweepAlreadyRunning() *AppError {
	return New("SET_001", "An aggregation sweep is already running", http.StatusConflict)
}

func ErrMerchantLookupFailed(err error) *AppError {
	return Wrap("SET_002", "Merchant lookup failed", http.StatusBadGateway, err)
}

// ---- Payouts (POUT) ----

func ErrPayoutNotFound() *AppError {
	return New("POUT_001", "Payout not found", http.StatusNotFound)
}

func ErrPayoutNotReady() *AppError {
	return New("POUT_002", "Payout is not in READY_TO_PAY status", http.StatusConflict)
}

func ErrPaymentFailed(err error) *AppError {
	return Wrap("POUT_003", "Payment attempt failed", http.StatusBadGateway, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a TXN_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("TXN_002", message, http.StatusBadRequest)
}
