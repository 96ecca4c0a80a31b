package dto

import (
	"merchant-settlement/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
		_ = v.RegisterValidation("payout_status", validatePayoutStatus)
		_ = v.RegisterValidation("card_scheme", validateCardScheme)
	}
}

// validateTransactionStatus rejects status values outside the closed set.
func validateTransactionStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParseTransactionStatus(fl.Field().String())
	return err == nil
}

// validatePayoutStatus rejects payout status values outside the closed set.
func validatePayoutStatus(fl validator.FieldLevel) bool {
	_, err := domain.ParsePayoutStatus(fl.Field().String())
	return err == nil
}

// validateCardScheme rejects unknown card networks.
func validateCardScheme(fl validator.FieldLevel) bool {
	_, err := domain.ParseCardScheme(fl.Field().String())
	return err == nil
}
