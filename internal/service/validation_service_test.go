package service

import (
	"context"
	"errors"
	"testing"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type validationTestDeps struct {
	svc       *ValidationServiceImpl
	merchants *mocks.MockMerchantClient
	publisher *mocks.MockEventPublisher
	ctrl      *gomock.Controller
}

func setupValidationService(t *testing.T) *validationTestDeps {
	ctrl := gomock.NewController(t)
	d := &validationTestDeps{
		merchants: mocks.NewMockMerchantClient(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewValidationService(d.merchants, d.publisher, zerolog.Nop())
	return d
}

func TestValidationService_KnownMerchant_Validated(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := domain.TransactionCreatedEvent{
		ID:         uuid.New(),
		MerchantID: uuid.New(),
		Amount:     decimal.RequireFromString("100.00"),
		Currency:   "TRY",
	}

	d.merchants.EXPECT().GetByID(ctx, ev.MerchantID).Return(&domain.Merchant{ID: ev.MerchantID}, nil)
	d.publisher.EXPECT().PublishValidationResult(ctx, domain.ValidationResultEvent{
		ID:     ev.ID,
		Status: "VALIDATED",
	}).Return(nil)

	require.NoError(t, d.svc.HandleTransactionCreated(ctx, ev))
}

func TestValidationService_UnknownMerchant_Failed(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := domain.TransactionCreatedEvent{ID: uuid.New(), MerchantID: uuid.New()}

	d.merchants.EXPECT().GetByID(ctx, ev.MerchantID).Return(nil, nil)
	d.publisher.EXPECT().PublishValidationResult(ctx, domain.ValidationResultEvent{
		ID:     ev.ID,
		Status: "FAILED",
	}).Return(nil)

	require.NoError(t, d.svc.HandleTransactionCreated(ctx, ev))
}

func TestValidationService_LookupError_FailsClosed(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := domain.TransactionCreatedEvent{ID: uuid.New(), MerchantID: uuid.New()}

	// A registry outage must not leave the transaction in limbo: the verdict
	// message still goes out, and it says FAILED.
	d.merchants.EXPECT().GetByID(ctx, ev.MerchantID).Return(nil, errors.New("registry timeout"))
	d.publisher.EXPECT().PublishValidationResult(ctx, domain.ValidationResultEvent{
		ID:     ev.ID,
		Status: "FAILED",
	}).Return(nil)

	require.NoError(t, d.svc.HandleTransactionCreated(ctx, ev))
}

func TestValidationService_PublishError_Propagates(t *testing.T) {
	d := setupValidationService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ev := domain.TransactionCreatedEvent{ID: uuid.New(), MerchantID: uuid.New()}

	d.merchants.EXPECT().GetByID(ctx, ev.MerchantID).Return(&domain.Merchant{ID: ev.MerchantID}, nil)
	d.publisher.EXPECT().PublishValidationResult(ctx, gomock.Any()).Return(errors.New("broker down"))

	err := d.svc.HandleTransactionCreated(ctx, ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}
