package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "merchant-settlement/internal/adapter/http/handler"
	redisStorage "merchant-settlement/internal/adapter/storage/redis"
	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"
	"merchant-settlement/internal/service"
	"merchant-settlement/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack: real HTTP layer, middleware,
// handlers and services, wired to in-memory repos, a fake merchant registry,
// a fake payment gateway, and miniredis for the sweep lock and rate limiting.

type testApp struct {
	server    *httptest.Server
	redis     *miniredis.Miniredis
	registry  *fakeMerchantRegistry
	gateway   *fakeGateway
	publisher *capturePublisher
	txRepo    *inMemoryTransactionRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	registry := newFakeMerchantRegistry()
	gateway := newFakeGateway()
	publisher := newCapturePublisher()

	txRepo := newInMemoryTransactionRepo()
	payoutRepo := newInMemoryPayoutRepo()
	linkRepo := newInMemoryPayoutTransactionRepo()
	attemptRepo := newInMemoryAttemptHistoryRepo()
	transactor := newInMemoryTransactor()

	log := logger.New("error", false)

	txSvc := service.NewTransactionService(txRepo, publisher, log)
	ledgerSvc := service.NewLedgerService(txSvc, payoutRepo, linkRepo, registry, publisher, transactor, 50, log)
	payoutSvc := service.NewPayoutService(payoutRepo, attemptRepo, linkRepo, gateway, registry, txSvc, log)

	sweepLock := redisStorage.NewSweepLock(rdb, uuid.New().String())

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TransactionSvc: txSvc,
		SettlementSvc:  ledgerSvc,
		PayoutSvc:      payoutSvc,
		SweepLock:      sweepLock,
		SweepLockTTL:   time.Minute,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:    server,
		redis:     mr,
		registry:  registry,
		gateway:   gateway,
		publisher: publisher,
		txRepo:    txRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// --- Helpers ---

func (a *testApp) addMerchant(commission, debt string) uuid.UUID {
	id := uuid.New()
	a.registry.add(&domain.Merchant{
		ID:                   id,
		Name:                 "Merchant " + id.String()[:8],
		IBAN:                 "TR000000000000000000000000",
		Debt:                 decimal.RequireFromString(debt),
		CommissionPercentage: decimal.RequireFromString(commission),
	})
	return id
}

func (a *testApp) submitTransaction(t *testing.T, merchantID uuid.UUID, amount string) uuid.UUID {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"merchant_id": merchantID.String(),
		"amount":      amount,
		"currency":    "TRY",
		"card_scheme": "VISA",
	})
	resp, err := http.Post(a.server.URL+"/api/v1/transactions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return uuid.MustParse(result.Data.ID)
}

func (a *testApp) markValidated(t *testing.T, txnID uuid.UUID) {
	t.Helper()
	body := []byte(`{"status":"VALIDATED"}`)
	req, _ := http.NewRequest(http.MethodPut, a.server.URL+"/api/v1/transactions/"+txnID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

type sweepResult struct {
	Data struct {
		PagesVisited   int `json:"pages_visited"`
		Seen           int `json:"transactions_seen"`
		Skipped        int `json:"transactions_skipped"`
		Settled        int `json:"transactions_settled"`
		PayoutsCreated int `json:"payouts_created"`
		GroupsFailed   int `json:"merchant_groups_failed"`
	} `json:"data"`
}

func (a *testApp) runSweep(t *testing.T) sweepResult {
	t.Helper()
	resp, err := http.Post(a.server.URL+"/api/v1/settlements/run", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result sweepResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

type payoutView struct {
	ID          string `json:"id"`
	MerchantID  string `json:"merchant_id"`
	GrossAmount string `json:"gross_amount"`
	NetAmount   string `json:"net_amount"`
	Status      string `json:"status"`
}

func (a *testApp) listPayouts(t *testing.T, query string) []payoutView {
	t.Helper()
	resp, err := http.Get(a.server.URL + "/api/v1/payouts?" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data []payoutView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Data
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_SettlementPipelineEndToEnd(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := app.addMerchant("5", "0")

	// Three validated transactions totalling 350.00 gross.
	ids := []uuid.UUID{
		app.submitTransaction(t, merchantID, "100.00"),
		app.submitTransaction(t, merchantID, "150.00"),
		app.submitTransaction(t, merchantID, "100.00"),
	}
	for _, id := range ids {
		app.markValidated(t, id)
	}

	// Sweep: 350.00 gross at 5% commission, no debt -> 332.50 net.
	sweep := app.runSweep(t)
	assert.Equal(t, 1, sweep.Data.PayoutsCreated)
	assert.Equal(t, 3, sweep.Data.Settled)
	assert.Equal(t, 0, sweep.Data.Skipped)

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	require.Len(t, payouts, 1)
	assert.Equal(t, "READY_TO_PAY", payouts[0].Status)
	assert.Equal(t, "332.5", payouts[0].NetAmount)

	// Swept transactions moved to PENDING and a payout-ready event went out.
	for _, id := range ids {
		txn, err := app.txRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPending, txn.Status)
	}
	require.Len(t, app.publisher.readyEvents(), 1)

	// Process the payout against the (succeeding) gateway.
	payoutID := payouts[0].ID
	resp, err := http.Post(app.server.URL+"/api/v1/payouts/"+payoutID+"/process", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var processResult struct {
		Data payoutView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&processResult))
	assert.Equal(t, "PAID", processResult.Data.Status)
	assert.Equal(t, 1, app.gateway.callCount())

	// Source transactions settle to PAID.
	for _, id := range ids {
		txn, err := app.txRepo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusPaid, txn.Status)
	}

	// One attempt row recorded.
	respAttempts, err := http.Get(app.server.URL + "/api/v1/payouts/" + payoutID + "/attempts")
	require.NoError(t, err)
	defer respAttempts.Body.Close()
	require.Equal(t, http.StatusOK, respAttempts.StatusCode)

	var attemptsResult struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(respAttempts.Body).Decode(&attemptsResult))
	require.Len(t, attemptsResult.Data, 1)
	assert.Equal(t, "PAID", attemptsResult.Data[0].Status)
}

func TestIntegration_SecondSweepIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := app.addMerchant("10", "0")
	id := app.submitTransaction(t, merchantID, "60.00")
	app.markValidated(t, id)

	first := app.runSweep(t)
	assert.Equal(t, 1, first.Data.PayoutsCreated)

	// The transaction moved to PENDING, so a second sweep finds nothing.
	second := app.runSweep(t)
	assert.Equal(t, 0, second.Data.PayoutsCreated)
	assert.Equal(t, 0, second.Data.Settled)

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	assert.Len(t, payouts, 1)
}

func TestIntegration_LedgerSkipsResurrectedTransaction(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := app.addMerchant("10", "0")
	id := app.submitTransaction(t, merchantID, "60.00")
	app.markValidated(t, id)
	app.runSweep(t)

	// Simulate a crash between the ledger commit and the PENDING move: the
	// transaction is back in VALIDATED but already linked to a payout.
	require.NoError(t, app.txRepo.UpdateStatus(context.Background(), id, domain.TransactionStatusValidated))

	second := app.runSweep(t)
	assert.Equal(t, 1, second.Data.Skipped)
	assert.Equal(t, 0, second.Data.PayoutsCreated)

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	assert.Len(t, payouts, 1, "the ledger keeps the transaction settled exactly once")
}

func TestIntegration_DebtExceedsNet_Insufficient(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// 100.00 gross at 10% commission with 130.00 debt -> net -40.00.
	merchantID := app.addMerchant("10", "130.00")
	id := app.submitTransaction(t, merchantID, "100.00")
	app.markValidated(t, id)

	sweep := app.runSweep(t)
	assert.Equal(t, 1, sweep.Data.PayoutsCreated)

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	require.Len(t, payouts, 1)
	assert.Equal(t, "INSUFFICIENT", payouts[0].Status)
	assert.Equal(t, "-40", payouts[0].NetAmount)

	// No payout-ready event for an insufficient payout.
	assert.Empty(t, app.publisher.readyEvents())

	// An INSUFFICIENT payout cannot be picked up.
	resp, err := http.Post(app.server.URL+"/api/v1/payouts/"+payouts[0].ID+"/process", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 0, app.gateway.callCount())
}

func TestIntegration_DeclinedPaymentRecordsFailedAttempt(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := app.addMerchant("5", "0")
	id := app.submitTransaction(t, merchantID, "200.00")
	app.markValidated(t, id)
	app.runSweep(t)

	app.gateway.setVerdict(false, "account closed")

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	require.Len(t, payouts, 1)

	resp, err := http.Post(app.server.URL+"/api/v1/payouts/"+payouts[0].ID+"/process", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data payoutView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "FAILED", result.Data.Status)

	// Source transactions stay PENDING; only a successful payment settles them.
	txn, err := app.txRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, txn.Status)
}

func TestIntegration_DebtWriteBack(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// 500.00 gross at 5% with 30.00 debt -> 445.00 net, debt fully withheld.
	merchantID := app.addMerchant("5", "30.00")
	id := app.submitTransaction(t, merchantID, "500.00")
	app.markValidated(t, id)
	app.runSweep(t)

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	require.Len(t, payouts, 1)
	require.Equal(t, "READY_TO_PAY", payouts[0].Status)

	resp, err := http.Post(app.server.URL+"/api/v1/payouts/"+payouts[0].ID+"/process", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m, err := app.registry.GetByID(context.Background(), merchantID)
	require.NoError(t, err)
	assert.True(t, m.Debt.IsZero(), "debt after write-back: %s", m.Debt)
}

func TestIntegration_UnknownMerchantFailsSweepGroup(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	known := app.addMerchant("5", "0")
	unknown := uuid.New() // never registered

	knownTxn := app.submitTransaction(t, known, "80.00")
	unknownTxn := app.submitTransaction(t, unknown, "90.00")
	app.markValidated(t, knownTxn)
	app.markValidated(t, unknownTxn)

	sweep := app.runSweep(t)
	assert.Equal(t, 1, sweep.Data.PayoutsCreated)
	assert.Equal(t, 1, sweep.Data.GroupsFailed)

	// The known merchant settled despite the failing group.
	payouts := app.listPayouts(t, "merchant_id="+known.String())
	assert.Len(t, payouts, 1)
}

func TestIntegration_RateLimitOnSweepEndpoint(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// The settlements group allows 5 requests per window.
	var statuses []int
	for i := 0; i < 6; i++ {
		resp, err := http.Post(app.server.URL+"/api/v1/settlements/run", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		statuses = append(statuses, resp.StatusCode)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusTooManyRequests, statuses[5], fmt.Sprintf("statuses: %v", statuses))
}
