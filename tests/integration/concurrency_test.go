package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSweepRuns fires concurrent manual sweep triggers. The Redis
// lock admits one runner at a time; losers get 409. Whatever the interleaving,
// the ledger guarantees the merchant ends up with exactly one payout.
func TestConcurrentSweepRuns(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := app.addMerchant("5", "0")
	id := app.submitTransaction(t, merchantID, "120.00")
	app.markValidated(t, id)

	// The settlements rate limit group allows 5 per window; stay inside it.
	concurrency := 5

	var wg sync.WaitGroup
	var okCount, conflictCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Post(app.server.URL+"/api/v1/settlements/run", "application/json", nil)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			_, _ = io.ReadAll(resp.Body)

			switch resp.StatusCode {
			case http.StatusOK:
				okCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	t.Logf("Concurrent sweeps: %d ran, %d lost the lock (out of %d)", okCount.Load(), conflictCount.Load(), concurrency)

	assert.GreaterOrEqual(t, okCount.Load(), int64(1), "at least one sweep must run")
	assert.Equal(t, int64(concurrency), okCount.Load()+conflictCount.Load(), "every request must complete with 200 or 409")

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	assert.Len(t, payouts, 1, "the transaction must settle into exactly one payout")
}

// TestConcurrentPayoutPickups fires concurrent process requests against one
// READY_TO_PAY payout. The compare-and-swap pickup guard admits exactly one;
// the rest get 409 and the gateway is charged exactly once.
func TestConcurrentPayoutPickups(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	merchantID := app.addMerchant("5", "0")
	id := app.submitTransaction(t, merchantID, "350.00")
	app.markValidated(t, id)
	app.runSweep(t)

	payouts := app.listPayouts(t, "merchant_id="+merchantID.String())
	require.Len(t, payouts, 1)
	require.Equal(t, "READY_TO_PAY", payouts[0].Status)
	payoutID := payouts[0].ID

	concurrency := 10

	var wg sync.WaitGroup
	var paidCount, conflictCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Post(app.server.URL+"/api/v1/payouts/"+payoutID+"/process", "application/json", nil)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			_, _ = io.ReadAll(resp.Body)

			switch resp.StatusCode {
			case http.StatusOK:
				paidCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	t.Logf("Concurrent pickups: %d won, %d lost (out of %d)", paidCount.Load(), conflictCount.Load(), concurrency)

	assert.Equal(t, int64(1), paidCount.Load(), "exactly one pickup may win the compare-and-swap")
	assert.Equal(t, int64(concurrency-1), conflictCount.Load())
	assert.Equal(t, 1, app.gateway.callCount(), "the gateway must be charged exactly once")

	// Exactly one attempt row for the single real attempt.
	resp, err := http.Get(app.server.URL + "/api/v1/payouts/" + payoutID + "/attempts")
	require.NoError(t, err)
	defer resp.Body.Close()

	var attempts struct {
		Data []struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&attempts))
	require.Len(t, attempts.Data, 1)
	assert.Equal(t, "PAID", attempts.Data[0].Status)
}
