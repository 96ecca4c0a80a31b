package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"merchant-settlement/internal/core/domain"
	"merchant-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.ID] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return fmt.Errorf("transaction not found: %s", id)
	}
	t.Status = status
	return nil
}

func (r *inMemoryTransactionRepo) SetPending(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok || t.Status != domain.TransactionStatusValidated {
		return false, nil
	}
	t.Status = domain.TransactionStatusPending
	return true, nil
}

func (r *inMemoryTransactionRepo) FindByStatus(ctx context.Context, status domain.TransactionStatus, page, size int) (*ports.TransactionPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Transaction
	for _, t := range r.transactions {
		if t.Status == status {
			matched = append(matched, *t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID.String() < matched[j].ID.String()
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := page * size
	if start >= len(matched) {
		return &ports.TransactionPage{Items: nil, Total: total, Page: page, Size: size}, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return &ports.TransactionPage{Items: matched[start:end], Total: total, Page: page, Size: size}, nil
}

// --- In-Memory Payout Repo ---

type inMemoryPayoutRepo struct {
	mu      sync.RWMutex
	payouts map[uuid.UUID]*domain.Payout
}

func newInMemoryPayoutRepo() *inMemoryPayoutRepo {
	return &inMemoryPayoutRepo{payouts: make(map[uuid.UUID]*domain.Payout)}
}

func (r *inMemoryPayoutRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payouts[p.ID] = &cp
	return nil
}

func (r *inMemoryPayoutRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payouts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPayoutRepo) FindByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Payout
	for _, p := range r.payouts {
		if p.Status == status {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *inMemoryPayoutRepo) FindByMerchant(ctx context.Context, merchantID uuid.UUID, status *domain.PayoutStatus) ([]domain.Payout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Payout
	for _, p := range r.payouts {
		if p.MerchantID != merchantID {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *inMemoryPayoutRepo) MarkProcessing(ctx context.Context, id uuid.UUID, processedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payouts[id]
	if !ok || p.Status != domain.PayoutStatusReadyToPay {
		return false, nil
	}
	p.Status = domain.PayoutStatusProcessing
	p.ProcessedAt = &processedAt
	return true, nil
}

func (r *inMemoryPayoutRepo) SetFinalStatus(ctx context.Context, id uuid.UUID, status domain.PayoutStatus, processedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payouts[id]
	if !ok {
		return fmt.Errorf("payout not found: %s", id)
	}
	p.Status = status
	p.ProcessedAt = &processedAt
	return nil
}

// --- In-Memory Payout Transaction Repo (idempotency ledger) ---

type inMemoryPayoutTransactionRepo struct {
	mu    sync.RWMutex
	links map[uuid.UUID]*domain.PayoutTransaction // keyed by transaction id
}

func newInMemoryPayoutTransactionRepo() *inMemoryPayoutTransactionRepo {
	return &inMemoryPayoutTransactionRepo{links: make(map[uuid.UUID]*domain.PayoutTransaction)}
}

func (r *inMemoryPayoutTransactionRepo) Create(ctx context.Context, tx pgx.Tx, link *domain.PayoutTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[link.TransactionID]; ok {
		return fmt.Errorf("transaction already settled: %s", link.TransactionID)
	}
	cp := *link
	r.links[link.TransactionID] = &cp
	return nil
}

func (r *inMemoryPayoutTransactionRepo) Exists(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.links[transactionID]
	return ok, nil
}

func (r *inMemoryPayoutTransactionRepo) FindByPayoutID(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.PayoutTransaction
	for _, l := range r.links {
		if l.PayoutID == payoutID {
			result = append(result, *l)
		}
	}
	return result, nil
}

// --- In-Memory Attempt History Repo ---

type inMemoryAttemptHistoryRepo struct {
	mu       sync.RWMutex
	attempts []domain.PayoutAttemptHistory
}

func newInMemoryAttemptHistoryRepo() *inMemoryAttemptHistoryRepo {
	return &inMemoryAttemptHistoryRepo{}
}

func (r *inMemoryAttemptHistoryRepo) Create(ctx context.Context, attempt *domain.PayoutAttemptHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *inMemoryAttemptHistoryRepo) FindByPayoutID(ctx context.Context, payoutID uuid.UUID) ([]domain.PayoutAttemptHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.PayoutAttemptHistory
	for _, a := range r.attempts {
		if a.PayoutID == payoutID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AttemptedAt.Before(result[j].AttemptedAt) })
	return result, nil
}

// --- Fake Merchant Registry ---

type fakeMerchantRegistry struct {
	mu        sync.RWMutex
	merchants map[uuid.UUID]*domain.Merchant
}

func newFakeMerchantRegistry() *fakeMerchantRegistry {
	return &fakeMerchantRegistry{merchants: make(map[uuid.UUID]*domain.Merchant)}
}

func (r *fakeMerchantRegistry) add(m *domain.Merchant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.merchants[m.ID] = m
}

func (r *fakeMerchantRegistry) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMerchantRegistry) UpdateDebt(ctx context.Context, id uuid.UUID, debt decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.merchants[id]
	if !ok {
		return fmt.Errorf("merchant not found: %s", id)
	}
	m.Debt = debt
	return nil
}

// --- Fake Payment Gateway ---

type fakeGateway struct {
	mu      sync.Mutex
	verdict ports.PaymentResult
	calls   int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{verdict: ports.PaymentResult{Succeeded: true}}
}

func (g *fakeGateway) setVerdict(succeeded bool, reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.verdict = ports.PaymentResult{Succeeded: succeeded, Reason: reason}
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *fakeGateway) Pay(ctx context.Context, p *domain.Payout) (*ports.PaymentResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	v := g.verdict
	return &v, nil
}

// --- Capturing Event Publisher ---

type capturePublisher struct {
	mu        sync.Mutex
	created   []domain.TransactionCreatedEvent
	validated []domain.ValidationResultEvent
	ready     []domain.PayoutReadyEvent
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{}
}

func (p *capturePublisher) PublishTransactionCreated(ctx context.Context, ev domain.TransactionCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, ev)
	return nil
}

func (p *capturePublisher) PublishValidationResult(ctx context.Context, ev domain.ValidationResultEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.validated = append(p.validated, ev)
	return nil
}

func (p *capturePublisher) PublishPayoutReady(ctx context.Context, ev domain.PayoutReadyEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = append(p.ready, ev)
	return nil
}

func (p *capturePublisher) readyEvents() []domain.PayoutReadyEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.PayoutReadyEvent(nil), p.ready...)
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
