package postgres

import (
	"context"
	"testing"

	"merchant-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutTransactionRepo_Create_InTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	link := &domain.PayoutTransaction{ID: uuid.New(), PayoutID: uuid.New(), TransactionID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO payout_transactions").
		WithArgs(link.ID, link.PayoutID, link.TransactionID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, link)
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_Exists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	txnID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(txnID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), txnID)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_Exists_Unsettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	txnID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(txnID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), txnID)
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutTransactionRepo_FindByPayoutID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutTransactionRepo(mock)
	payoutID := uuid.New()
	a := domain.PayoutTransaction{ID: uuid.New(), PayoutID: payoutID, TransactionID: uuid.New()}
	b := domain.PayoutTransaction{ID: uuid.New(), PayoutID: payoutID, TransactionID: uuid.New()}

	mock.ExpectQuery("SELECT .+ FROM payout_transactions WHERE payout_id").
		WithArgs(payoutID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "payout_id", "transaction_id"}).
			AddRow(a.ID, a.PayoutID, a.TransactionID).
			AddRow(b.ID, b.PayoutID, b.TransactionID))

	links, err := repo.FindByPayoutID(context.Background(), payoutID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, a.TransactionID, links[0].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
