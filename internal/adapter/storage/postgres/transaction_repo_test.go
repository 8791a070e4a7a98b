package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(userUid uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		Uid:       uuid.New(),
		UserUid:   userUid,
		WalletUid: uuid.New(),
		Amount:    decimal.RequireFromString("100.0000"),
		Fee:       decimal.RequireFromString("1.0000"),
		Type:      domain.PaymentTypeWithdrawal,
		Status:    domain.TransactionStatusPending,
		Auditable: domain.Auditable{CreatedAt: now, ModifiedAt: now},
	}
}

func transactionTestColumns() []string {
	return []string{"uid", "user_uid", "wallet_uid", "target_wallet_uid", "amount", "fee", "type", "status", "failure_reason", "payment_method_id", "created_at", "modified_at"}
}

func transactionRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(transactionTestColumns()).AddRow(
		t.Uid, t.UserUid, t.WalletUid, t.TargetWalletUid,
		t.Amount, t.Fee, t.Type, t.Status,
		t.FailureReason, t.PaymentMethodID, t.CreatedAt, t.ModifiedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(newTestShardSet(t, mock))
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.Uid, txn.UserUid, txn.WalletUid, txn.TargetWalletUid,
			txn.Amount, txn.Fee, txn.Type, txn.Status,
			txn.FailureReason, txn.PaymentMethodID, txn.CreatedAt, txn.ModifiedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByUid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(newTestShardSet(t, mock))
	txn := newTestTransaction(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE uid").
		WithArgs(txn.Uid).
		WillReturnRows(transactionRow(txn))

	result, err := repo.GetByUid(context.Background(), txn.Uid)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.Uid, result.Uid)
	assert.True(t, result.Amount.Equal(txn.Amount))
}

func TestTransactionRepo_GetByUid_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(newTestShardSet(t, mock))
	txUid := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE uid").
		WithArgs(txUid).
		WillReturnRows(pgxmock.NewRows(transactionTestColumns()))

	result, err := repo.GetByUid(context.Background(), txUid)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestTransactionRepo_GetByUidForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(newTestShardSet(t, mock))
	txn := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE uid .+ FOR UPDATE").
		WithArgs(txn.Uid).
		WillReturnRows(transactionRow(txn))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByUidForUpdate(context.Background(), tx, txn.Uid)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.Uid, result.Uid)
}

func TestTransactionRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(newTestShardSet(t, mock))
	txUid := uuid.New()
	reason := "provider rejected"
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusFailed, &reason, now, txUid).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, txUid, domain.TransactionStatusFailed, &reason, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_Search(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(newTestShardSet(t, mock))
	userUid := uuid.New()
	txn := newTestTransaction(userUid)
	status := domain.TransactionStatusPending

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userUid, status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM transactions .+ ORDER BY created_at DESC").
		WithArgs(userUid, status, 20, 0).
		WillReturnRows(transactionRow(txn))

	txns, total, err := repo.Search(context.Background(), ports.TransactionSearchParams{
		UserUid:  userUid,
		Status:   &status,
		Page:     0,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.Uid, txns[0].Uid)
	assert.NoError(t, mock.ExpectationsWereMet())
}
