package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/internal/core/ports/mocks"
	"wallet-transaction-engine/internal/sharding"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type txnTestDeps struct {
	svc        *TransactionServiceImpl
	walletRepo *mocks.MockWalletRepository
	txRepo     *mocks.MockTransactionRepository
	initCache  *mocks.MockInitRequestCache
	publisher  *mocks.MockEventPublisher
	transactor *mocks.MockDBTransactor
	router     *sharding.Router
	ctrl       *gomock.Controller
}

func setupTransactionService(t *testing.T, partitions int) *txnTestDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	parts := make([]sharding.PartitionConfig, partitions)
	for i := range parts {
		parts[i] = sharding.PartitionConfig{Name: "p", DSN: "dsn"}
	}
	router, err := sharding.NewRouter(sharding.Config{
		Partitions: parts,
		Algorithm:  sharding.AlgorithmHashMod,
	})
	require.NoError(t, err)

	feeCalc := NewFeeCalculator(FeePolicy{
		DepositPercent:    decimal.Zero,
		WithdrawalPercent: decimal.NewFromFloat(0.01),
		TransferPercent:   decimal.NewFromFloat(0.005),
	})

	d := &txnTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		initCache:  mocks.NewMockInitRequestCache(ctrl),
		publisher:  mocks.NewMockEventPublisher(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		router:     router,
		ctrl:       ctrl,
	}
	d.svc = NewTransactionService(
		d.walletRepo, d.txRepo, feeCalc, d.initCache,
		d.publisher, d.transactor, router, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func activeWallet(userUid uuid.UUID, balance string) *domain.Wallet {
	return &domain.Wallet{
		Uid:          uuid.New(),
		Name:         "main",
		UserUid:      userUid,
		CurrencyCode: "USD",
		Status:       domain.WalletStatusActive,
		Balance:      decimal.RequireFromString(balance),
	}
}

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// ==================== Init Tests ====================

func TestTransactionService_Init_Deposit(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")

	d.walletRepo.EXPECT().GetByUid(ctx, wallet.Uid).Return(wallet, nil)
	d.initCache.EXPECT().ExpiresAt(gomock.Any()).
		DoAndReturn(func(now time.Time) time.Time { return now.Add(15 * time.Minute) })
	d.initCache.EXPECT().Put(gomock.Any())

	req, err := d.svc.Init(ctx, ports.InitParams{
		Type:      domain.PaymentTypeDeposit,
		WalletUid: wallet.Uid,
		Amount:    decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.NotEqual(t, uuid.Nil, req.RequestUid)
	assert.Equal(t, wallet.Uid, req.WalletUid)
	assert.Equal(t, wallet.UserUid, req.UserUid)
	assert.Equal(t, "USD", req.CurrencyCode)
	assert.True(t, req.Fee.IsZero(), "deposit carries no fee")
	assert.True(t, req.TotalAmount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 15*time.Minute, req.ExpiresAt.Sub(req.CreatedAt))
}

func TestTransactionService_Init_WithdrawalFee(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "500")

	d.walletRepo.EXPECT().GetByUid(ctx, wallet.Uid).Return(wallet, nil)
	d.initCache.EXPECT().ExpiresAt(gomock.Any()).Return(time.Now().Add(15 * time.Minute))
	d.initCache.EXPECT().Put(gomock.Any())

	req, err := d.svc.Init(ctx, ports.InitParams{
		Type:      domain.PaymentTypeWithdrawal,
		WalletUid: wallet.Uid,
		Amount:    decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.True(t, req.Fee.Equal(decimal.RequireFromString("1")), "1% of 100")
	assert.True(t, req.TotalAmount.Equal(decimal.RequireFromString("101")))
}

func TestTransactionService_Init_InvalidAmount(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	for _, amount := range []string{"0", "-5"} {
		_, err := d.svc.Init(context.Background(), ports.InitParams{
			Type:      domain.PaymentTypeDeposit,
			WalletUid: uuid.New(),
			Amount:    decimal.RequireFromString(amount),
		})
		assertAppError(t, err, "TXN_002")
	}
}

func TestTransactionService_Init_WalletNotFound(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletUid := uuid.New()
	d.walletRepo.EXPECT().GetByUid(ctx, walletUid).Return(nil, nil)

	_, err := d.svc.Init(ctx, ports.InitParams{
		Type:      domain.PaymentTypeDeposit,
		WalletUid: walletUid,
		Amount:    decimal.RequireFromString("10"),
	})
	assertAppError(t, err, "WLT_001")
}

func TestTransactionService_Init_InactiveWallet(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	wallet.Status = domain.WalletStatusInactive
	d.walletRepo.EXPECT().GetByUid(ctx, wallet.Uid).Return(wallet, nil)

	_, err := d.svc.Init(ctx, ports.InitParams{
		Type:      domain.PaymentTypeDeposit,
		WalletUid: wallet.Uid,
		Amount:    decimal.RequireFromString("10"),
	})
	assertAppError(t, err, "WLT_004")
}

func TestTransactionService_Init_WithdrawalInsufficientBalance(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	d.walletRepo.EXPECT().GetByUid(ctx, wallet.Uid).Return(wallet, nil)

	// total = 100 + 1% fee = 101 > 100
	_, err := d.svc.Init(ctx, ports.InitParams{
		Type:      domain.PaymentTypeWithdrawal,
		WalletUid: wallet.Uid,
		Amount:    decimal.RequireFromString("100"),
	})
	assertAppError(t, err, "TXN_003")
}

func TestTransactionService_Init_TransferValidation(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	walletUid := uuid.New()

	_, err := d.svc.Init(context.Background(), ports.InitParams{
		Type:      domain.PaymentTypeTransfer,
		WalletUid: walletUid,
		Amount:    decimal.RequireFromString("10"),
	})
	assertAppError(t, err, "TXN_005")

	_, err = d.svc.Init(context.Background(), ports.InitParams{
		Type:            domain.PaymentTypeTransfer,
		WalletUid:       walletUid,
		TargetWalletUid: &walletUid,
		Amount:          decimal.RequireFromString("10"),
	})
	assertAppError(t, err, "TXN_006")
}

func TestTransactionService_Init_TransferCurrencyMismatch(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	source := activeWallet(uuid.New(), "1000")
	target := activeWallet(uuid.New(), "0")
	target.CurrencyCode = "EUR"

	d.walletRepo.EXPECT().GetByUid(ctx, source.Uid).Return(source, nil)
	d.walletRepo.EXPECT().GetByUid(ctx, target.Uid).Return(target, nil)

	_, err := d.svc.Init(ctx, ports.InitParams{
		Type:            domain.PaymentTypeTransfer,
		WalletUid:       source.Uid,
		TargetWalletUid: &target.Uid,
		Amount:          decimal.RequireFromString("10"),
	})
	assertAppError(t, err, "TXN_007")
}

// ==================== Confirm Tests ====================

func depositInitRequest(wallet *domain.Wallet, amount string) *domain.InitRequest {
	amt := decimal.RequireFromString(amount)
	now := time.Now().UTC()
	return &domain.InitRequest{
		RequestUid:   uuid.New(),
		UserUid:      wallet.UserUid,
		WalletUid:    wallet.Uid,
		Type:         domain.PaymentTypeDeposit,
		Amount:       amt,
		Fee:          decimal.Zero,
		TotalAmount:  amt,
		CurrencyCode: wallet.CurrencyCode,
		CreatedAt:    now,
		ExpiresAt:    now.Add(15 * time.Minute),
	}
}

func TestTransactionService_Confirm_Deposit(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	initReq := depositInitRequest(wallet, "100")
	tx := &mockTx{}

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.transactor.EXPECT().Begin(ctx, wallet.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, wallet.Uid).Return(wallet, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().PublishDepositRequested(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.DepositRequestedEvent) error {
			assert.Equal(t, wallet.Uid, ev.WalletUid)
			assert.True(t, ev.Amount.Equal(initReq.Amount))
			assert.NotEqual(t, uuid.Nil, ev.EventID)
			return nil
		})

	txn, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeDeposit,
		RequestUid: initReq.RequestUid,
		WalletUid:  wallet.Uid,
		Amount:     initReq.Amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, txn.Status)
	assert.Equal(t, domain.PaymentTypeDeposit, txn.Type)
	// Deposit never touches the balance at confirm time.
	assert.True(t, wallet.Balance.IsZero())
}

func TestTransactionService_Confirm_RequestNotFound(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	requestUid := uuid.New()
	d.initCache.EXPECT().GetAndRemove(requestUid).
		Return(nil, apperror.ErrRequestNotFound(requestUid.String()))

	_, err := d.svc.Confirm(context.Background(), ports.ConfirmParams{
		Type:       domain.PaymentTypeDeposit,
		RequestUid: requestUid,
		WalletUid:  uuid.New(),
		Amount:     decimal.RequireFromString("10"),
	})
	assertAppError(t, err, "REQ_001")
}

func TestTransactionService_Confirm_Mismatch(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	wallet := activeWallet(uuid.New(), "0")

	tests := []struct {
		name   string
		params ports.ConfirmParams
	}{
		{"type mismatch", ports.ConfirmParams{
			Type: domain.PaymentTypeWithdrawal, WalletUid: wallet.Uid,
			Amount: decimal.RequireFromString("100"),
		}},
		{"wallet mismatch", ports.ConfirmParams{
			Type: domain.PaymentTypeDeposit, WalletUid: uuid.New(),
			Amount: decimal.RequireFromString("100"),
		}},
		{"amount mismatch", ports.ConfirmParams{
			Type: domain.PaymentTypeDeposit, WalletUid: wallet.Uid,
			Amount: decimal.RequireFromString("99"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initReq := depositInitRequest(wallet, "100")
			tt.params.RequestUid = initReq.RequestUid
			d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)

			_, err := d.svc.Confirm(context.Background(), tt.params)
			assertAppError(t, err, "TXN_004")
		})
	}
}

func TestTransactionService_Confirm_WithdrawalReservesFunds(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "500")
	initReq := depositInitRequest(wallet, "100")
	initReq.Type = domain.PaymentTypeWithdrawal
	initReq.Fee = decimal.RequireFromString("1")
	initReq.TotalAmount = decimal.RequireFromString("101")
	tx := &mockTx{}

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.transactor.EXPECT().Begin(ctx, wallet.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, wallet.Uid).Return(wallet, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, wallet.Uid, decimal.RequireFromString("399"), gomock.Any()).
		Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().PublishWithdrawalRequested(ctx, gomock.Any()).Return(nil)

	txn, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeWithdrawal,
		RequestUid: initReq.RequestUid,
		WalletUid:  wallet.Uid,
		Amount:     initReq.Amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusPending, txn.Status)
	assert.True(t, txn.TotalAmount().Equal(decimal.RequireFromString("101")))
}

func TestTransactionService_Confirm_WithdrawalBalanceRecheck(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "50") // drained since init
	initReq := depositInitRequest(wallet, "100")
	initReq.Type = domain.PaymentTypeWithdrawal
	initReq.Fee = decimal.RequireFromString("1")
	initReq.TotalAmount = decimal.RequireFromString("101")
	tx := &mockTx{}

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.transactor.EXPECT().Begin(ctx, wallet.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, wallet.Uid).Return(wallet, nil)

	_, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeWithdrawal,
		RequestUid: initReq.RequestUid,
		WalletUid:  wallet.Uid,
		Amount:     initReq.Amount,
	})
	assertAppError(t, err, "TXN_003")
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("50")), "balance untouched")
}

func TestTransactionService_Confirm_PublishFailureDoesNotFailConfirm(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "0")
	initReq := depositInitRequest(wallet, "100")
	tx := &mockTx{}

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.transactor.EXPECT().Begin(ctx, wallet.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, wallet.Uid).Return(wallet, nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().PublishDepositRequested(ctx, gomock.Any()).
		Return(errors.New("broker down"))

	txn, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeDeposit,
		RequestUid: initReq.RequestUid,
		WalletUid:  wallet.Uid,
		Amount:     initReq.Amount,
	})
	require.NoError(t, err, "committed transaction survives a publish failure")
	assert.Equal(t, domain.TransactionStatusPending, txn.Status)
}

// recordingTx tracks how the unit of work ended.
type recordingTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (m *recordingTx) Commit(_ context.Context) error   { m.committed = true; return nil }
func (m *recordingTx) Rollback(_ context.Context) error { m.rolledBack = true; return nil }

func TestTransactionService_Confirm_PersistenceFailureRollsBack(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "500")
	initReq := depositInitRequest(wallet, "100")
	initReq.Type = domain.PaymentTypeWithdrawal
	initReq.Fee = decimal.RequireFromString("1")
	initReq.TotalAmount = decimal.RequireFromString("101")
	tx := &recordingTx{}

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.transactor.EXPECT().Begin(ctx, wallet.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, wallet.Uid).Return(wallet, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, wallet.Uid, decimal.RequireFromString("399"), gomock.Any()).
		Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(errors.New("insert failed"))

	// No publish: the transaction never committed.
	_, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeWithdrawal,
		RequestUid: initReq.RequestUid,
		WalletUid:  wallet.Uid,
		Amount:     initReq.Amount,
	})
	assertAppError(t, err, "SYS_001")

	// The debit ran inside the aborted unit of work, so the durable balance
	// is untouched and no transaction row exists.
	assert.True(t, tx.rolledBack, "unit of work rolled back")
	assert.False(t, tx.committed, "nothing committed")
}

func TestTransactionService_Confirm_TransferSameShard(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	source := activeWallet(uuid.New(), "1000")
	target := activeWallet(uuid.New(), "200")
	tx := &mockTx{}

	initReq := depositInitRequest(source, "100")
	initReq.Type = domain.PaymentTypeTransfer
	initReq.TargetWalletUid = &target.Uid
	initReq.Fee = decimal.RequireFromString("0.5")
	initReq.TotalAmount = decimal.RequireFromString("100.5")

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.walletRepo.EXPECT().GetByUid(ctx, target.Uid).Return(target, nil)
	d.transactor.EXPECT().Begin(ctx, source.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, source.Uid).Return(source, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, target.Uid).Return(target, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, source.Uid, decimal.RequireFromString("899.5"), gomock.Any()).
		Return(nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, target.Uid, decimal.RequireFromString("300"), gomock.Any()).
		Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeTransfer,
		RequestUid: initReq.RequestUid,
		WalletUid:  source.Uid,
		Amount:     initReq.Amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCompleted, txn.Status)
	require.NotNil(t, txn.TargetWalletUid)
	assert.Equal(t, target.Uid, *txn.TargetWalletUid)
}

func TestTransactionService_Confirm_TransferCrossShard(t *testing.T) {
	d := setupTransactionService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	source := activeWallet(uuid.New(), "1000")
	target := activeWallet(uuid.New(), "0")
	for d.router.ShardFor(source.UserUid) == d.router.ShardFor(target.UserUid) {
		target.UserUid = uuid.New()
	}
	tx := &mockTx{}

	initReq := depositInitRequest(source, "100")
	initReq.Type = domain.PaymentTypeTransfer
	initReq.TargetWalletUid = &target.Uid
	initReq.Fee = decimal.RequireFromString("0.5")
	initReq.TotalAmount = decimal.RequireFromString("100.5")

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.walletRepo.EXPECT().GetByUid(ctx, target.Uid).Return(target, nil)

	// Debit leg: the record is created PENDING, never COMPLETED ahead of
	// the target credit.
	d.transactor.EXPECT().Begin(ctx, source.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, source.Uid).Return(source, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, source.Uid, decimal.RequireFromString("899.5"), gomock.Any()).
		Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionStatusPending, txn.Status)
			return nil
		})

	// Credit leg on the target shard.
	d.transactor.EXPECT().Begin(ctx, target.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, target.Uid).Return(target, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, target.Uid, decimal.RequireFromString("100"), gomock.Any()).
		Return(nil)

	// Promotion to COMPLETED only after the credit committed.
	d.transactor.EXPECT().Begin(ctx, source.UserUid).Return(tx, nil)
	d.txRepo.EXPECT().
		UpdateStatus(ctx, tx, gomock.Any(), domain.TransactionStatusCompleted, nil, gomock.Any()).
		Return(nil)

	txn, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeTransfer,
		RequestUid: initReq.RequestUid,
		WalletUid:  source.Uid,
		Amount:     initReq.Amount,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionStatusCompleted, txn.Status)
	assert.True(t, target.Balance.Equal(decimal.RequireFromString("100")))
}

func TestTransactionService_Confirm_TransferCrossShardCompensation(t *testing.T) {
	d := setupTransactionService(t, 4)
	defer d.ctrl.Finish()

	ctx := context.Background()
	source := activeWallet(uuid.New(), "1000")
	target := activeWallet(uuid.New(), "0")
	for d.router.ShardFor(source.UserUid) == d.router.ShardFor(target.UserUid) {
		target.UserUid = uuid.New()
	}
	tx := &mockTx{}

	initReq := depositInitRequest(source, "100")
	initReq.Type = domain.PaymentTypeTransfer
	initReq.TargetWalletUid = &target.Uid
	initReq.Fee = decimal.RequireFromString("0.5")
	initReq.TotalAmount = decimal.RequireFromString("100.5")

	d.initCache.EXPECT().GetAndRemove(initReq.RequestUid).Return(initReq, nil)
	d.walletRepo.EXPECT().GetByUid(ctx, target.Uid).Return(target, nil)

	// Debit leg on the source shard succeeds; the record is persisted
	// PENDING since the outcome is not yet known.
	d.transactor.EXPECT().Begin(ctx, source.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, source.Uid).Return(source, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, source.Uid, decimal.RequireFromString("899.5"), gomock.Any()).
		Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, txn *domain.Transaction) error {
			assert.Equal(t, domain.TransactionStatusPending, txn.Status)
			return nil
		})

	// Credit leg on the target shard fails.
	d.transactor.EXPECT().Begin(ctx, target.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, target.Uid).
		Return(nil, errors.New("target shard down"))

	// Compensating refund restores the source and fails the transaction.
	d.transactor.EXPECT().Begin(ctx, source.UserUid).Return(tx, nil)
	d.walletRepo.EXPECT().GetForUpdate(ctx, tx, source.Uid).Return(source, nil)
	d.walletRepo.EXPECT().
		UpdateBalance(ctx, tx, source.Uid, decimal.RequireFromString("1000"), gomock.Any()).
		Return(nil)
	d.txRepo.EXPECT().
		UpdateStatus(ctx, tx, gomock.Any(), domain.TransactionStatusFailed, gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := d.svc.Confirm(ctx, ports.ConfirmParams{
		Type:       domain.PaymentTypeTransfer,
		RequestUid: initReq.RequestUid,
		WalletUid:  source.Uid,
		Amount:     initReq.Amount,
	})
	assertAppError(t, err, "SYS_001")
	assert.True(t, source.Balance.Equal(decimal.RequireFromString("1000")), "source refunded")
}

// ==================== GetStatus / Search Tests ====================

func TestTransactionService_GetStatus(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	wallet := activeWallet(uuid.New(), "100")
	txn := &domain.Transaction{
		Uid:       uuid.New(),
		UserUid:   wallet.UserUid,
		WalletUid: wallet.Uid,
		Amount:    decimal.RequireFromString("10"),
		Type:      domain.PaymentTypeDeposit,
		Status:    domain.TransactionStatusPending,
	}

	d.txRepo.EXPECT().GetByUid(ctx, txn.Uid).Return(txn, nil)
	d.walletRepo.EXPECT().GetByUid(ctx, wallet.Uid).Return(wallet, nil)

	result, err := d.svc.GetStatus(ctx, txn.Uid)
	require.NoError(t, err)
	assert.Equal(t, txn, result.Transaction)
	assert.Equal(t, "USD", result.CurrencyCode)
}

func TestTransactionService_GetStatus_NotFound(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	txUid := uuid.New()
	d.txRepo.EXPECT().GetByUid(ctx, txUid).Return(nil, nil)

	_, err := d.svc.GetStatus(ctx, txUid)
	assertAppError(t, err, "TXN_001")
}

func TestTransactionService_Search_Defaults(t *testing.T) {
	d := setupTransactionService(t, 1)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userUid := uuid.New()

	d.txRepo.EXPECT().
		Search(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params ports.TransactionSearchParams) ([]domain.Transaction, int64, error) {
			assert.Equal(t, 0, params.Page)
			assert.Equal(t, 20, params.PageSize)
			return []domain.Transaction{{Uid: uuid.New()}}, 41, nil
		})

	page, err := d.svc.Search(ctx, ports.TransactionSearchParams{
		UserUid: userUid,
		Page:    -1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages, "ceil(41/20)")
	assert.Equal(t, 20, page.Size)
}
