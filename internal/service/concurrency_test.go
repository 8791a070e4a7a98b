package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wallet-transaction-engine/internal/cache"
	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/internal/sharding"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionService_ConcurrentWithdrawalConfirms fires confirms against
// one wallet in parallel. The balance covers exactly five of the ten
// withdrawals, so serialization through the wallet lock must let exactly five
// through and reject the rest with an insufficient-balance error. A wrong
// lock discipline would double-spend and drive the balance negative.
func TestTransactionService_ConcurrentWithdrawalConfirms(t *testing.T) {
	ctx := context.Background()

	router, err := sharding.NewRouter(sharding.Config{
		Partitions: []sharding.PartitionConfig{{Name: "p0", DSN: "dsn"}},
		Algorithm:  sharding.AlgorithmHashMod,
	})
	require.NoError(t, err)

	walletRepo := newMemWalletRepo()
	txRepo := newMemTransactionRepo()
	initCache := cache.NewInitRequestCache(15*time.Minute, zerolog.Nop())
	feeCalc := NewFeeCalculator(FeePolicy{
		DepositPercent:    decimal.Zero,
		WithdrawalPercent: decimal.NewFromFloat(0.01),
		TransferPercent:   decimal.NewFromFloat(0.005),
	})

	svc := NewTransactionService(
		walletRepo, txRepo, feeCalc, initCache,
		noopPublisher{}, &lockingTransactor{}, router, zerolog.Nop(),
	)

	// 5 * (100 + 1 fee) = 505: the balance supports exactly five confirms.
	wallet := activeWallet(uuid.New(), "505")
	require.NoError(t, walletRepo.Create(ctx, wallet))

	concurrency := 10
	amount := decimal.RequireFromString("100")

	requests := make([]*domain.InitRequest, 0, concurrency)
	for i := 0; i < concurrency; i++ {
		req, err := svc.Init(ctx, ports.InitParams{
			Type:      domain.PaymentTypeWithdrawal,
			WalletUid: wallet.Uid,
			Amount:    amount,
		})
		require.NoError(t, err)
		requests = append(requests, req)
	}

	var wg sync.WaitGroup
	var successes, insufficient atomic.Int64
	for _, req := range requests {
		wg.Add(1)
		go func(req *domain.InitRequest) {
			defer wg.Done()
			_, err := svc.Confirm(ctx, ports.ConfirmParams{
				Type:       domain.PaymentTypeWithdrawal,
				RequestUid: req.RequestUid,
				WalletUid:  wallet.Uid,
				Amount:     amount,
			})
			if err == nil {
				successes.Add(1)
				return
			}
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == "TXN_003" {
				insufficient.Add(1)
			}
		}(req)
	}
	wg.Wait()

	assert.Equal(t, int64(5), successes.Load(), "exactly as many confirms as the balance supports")
	assert.Equal(t, int64(5), insufficient.Load(), "the rest fail the balance recheck under lock")

	stored, err := walletRepo.GetByUid(ctx, wallet.Uid)
	require.NoError(t, err)
	assert.True(t, stored.Balance.IsZero(), "balance drained to exactly zero, never negative")
	assert.Equal(t, 5, txRepo.countByStatus(domain.TransactionStatusPending),
		"one pending transaction per successful confirm")
}
