package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memTx releases the partition lock when the unit of work ends, whichever of
// Commit or Rollback runs first.
type memTx struct {
	pgx.Tx
	release func()
	once    sync.Once
}

func (tx *memTx) Commit(_ context.Context) error   { tx.once.Do(tx.release); return nil }
func (tx *memTx) Rollback(_ context.Context) error { tx.once.Do(tx.release); return nil }

// lockingTransactor serializes units of work the way a row lock on the wallet
// would: Begin blocks until the previous transaction committed or rolled back.
type lockingTransactor struct {
	mu sync.Mutex
}

func (t *lockingTransactor) Begin(_ context.Context, _ uuid.UUID) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// --- In-Memory Wallet Repo ---

type memWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newMemWalletRepo() *memWalletRepo {
	return &memWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *memWalletRepo) Create(_ context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wallets[w.Uid] = &cp
	return nil
}

func (r *memWalletRepo) GetByUid(_ context.Context, walletUid uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[walletUid]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWalletRepo) GetByUser(_ context.Context, userUid uuid.UUID) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Wallet
	for _, w := range r.wallets {
		if w.UserUid == userUid {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (r *memWalletRepo) ExistsByUserAndType(_ context.Context, userUid, walletTypeUid uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserUid == userUid && w.WalletTypeUid == walletTypeUid {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWalletRepo) GetForUpdate(ctx context.Context, _ pgx.Tx, walletUid uuid.UUID) (*domain.Wallet, error) {
	return r.GetByUid(ctx, walletUid)
}

func (r *memWalletRepo) UpdateBalance(_ context.Context, _ pgx.Tx, walletUid uuid.UUID, balance decimal.Decimal, modifiedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletUid]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.Balance = balance
	w.ModifiedAt = modifiedAt
	return nil
}

// --- In-Memory Transaction Repo ---

type memTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]*domain.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (r *memTransactionRepo) Create(_ context.Context, _ pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.transactions[t.Uid] = &cp
	return nil
}

func (r *memTransactionRepo) GetByUid(_ context.Context, transactionUid uuid.UUID) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[transactionUid]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTransactionRepo) GetByUidForUpdate(ctx context.Context, _ pgx.Tx, transactionUid uuid.UUID) (*domain.Transaction, error) {
	return r.GetByUid(ctx, transactionUid)
}

func (r *memTransactionRepo) UpdateStatus(_ context.Context, _ pgx.Tx, transactionUid uuid.UUID, status domain.TransactionStatus, failureReason *string, modifiedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[transactionUid]
	if !ok {
		return fmt.Errorf("transaction not found")
	}
	t.Status = status
	t.FailureReason = failureReason
	t.ModifiedAt = modifiedAt
	return nil
}

func (r *memTransactionRepo) Search(_ context.Context, params ports.TransactionSearchParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.transactions {
		if t.UserUid != params.UserUid {
			continue
		}
		if params.Status != nil && t.Status != *params.Status {
			continue
		}
		if params.Type != nil && t.Type != *params.Type {
			continue
		}
		result = append(result, *t)
	}
	return result, int64(len(result)), nil
}

func (r *memTransactionRepo) countByStatus(status domain.TransactionStatus) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, t := range r.transactions {
		if t.Status == status {
			n++
		}
	}
	return n
}

// --- No-op Event Publisher ---

type noopPublisher struct{}

func (noopPublisher) PublishDepositRequested(_ context.Context, _ domain.DepositRequestedEvent) error {
	return nil
}

func (noopPublisher) PublishWithdrawalRequested(_ context.Context, _ domain.WithdrawalRequestedEvent) error {
	return nil
}
