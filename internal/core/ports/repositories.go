package ports

import (
	"context"
	"time"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets. Rows are
// partitioned by user uid; lookups by wallet uid alone scatter across shards.
// Methods accepting pgx.Tx run inside a unit of work and may take row locks.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUid(ctx context.Context, walletUid uuid.UUID) (*domain.Wallet, error)
	GetByUser(ctx context.Context, userUid uuid.UUID) ([]domain.Wallet, error)
	ExistsByUserAndType(ctx context.Context, userUid, walletTypeUid uuid.UUID) (bool, error)
	// GetForUpdate acquires an exclusive row lock for the duration of tx.
	GetForUpdate(ctx context.Context, tx pgx.Tx, walletUid uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletUid uuid.UUID, balance decimal.Decimal, modifiedAt time.Time) error
}

// WalletTypeRepository defines persistence for the broadcast wallet_types
// reference table: writes go to every partition, reads may hit any one.
type WalletTypeRepository interface {
	Create(ctx context.Context, walletType *domain.WalletType) error
	GetByUid(ctx context.Context, walletTypeUid uuid.UUID) (*domain.WalletType, error)
	List(ctx context.Context) ([]domain.WalletType, error)
}

// TransactionSearchParams holds filter + pagination for transaction search.
// UserUid is mandatory: it pins the query to a single partition.
type TransactionSearchParams struct {
	UserUid   uuid.UUID
	WalletUid *uuid.UUID
	Type      *domain.PaymentType
	Status    *domain.TransactionStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByUid(ctx context.Context, transactionUid uuid.UUID) (*domain.Transaction, error)
	// GetByUidForUpdate locks the transaction row for the duration of tx.
	GetByUidForUpdate(ctx context.Context, tx pgx.Tx, transactionUid uuid.UUID) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, transactionUid uuid.UUID, status domain.TransactionStatus, failureReason *string, modifiedAt time.Time) error
	Search(ctx context.Context, params TransactionSearchParams) ([]domain.Transaction, int64, error)
}

// DBTransactor begins a database transaction on the partition owning the
// given user's rows. All balance mutation and transaction persistence for one
// confirm or settlement step happen inside a single such transaction.
type DBTransactor interface {
	Begin(ctx context.Context, userUid uuid.UUID) (pgx.Tx, error)
}

// InitRequestCache is the ephemeral TTL-bound store bridging init and confirm.
// GetAndRemove is atomic per key: at most one caller wins a given request uid.
type InitRequestCache interface {
	// ExpiresAt computes the expiry for a request created at now.
	ExpiresAt(now time.Time) time.Time
	Put(request *domain.InitRequest)
	Get(requestUid uuid.UUID) (*domain.InitRequest, bool)
	// GetAndRemove deletes the entry regardless of outcome and returns
	// apperror.ErrRequestNotFound or apperror.ErrRequestExpired on failure.
	GetAndRemove(requestUid uuid.UUID) (*domain.InitRequest, error)
	Remove(requestUid uuid.UUID)
	Size() int
}

// EventPublisher emits settlement-request events produced by confirm.
type EventPublisher interface {
	PublishDepositRequested(ctx context.Context, event domain.DepositRequestedEvent) error
	PublishWithdrawalRequested(ctx context.Context, event domain.WithdrawalRequestedEvent) error
}

// EventDedupStore is a best-effort guard against reprocessing a settlement
// event after redelivery. Seen reports whether the event id was already
// recorded; MarkProcessed records it, returning true on first write within
// the TTL window. Markers are written only after the event was handled
// successfully, so a failed handler still gets its redelivery processed.
type EventDedupStore interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}
