package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `w.uid, w.name, w.user_uid, w.wallet_type_uid, wt.currency_code, w.status, w.balance, w.created_at, w.modified_at`

const walletJoin = `FROM wallets w JOIN wallet_types wt ON wt.uid = w.wallet_type_uid`

// WalletRepo implements ports.WalletRepository over the shard set. Wallets
// are partitioned by user_uid; wallet_types is broadcast, so the currency
// join is always shard-local.
type WalletRepo struct {
	shards *ShardSet
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(shards *ShardSet) *WalletRepo {
	return &WalletRepo{shards: shards}
}

// Create inserts a new wallet on its owner's partition.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (uid, name, user_uid, wallet_type_uid, status, balance, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.shards.ForUser(w.UserUid).Exec(ctx, query,
		w.Uid, w.Name, w.UserUid, w.WalletTypeUid,
		w.Status, w.Balance, w.CreatedAt, w.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUid fetches a wallet by its uuid. The owner is unknown, so the lookup
// scatters across partitions and returns the first hit.
func (r *WalletRepo) GetByUid(ctx context.Context, walletUid uuid.UUID) (*domain.Wallet, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE w.uid = $1`, walletColumns, walletJoin)

	for _, pool := range r.shards.All() {
		w, err := scanWallet(pool.QueryRow(ctx, query, walletUid))
		if err != nil {
			return nil, fmt.Errorf("get wallet by uid: %w", err)
		}
		if w != nil {
			return w, nil
		}
	}
	return nil, nil
}

// GetByUser fetches all wallets of a user from their partition.
func (r *WalletRepo) GetByUser(ctx context.Context, userUid uuid.UUID) ([]domain.Wallet, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE w.user_uid = $1 ORDER BY w.created_at`, walletColumns, walletJoin)

	rows, err := r.shards.ForUser(userUid).Query(ctx, query, userUid)
	if err != nil {
		return nil, fmt.Errorf("list wallets by user: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w := domain.Wallet{}
		if err := rows.Scan(
			&w.Uid, &w.Name, &w.UserUid, &w.WalletTypeUid, &w.CurrencyCode,
			&w.Status, &w.Balance, &w.CreatedAt, &w.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet rows: %w", err)
	}
	return wallets, nil
}

// ExistsByUserAndType reports whether the user already holds a wallet of the
// given type.
func (r *WalletRepo) ExistsByUserAndType(ctx context.Context, userUid, walletTypeUid uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wallets WHERE user_uid = $1 AND wallet_type_uid = $2)`

	var exists bool
	err := r.shards.ForUser(userUid).QueryRow(ctx, query, userUid, walletTypeUid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check wallet exists: %w", err)
	}
	return exists, nil
}

// GetForUpdate fetches a wallet with pessimistic locking. This MUST be called
// within a transaction on the wallet's own partition.
func (r *WalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, walletUid uuid.UUID) (*domain.Wallet, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE w.uid = $1 FOR UPDATE OF w`, walletColumns, walletJoin)

	w, err := scanWallet(tx.QueryRow(ctx, query, walletUid))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance persists a new balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletUid uuid.UUID, balance decimal.Decimal, modifiedAt time.Time) error {
	query := `UPDATE wallets SET balance = $1, modified_at = $2 WHERE uid = $3`

	tag, err := tx.Exec(ctx, query, balance, modifiedAt, walletUid)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletUid)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.Uid, &w.Name, &w.UserUid, &w.WalletTypeUid, &w.CurrencyCode,
		&w.Status, &w.Balance, &w.CreatedAt, &w.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
