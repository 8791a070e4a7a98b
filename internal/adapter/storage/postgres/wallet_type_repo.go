package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletTypeColumns = `uid, name, currency_code, status, created_at, modified_at`

// WalletTypeRepo implements ports.WalletTypeRepository. wallet_types is a
// broadcast table: every partition holds an identical copy, so writes fan out
// to all pools and reads hit the first one.
type WalletTypeRepo struct {
	shards *ShardSet
}

// NewWalletTypeRepo creates a new WalletTypeRepo.
func NewWalletTypeRepo(shards *ShardSet) *WalletTypeRepo {
	return &WalletTypeRepo{shards: shards}
}

// Create inserts the wallet type on every partition. A failure partway
// through leaves earlier partitions written; the insert is idempotent by
// primary key, so re-running the create converges.
func (r *WalletTypeRepo) Create(ctx context.Context, wt *domain.WalletType) error {
	query := fmt.Sprintf(`INSERT INTO wallet_types (%s) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (uid) DO NOTHING`, walletTypeColumns)

	for i, pool := range r.shards.All() {
		_, err := pool.Exec(ctx, query,
			wt.Uid, wt.Name, wt.CurrencyCode, wt.Status, wt.CreatedAt, wt.ModifiedAt,
		)
		if err != nil {
			return fmt.Errorf("insert wallet type on partition %d: %w", i, err)
		}
	}
	return nil
}

// GetByUid fetches a wallet type from the first partition.
func (r *WalletTypeRepo) GetByUid(ctx context.Context, walletTypeUid uuid.UUID) (*domain.WalletType, error) {
	query := fmt.Sprintf(`SELECT %s FROM wallet_types WHERE uid = $1`, walletTypeColumns)

	wt := &domain.WalletType{}
	err := r.shards.All()[0].QueryRow(ctx, query, walletTypeUid).Scan(
		&wt.Uid, &wt.Name, &wt.CurrencyCode, &wt.Status, &wt.CreatedAt, &wt.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet type by uid: %w", err)
	}
	return wt, nil
}

// List fetches the full wallet type catalog from the first partition.
func (r *WalletTypeRepo) List(ctx context.Context) ([]domain.WalletType, error) {
	query := fmt.Sprintf(`SELECT %s FROM wallet_types ORDER BY name`, walletTypeColumns)

	rows, err := r.shards.All()[0].Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallet types: %w", err)
	}
	defer rows.Close()

	var types []domain.WalletType
	for rows.Next() {
		wt := domain.WalletType{}
		if err := rows.Scan(
			&wt.Uid, &wt.Name, &wt.CurrencyCode, &wt.Status, &wt.CreatedAt, &wt.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wallet type row: %w", err)
		}
		types = append(types, wt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet type rows: %w", err)
	}
	return types, nil
}
