package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `uid, user_uid, wallet_uid, target_wallet_uid, amount, fee, type, status, failure_reason, payment_method_id, created_at, modified_at`

// TransactionRepo implements ports.TransactionRepository. Transactions are
// partitioned by user_uid alongside the wallets they touch.
type TransactionRepo struct {
	shards *ShardSet
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(shards *ShardSet) *TransactionRepo {
	return &TransactionRepo{shards: shards}
}

// Create inserts a new transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := fmt.Sprintf(`INSERT INTO transactions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`, transactionColumns)

	_, err := tx.Exec(ctx, query,
		t.Uid, t.UserUid, t.WalletUid, t.TargetWalletUid,
		t.Amount, t.Fee, t.Type, t.Status,
		t.FailureReason, t.PaymentMethodID, t.CreatedAt, t.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByUid fetches a transaction by uuid, scattering across partitions.
func (r *TransactionRepo) GetByUid(ctx context.Context, transactionUid uuid.UUID) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE uid = $1`, transactionColumns)

	for _, pool := range r.shards.All() {
		t, err := scanTransaction(pool.QueryRow(ctx, query, transactionUid))
		if err != nil {
			return nil, fmt.Errorf("get transaction by uid: %w", err)
		}
		if t != nil {
			return t, nil
		}
	}
	return nil, nil
}

// GetByUidForUpdate fetches a transaction with pessimistic locking. This MUST
// be called within a transaction on the owner's partition.
func (r *TransactionRepo) GetByUidForUpdate(ctx context.Context, tx pgx.Tx, transactionUid uuid.UUID) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE uid = $1 FOR UPDATE`, transactionColumns)

	t, err := scanTransaction(tx.QueryRow(ctx, query, transactionUid))
	if err != nil {
		return nil, fmt.Errorf("get transaction for update: %w", err)
	}
	return t, nil
}

// UpdateStatus moves a transaction to a terminal status within a database
// transaction.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, transactionUid uuid.UUID, status domain.TransactionStatus, failureReason *string, modifiedAt time.Time) error {
	query := `UPDATE transactions SET status = $1, failure_reason = $2, modified_at = $3 WHERE uid = $4`

	tag, err := tx.Exec(ctx, query, status, failureReason, modifiedAt, transactionUid)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", transactionUid)
	}
	return nil
}

// Search fetches transactions with filtering and pagination. UserUid pins the
// query to a single partition.
func (r *TransactionRepo) Search(ctx context.Context, params ports.TransactionSearchParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("user_uid = $%d", argIdx))
	args = append(args, params.UserUid)
	argIdx++

	if params.WalletUid != nil {
		conditions = append(conditions, fmt.Sprintf("wallet_uid = $%d", argIdx))
		args = append(args, *params.WalletUid)
		argIdx++
	}
	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.DateFrom)
		argIdx++
	}
	if params.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.DateTo)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")
	pool := r.shards.ForUser(params.UserUid)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	offset := params.Page * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM transactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		transactionColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		if err := rows.Scan(
			&t.Uid, &t.UserUid, &t.WalletUid, &t.TargetWalletUid,
			&t.Amount, &t.Fee, &t.Type, &t.Status,
			&t.FailureReason, &t.PaymentMethodID, &t.CreatedAt, &t.ModifiedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.Uid, &t.UserUid, &t.WalletUid, &t.TargetWalletUid,
		&t.Amount, &t.Fee, &t.Type, &t.Status,
		&t.FailureReason, &t.PaymentMethodID, &t.CreatedAt, &t.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
