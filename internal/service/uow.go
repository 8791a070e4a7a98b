package service

import (
	"context"

	"wallet-transaction-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var decimalZero = decimal.Zero

type txHandle = pgx.Tx

// runInUserTx runs fn inside a database transaction on the partition owning
// userUid, committing on nil and rolling back otherwise.
func runInUserTx(ctx context.Context, transactor ports.DBTransactor, userUid uuid.UUID, fn func(tx txHandle) error) error {
	dbTx, err := transactor.Begin(ctx, userUid)
	if err != nil {
		return err
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(dbTx); err != nil {
		return err
	}
	return dbTx.Commit(ctx)
}

func (s *TransactionServiceImpl) inUserTx(ctx context.Context, userUid uuid.UUID, fn func(tx txHandle) error) error {
	return runInUserTx(ctx, s.transactor, userUid, fn)
}
