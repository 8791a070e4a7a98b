package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Transactor implements ports.DBTransactor: it begins database transactions
// on the partition owning the given user's rows.
type Transactor struct {
	shards *ShardSet
}

// NewTransactor creates a new Transactor over the shard set.
func NewTransactor(shards *ShardSet) *Transactor {
	return &Transactor{shards: shards}
}

// Begin starts a database transaction on the user's partition.
func (t *Transactor) Begin(ctx context.Context, userUid uuid.UUID) (pgx.Tx, error) {
	return t.shards.ForUser(userUid).Begin(ctx)
}
