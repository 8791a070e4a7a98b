package postgres

import (
	"context"
	"fmt"

	"wallet-transaction-engine/internal/sharding"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Pool is the subset of pgxpool.Pool the repositories need. Satisfied by
// *pgxpool.Pool and by pgxmock in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ShardSet holds one connection pool per partition plus the router mapping
// user uids onto them. Repositories route through it: user-scoped queries hit
// exactly one pool, uid-only lookups scatter, reference-table writes
// broadcast.
type ShardSet struct {
	pools  []Pool
	router *sharding.Router
}

// NewShardSet wires pools to the router. Pool order must match the partition
// order of the sharding config.
func NewShardSet(pools []Pool, router *sharding.Router) (*ShardSet, error) {
	if len(pools) != router.PartitionCount() {
		return nil, fmt.Errorf("postgres: %d pools for %d partitions", len(pools), router.PartitionCount())
	}
	return &ShardSet{pools: pools, router: router}, nil
}

// ForUser returns the pool owning the user's rows.
func (s *ShardSet) ForUser(userUid uuid.UUID) Pool {
	return s.pools[s.router.ShardFor(userUid)]
}

// All returns every pool in partition order.
func (s *ShardSet) All() []Pool {
	return s.pools
}

// NewShardPools opens one pgx connection pool per configured partition and
// verifies connectivity.
func NewShardPools(ctx context.Context, cfg sharding.Config, log zerolog.Logger) ([]Pool, func(), error) {
	pools := make([]Pool, 0, len(cfg.Partitions))
	raw := make([]*pgxpool.Pool, 0, len(cfg.Partitions))
	closeAll := func() {
		for _, p := range raw {
			p.Close()
		}
	}

	for _, part := range cfg.Partitions {
		poolCfg, err := pgxpool.ParseConfig(part.DSN)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("parsing dsn for partition %s: %w", part.Name, err)
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("creating pool for partition %s: %w", part.Name, err)
		}
		raw = append(raw, pool)

		if err := pool.Ping(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("pinging partition %s: %w", part.Name, err)
		}

		log.Info().
			Str("partition", part.Name).
			Msg("PostgreSQL connection pool established")

		pools = append(pools, pool)
	}

	return pools, closeAll, nil
}
