package postgres

import (
	"context"
	"fmt"
)

// HealthCheck implements ports.HealthChecker across every partition.
type HealthCheck struct {
	shards *ShardSet
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(shards *ShardSet) *HealthCheck {
	return &HealthCheck{shards: shards}
}

// Ping checks connectivity of every partition; any unreachable partition
// fails the check.
func (h *HealthCheck) Ping(ctx context.Context) error {
	for i, pool := range h.shards.All() {
		if _, err := pool.Exec(ctx, "SELECT 1"); err != nil {
			return fmt.Errorf("partition %d: %w", i, err)
		}
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
