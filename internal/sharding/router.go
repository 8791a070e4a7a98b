package sharding

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// AlgorithmHashMod is the only supported sharding algorithm: a deterministic
// hash of the user uid modulo the partition count.
const AlgorithmHashMod = "hash_mod"

// PartitionConfig describes one backing store.
type PartitionConfig struct {
	Name string `mapstructure:"name"`
	DSN  string `mapstructure:"dsn"`
}

// Config is the declarative sharding rule set: N partitions, the routing
// algorithm, the tables partitioned by user_uid, and the reference tables
// replicated identically to every partition.
type Config struct {
	Partitions      []PartitionConfig `mapstructure:"partitions"`
	Algorithm       string            `mapstructure:"algorithm"`
	ShardedTables   []string          `mapstructure:"sharded_tables"`
	BroadcastTables []string          `mapstructure:"broadcast_tables"`
}

// Router maps a user uid to one of N partitions. The mapping is stable for
// the lifetime of the system; changing N requires a re-sharding migration.
type Router struct {
	partitionCount int
	broadcast      map[string]bool
	sharded        map[string]bool
}

// NewRouter validates the config and builds a router.
func NewRouter(cfg Config) (*Router, error) {
	if len(cfg.Partitions) == 0 {
		return nil, fmt.Errorf("sharding: at least one partition required")
	}
	if cfg.Algorithm != AlgorithmHashMod {
		return nil, fmt.Errorf("sharding: unsupported algorithm %q", cfg.Algorithm)
	}

	r := &Router{
		partitionCount: len(cfg.Partitions),
		broadcast:      make(map[string]bool, len(cfg.BroadcastTables)),
		sharded:        make(map[string]bool, len(cfg.ShardedTables)),
	}
	for _, t := range cfg.BroadcastTables {
		r.broadcast[t] = true
	}
	for _, t := range cfg.ShardedTables {
		if r.broadcast[t] {
			return nil, fmt.Errorf("sharding: table %q is both sharded and broadcast", t)
		}
		r.sharded[t] = true
	}
	return r, nil
}

// ShardFor returns the partition index for a user uid: FNV-1a over the raw
// uuid bytes, mod N.
func (r *Router) ShardFor(userUid uuid.UUID) int {
	h := fnv.New32a()
	h.Write(userUid[:]) //nolint:errcheck // fnv never fails
	return int(h.Sum32() % uint32(r.partitionCount))
}

// PartitionCount returns N.
func (r *Router) PartitionCount() int {
	return r.partitionCount
}

// IsBroadcast reports whether writes to the table must go to every partition.
func (r *Router) IsBroadcast(table string) bool {
	return r.broadcast[table]
}

// IsSharded reports whether the table is partitioned by user_uid.
func (r *Router) IsSharded(table string) bool {
	return r.sharded[table]
}
