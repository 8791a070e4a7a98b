// Package cache holds the ephemeral init-request store bridging the init and
// confirm phases. Entries live in process memory only: losing them on restart
// is an accepted consistency boundary, clients simply re-init.
package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const bucketCount = 16

type bucket struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*domain.InitRequest
}

// InitRequestCache is a TTL-bound keyed store with per-key atomic
// retrieve-and-delete. Keys are spread over independent buckets so operations
// on distinct request uids do not contend.
type InitRequestCache struct {
	buckets [bucketCount]*bucket
	ttl     time.Duration
	log     zerolog.Logger
}

// NewInitRequestCache creates a cache whose entries expire after ttl.
func NewInitRequestCache(ttl time.Duration, log zerolog.Logger) *InitRequestCache {
	c := &InitRequestCache{ttl: ttl, log: log}
	for i := range c.buckets {
		c.buckets[i] = &bucket{entries: make(map[uuid.UUID]*domain.InitRequest)}
	}
	return c
}

func (c *InitRequestCache) bucketFor(requestUid uuid.UUID) *bucket {
	h := fnv.New32a()
	h.Write(requestUid[:]) //nolint:errcheck
	return c.buckets[h.Sum32()%bucketCount]
}

// ExpiresAt computes the expiry for a request created now.
func (c *InitRequestCache) ExpiresAt(now time.Time) time.Time {
	return now.Add(c.ttl)
}

// Put stores the request by its uid, overwriting any prior entry. Request
// uids are generated, so overwrites should not occur in practice.
func (c *InitRequestCache) Put(request *domain.InitRequest) {
	b := c.bucketFor(request.RequestUid)
	b.mu.Lock()
	b.entries[request.RequestUid] = request
	b.mu.Unlock()

	c.log.Debug().
		Str("request_uid", request.RequestUid.String()).
		Time("expires_at", request.ExpiresAt).
		Msg("stored init request")
}

// Get returns the request unless absent or expired. Expired entries are
// evicted on read and reported as absent.
func (c *InitRequestCache) Get(requestUid uuid.UUID) (*domain.InitRequest, bool) {
	b := c.bucketFor(requestUid)
	b.mu.Lock()
	defer b.mu.Unlock()

	request, ok := b.entries[requestUid]
	if !ok {
		return nil, false
	}
	if request.IsExpired() {
		delete(b.entries, requestUid)
		return nil, false
	}
	return request, true
}

// GetAndRemove atomically retrieves and deletes the request. The entry is
// deleted even when expired, so at most one caller can ever confirm a given
// request uid.
func (c *InitRequestCache) GetAndRemove(requestUid uuid.UUID) (*domain.InitRequest, error) {
	b := c.bucketFor(requestUid)
	b.mu.Lock()
	request, ok := b.entries[requestUid]
	if ok {
		delete(b.entries, requestUid)
	}
	b.mu.Unlock()

	if !ok {
		return nil, apperror.ErrRequestNotFound(requestUid.String())
	}
	if request.IsExpired() {
		return nil, apperror.ErrRequestExpired(requestUid.String())
	}
	return request, nil
}

// Remove deletes the entry if present. Removing an absent key is a no-op.
func (c *InitRequestCache) Remove(requestUid uuid.UUID) {
	b := c.bucketFor(requestUid)
	b.mu.Lock()
	delete(b.entries, requestUid)
	b.mu.Unlock()
}

// Size returns the number of cached entries, expired ones included.
func (c *InitRequestCache) Size() int {
	total := 0
	for _, b := range c.buckets {
		b.mu.Lock()
		total += len(b.entries)
		b.mu.Unlock()
	}
	return total
}

// Sweep evicts all expired entries and returns how many were removed.
func (c *InitRequestCache) Sweep() int {
	removed := 0
	for _, b := range c.buckets {
		b.mu.Lock()
		for uid, request := range b.entries {
			if request.IsExpired() {
				delete(b.entries, uid)
				removed++
			}
		}
		b.mu.Unlock()
	}
	if removed > 0 {
		c.log.Info().Int("removed", removed).Msg("swept expired init requests")
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until ctx is cancelled. The
// returned channel closes when the sweeper goroutine has exited.
func (c *InitRequestCache) StartSweeper(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep()
			}
		}
	}()
	return done
}
