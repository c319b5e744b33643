// internal/refdata/redis_store.go
//
// Redis-backed SnapshotStore.
//
// Context
// -------
// Several web processes behind one balancer would otherwise each fetch the
// four collections from the backend once per TTL.  The loader consults the
// store first and writes to it after every successful source fetch, so one
// fetch serves the whole fleet.
//
// The snapshot is stored as one JSON document under a single key; readers
// therefore always see a consistent set of the four collections.

package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key used when RedisStore.Key is empty.
const DefaultRedisKey = "seoroute:refdata:snapshot"

// RedisStore implements SnapshotStore.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOptions configures NewRedisStore.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration // expiry of the stored document; 0 keeps it
}

// NewRedisStore dials lazily; the first Get or Put surfaces connection
// errors.
func NewRedisStore(opts RedisOptions) *RedisStore {
	key := opts.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
		key: key,
		ttl: opts.TTL,
	}
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get returns the stored snapshot or ErrStoreMiss.
func (s *RedisStore) Get(ctx context.Context) (*Snapshot, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrStoreMiss
	}
	if err != nil {
		return nil, fmt.Errorf("refdata: redis get: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("refdata: decode stored snapshot: %w", err)
	}
	return &snap, nil
}

// Put stores s, replacing any previous document.
func (s *RedisStore) Put(ctx context.Context, snap *Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("refdata: encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("refdata: redis set: %w", err)
	}
	return nil
}
