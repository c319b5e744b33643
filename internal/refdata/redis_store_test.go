package refdata

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to REDIS_ADDR (default localhost:6379) and skips
// the test when nothing answers.
func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	s := NewRedisStore(RedisOptions{
		Addr: addr,
		DB:   15,
		Key:  "seoroute:test:" + t.Name(),
		TTL:  time.Minute,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := s.Ping(ctx); err != nil {
		_ = s.Close()
		t.Skipf("redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() {
		_ = s.client.Del(context.Background(), s.key).Err()
		_ = s.Close()
	})
	return s
}

func TestRedisStore_MissThenRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrStoreMiss)

	src := sampleSource()
	snap := &Snapshot{
		Categories:    src.cats,
		Subcategories: src.subs,
		Countries:     src.ctrs,
		Cities:        src.cties,
		LoadedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Put(ctx, snap))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Counts(), got.Counts())
	assert.Equal(t, "Київ", got.Cities[0].NameUK)
	assert.EqualValues(t, 5, got.Subcategories[0].CategoryID)
	assert.True(t, snap.LoadedAt.Equal(got.LoadedAt))
}

func TestRedisStore_SharedAcrossLoaders(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := sampleSource()
	a := NewLoader(first, Options{TTL: time.Hour, Store: s})
	require.Len(t, a.Load(ctx).Categories, 2)

	second := sampleSource()
	b := NewLoader(second, Options{TTL: time.Hour, Store: s})
	require.Len(t, b.Load(ctx).Categories, 2)
	assert.EqualValues(t, 0, second.calls.Load(), "second process should read the shared snapshot")
}
