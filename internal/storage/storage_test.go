package storage

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	dsn := fmt.Sprintf("file:kv_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))
	return NewSQLStore(db)
}

// exerciseStore runs the contract every backend must satisfy.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "sess-a", "kizuna_data")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "sess-a", "kizuna_data", []byte(`{"partner1":"Ana"}`)))
	require.NoError(t, s.Set(ctx, "sess-a", "kizuna_plan", []byte("BASIC")))
	require.NoError(t, s.Set(ctx, "sess-b", "kizuna_plan", []byte("INFINITY")))

	v, err := s.Get(ctx, "sess-a", "kizuna_data")
	require.NoError(t, err)
	assert.Equal(t, `{"partner1":"Ana"}`, string(v))

	// overwrite is last-write-wins
	require.NoError(t, s.Set(ctx, "sess-a", "kizuna_plan", []byte("PREMIUM")))
	v, err = s.Get(ctx, "sess-a", "kizuna_plan")
	require.NoError(t, err)
	assert.Equal(t, "PREMIUM", string(v))

	// namespaces are isolated
	v, err = s.Get(ctx, "sess-b", "kizuna_plan")
	require.NoError(t, err)
	assert.Equal(t, "INFINITY", string(v))

	require.NoError(t, s.Delete(ctx, "sess-a", "kizuna_data"))
	_, err = s.Get(ctx, "sess-a", "kizuna_data")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLStore(t *testing.T) {
	exerciseStore(t, setupSQLStore(t))
}

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "kizuna:session:", ttl), mr
}

func TestRedisStore(t *testing.T) {
	s, _ := setupRedisStore(t, time.Minute)
	exerciseStore(t, s)
}

func TestRedisStore_ExpiresIdleSessions(t *testing.T) {
	s, mr := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "reader", "kizuna_data", []byte("{}")))
	require.NoError(t, s.Set(ctx, "idle", "kizuna_data", []byte("{}")))
	assert.Equal(t, time.Hour, mr.TTL("kizuna:session:reader"))

	mr.FastForward(45 * time.Minute)
	require.NoError(t, s.Touch(ctx, "reader"))
	mr.FastForward(30 * time.Minute)

	_, err := s.Get(ctx, "reader", "kizuna_data")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "idle", "kizuna_data")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLStore_EvictIdle(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	require.NoError(t, s.Set(ctx, "old", "kizuna_data", []byte("{}")))
	require.NoError(t, s.Set(ctx, "old", "kizuna_lang", []byte("pt")))
	require.NoError(t, s.Set(ctx, "active", "kizuna_lang", []byte("pt")))

	s.now = func() time.Time { return base.Add(48 * time.Hour) }
	require.NoError(t, s.Set(ctx, "active", "kizuna_data", []byte("{}")))

	n, err := s.EvictIdle(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(ctx, "old", "kizuna_lang")
	assert.ErrorIs(t, err, ErrNotFound)
	// an active namespace keeps its older keys too
	_, err = s.Get(ctx, "active", "kizuna_lang")
	assert.NoError(t, err)
}

func TestMemoryStore_EvictIdle(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	m.now = func() time.Time { return base }
	require.NoError(t, m.Set(ctx, "old", "kizuna_data", []byte("{}")))
	m.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, m.Set(ctx, "new", "kizuna_data", []byte("{}")))

	n, err := m.EvictIdle(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCompressing_RoundTrip(t *testing.T) {
	inner := NewMemoryStore()
	c, err := NewCompressing(inner, 64)
	require.NoError(t, err)
	ctx := context.Background()

	small := []byte("BASIC")
	large := bytes.Repeat([]byte("data:image/png;base64,AAAA"), 200)

	require.NoError(t, c.Set(ctx, "s", "small", small))
	require.NoError(t, c.Set(ctx, "s", "large", large))

	raw, err := inner.Get(ctx, "s", "small")
	require.NoError(t, err)
	assert.Equal(t, encodingRaw, raw[0])

	raw, err = inner.Get(ctx, "s", "large")
	require.NoError(t, err)
	assert.Equal(t, encodingZstd, raw[0])
	assert.Less(t, len(raw), len(large))

	got, err := c.Get(ctx, "s", "small")
	require.NoError(t, err)
	assert.Equal(t, small, got)

	got, err = c.Get(ctx, "s", "large")
	require.NoError(t, err)
	assert.Equal(t, large, got)
}

func TestCompressing_CorruptValue(t *testing.T) {
	inner := NewMemoryStore()
	c, err := NewCompressing(inner, 64)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, inner.Set(ctx, "s", "z", []byte{encodingZstd, 'n', 'o', 'p', 'e'}))
	_, err = c.Get(ctx, "s", "z")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCompressing_ReadsValuesWrittenWithoutHeader(t *testing.T) {
	inner := setupSQLStore(t)
	ctx := context.Background()

	// written by a deployment that ran without compression
	require.NoError(t, inner.Set(ctx, "s", "kizuna_data", []byte(`{"partner1":"Ana"}`)))
	require.NoError(t, inner.Set(ctx, "s", "kizuna_plan", []byte("PREMIUM")))

	c, err := NewCompressing(inner, 64)
	require.NoError(t, err)

	got, err := c.Get(ctx, "s", "kizuna_data")
	require.NoError(t, err)
	assert.Equal(t, `{"partner1":"Ana"}`, string(got))

	got, err = c.Get(ctx, "s", "kizuna_plan")
	require.NoError(t, err)
	assert.Equal(t, "PREMIUM", string(got))

	// the next write is framed
	require.NoError(t, c.Set(ctx, "s", "kizuna_plan", []byte("BASIC")))
	raw, err := inner.Get(ctx, "s", "kizuna_plan")
	require.NoError(t, err)
	assert.Equal(t, encodingRaw, raw[0])
}

func TestSQLStore_TouchKeepsNamespaceActive(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	require.NoError(t, s.Set(ctx, "reader", "kizuna_data", []byte("{}")))
	require.NoError(t, s.Set(ctx, "reader", "kizuna_plan", []byte("BASIC")))
	require.NoError(t, s.Set(ctx, "gone", "kizuna_data", []byte("{}")))

	s.now = func() time.Time { return base.Add(48 * time.Hour) }
	require.NoError(t, s.Touch(ctx, "reader"))
	// touching an unknown namespace creates nothing
	require.NoError(t, s.Touch(ctx, "nobody"))

	n, err := s.EvictIdle(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(ctx, "reader", "kizuna_plan")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "nobody", "kizuna_data")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompressing_TouchReachesBackend(t *testing.T) {
	inner := NewMemoryStore()
	c, err := NewCompressing(inner, 64)
	require.NoError(t, err)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	inner.now = func() time.Time { return base }
	require.NoError(t, c.Set(ctx, "reader", "kizuna_data", []byte("{}")))
	inner.now = func() time.Time { return base.Add(time.Hour) }
	require.NoError(t, c.Touch(ctx, "reader"))

	n, err := c.EvictIdle(ctx, base.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
