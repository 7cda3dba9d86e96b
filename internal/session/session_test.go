package session

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(func() time.Time { return now })

	sess := Session{Username: "admin", CreatedAt: now, ExpiresAt: now.Add(30 * time.Minute)}
	require.NoError(t, s.Save(ctx, "tok", sess, 30*time.Minute))

	got, err := s.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	require.NoError(t, s.Delete(ctx, "tok"))
	_, err = s.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(func() time.Time { return now })

	require.NoError(t, s.Save(ctx, "old", Session{Username: "admin"}, time.Minute))

	now = now.Add(time.Minute)
	_, err := s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "other", Session{Username: "admin"}, time.Minute))
	assert.Len(t, s.items, 1)
}

func TestRedisStore_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client)

	_, err := s.Get(context.Background(), "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
