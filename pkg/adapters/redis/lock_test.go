package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/vending/pkg/adapters/redis"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocker(t *testing.T) (*redis.Locker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis.NewLocker(client, "vending:"), mr
}

func TestLocker_LockUnlock(t *testing.T) {
	l, mr := newLocker(t)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "console", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("vending:lock:console"))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("vending:lock:console"))
}

func TestLocker_Contention(t *testing.T) {
	l, _ := newLocker(t)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "console", 10*time.Second)
	require.NoError(t, err)
	defer unlock(ctx)

	short, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	_, err = l.Lock(short, "console", 10*time.Second)
	assert.ErrorIs(t, err, redis.ErrLockAcquire)
}

func TestLocker_UnlockKeepsForeignLock(t *testing.T) {
	l, mr := newLocker(t)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "console", time.Second)
	require.NoError(t, err)

	// Lease expired and another console took over.
	mr.FastForward(2 * time.Second)
	require.NoError(t, mr.Set("vending:lock:console", "someone-else"))

	require.NoError(t, unlock(ctx))
	got, err := mr.Get("vending:lock:console")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestJournal_LockerSharesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer client.Close()

	j := redis.NewFromClient(client, redis.WithPrefix("m1:"))
	unlock, err := j.Locker().Lock(context.Background(), "console", time.Minute)
	require.NoError(t, err)
	defer unlock(context.Background())

	assert.True(t, mr.Exists("m1:lock:console"))
}
