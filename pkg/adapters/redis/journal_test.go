package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/vending/pkg/adapters/redis"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisJournal_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunJournalContract(t, redis.NewFromClient(client))
}

func TestRedisJournal_Prefix(t *testing.T) {
	mr, client := newClient(t)
	j := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, j.Ping(ctx))
	require.NoError(t, j.Record(ctx, domain.Entry{ID: "1", Kind: domain.EntryReset}))

	assert.True(t, mr.Exists("custom:app:journal"), "Expected key with custom prefix to exist")
	assert.False(t, mr.Exists("vending:journal"))
}

func TestRedisJournal_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	j := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, j.Record(ctx, domain.Entry{ID: "1", Kind: domain.EntryRefill, Item: "sprite", Quantity: 5}))

	entries, err := j.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	mr.FastForward(2 * time.Second)

	entries, err = j.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRedisJournal_CorruptEntry(t *testing.T) {
	mr, client := newClient(t)
	j := redis.NewFromClient(client)

	_, err := mr.Push("vending:journal", "{not json")
	require.NoError(t, err)

	_, err = j.List(context.Background())
	assert.Error(t, err)
}
