package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/vending/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Journal implements ports.Journal on a Redis list.
type Journal struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Journal)

// WithTTL sets the expiration of the journal list, refreshed on every write.
func WithTTL(ttl time.Duration) Option {
	return func(j *Journal) {
		j.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(j *Journal) {
		j.prefix = prefix
	}
}

// New creates a new Redis journal with options.
func New(address, password string, db int, opts ...Option) *Journal {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		prefix: "vending:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

func (j *Journal) key() string {
	return j.prefix + "journal"
}

// Ping checks connectivity.
func (j *Journal) Ping(ctx context.Context) error {
	return j.client.Ping(ctx).Err()
}

// Record appends the entry as JSON.
func (j *Journal) Record(ctx context.Context, entry domain.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := j.client.TxPipeline()
	pipe.RPush(ctx, j.key(), data)
	if j.ttl > 0 {
		pipe.Expire(ctx, j.key(), j.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append to redis: %w", err)
	}
	return nil
}

// List returns all entries, oldest first.
func (j *Journal) List(ctx context.Context) ([]domain.Entry, error) {
	raw, err := j.client.LRange(ctx, j.key(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	entries := make([]domain.Entry, 0, len(raw))
	for _, item := range raw {
		var e domain.Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
