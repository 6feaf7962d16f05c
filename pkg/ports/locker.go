package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// Locker guards a shared backend so that a single console operates on it.
// Two consoles writing one Redis journal would interleave unrelated sessions.
type Locker interface {
	// Lock acquires the lock for key. It blocks until the lock is acquired or
	// ctx is done. The returned UnlockFunc MUST be called to release it.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
