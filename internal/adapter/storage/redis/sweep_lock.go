package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SweepLock implements ports.SweepLock with a Redis SETNX lock.
// The aggregation sweep must never run concurrently with itself; the TTL
// bounds how long a crashed runner can hold the lock.
type SweepLock struct {
	client *goredis.Client
	key    string
	token  string
}

// NewSweepLock creates a Redis-backed sweep lock. token identifies this
// process so a runner only ever releases its own lock.
func NewSweepLock(client *goredis.Client, token string) *SweepLock {
	return &SweepLock{
		client: client,
		key:    "settlement:sweep:lock",
		token:  token,
	}
}

// Acquire attempts to take the lock. Returns false when another sweep holds it.
func (l *SweepLock) Acquire(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, l.token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis sweep lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock if this process still holds it. A lock that expired
// and was re-acquired by someone else is left alone.
func (l *SweepLock) Release(ctx context.Context) error {
	const script = `if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end`

	if err := l.client.Eval(ctx, script, []string{l.key}, l.token).Err(); err != nil {
		return fmt.Errorf("redis sweep lock release: %w", err)
	}
	return nil
}
