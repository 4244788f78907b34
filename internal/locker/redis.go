package locker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/calai/internal/error_values"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL  = 15 * time.Second
	defaultLockPoll = 50 * time.Millisecond
)

// Deletes the key only if it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares locks between API replicas. A lock expires after ttl even if
// its holder dies without releasing it.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	poll   time.Duration
}

type RedisOption func(*RedisLocker)

func WithTTL(ttl time.Duration) RedisOption {
	return func(rl *RedisLocker) {
		rl.ttl = ttl
	}
}

func WithPollInterval(d time.Duration) RedisOption {
	return func(rl *RedisLocker) {
		rl.poll = d
	}
}

func NewRedisLocker(client redis.UniversalClient, prefix string, opts ...RedisOption) *RedisLocker {
	rl := &RedisLocker{
		client: client,
		prefix: prefix,
		ttl:    defaultLockTTL,
		poll:   defaultLockPoll,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

func (rl *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	fullKey := rl.prefix + key
	token := uuid.NewString()
	ticker := time.NewTicker(rl.poll)
	defer ticker.Stop()
	for {
		ok, err := rl.client.SetNX(ctx, fullKey, token, rl.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.Join(errorvalues.ErrLockNotAcquired, ctx.Err())
			}
			return nil, errors.New("acquiring redis lock error: " + err.Error())
		}
		if ok {
			return rl.releaser(fullKey, token), nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, errors.Join(errorvalues.ErrLockNotAcquired, ctx.Err())
		}
	}
}

func (rl *RedisLocker) releaser(key, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's ctx may already be cancelled.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*2)
			defer cancel()
			if err := releaseScript.Run(ctx, rl.client, []string{key}, token).Err(); err != nil {
				slog.Warn("releasing redis lock", slog.String("key", key), slog.String("error", err.Error()))
			}
		})
	}
}
