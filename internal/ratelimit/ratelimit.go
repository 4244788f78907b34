// Package ratelimit implements a fixed-window request counter on Redis.
package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Increments the counter and returns it with the key's remaining ttl in ms.
// The expiry is set on the first hit and re-applied to a counter left without one.
var allowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
local ttl = redis.call("PTTL", KEYS[1])
if n == 1 or ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow counts one request against key. The window starts with the first request.
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := allowScript.Run(ctx, rl.client, []string{rl.prefix + key}, rl.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, errors.New("rate limit counter error: " + err.Error())
	}
	if len(res) != 2 {
		return Decision{}, errors.New("rate limit counter error: unexpected script reply")
	}
	count, ttl := res[0], time.Duration(res[1])*time.Millisecond
	if count > int64(rl.limit) {
		if ttl <= 0 {
			ttl = rl.window
		}
		return Decision{Allowed: false, RetryAfter: ttl}, nil
	}
	return Decision{Allowed: true, Remaining: rl.limit - int(count)}, nil
}
