package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "checkout:idem:"

// releaseLock deletes the key only while it still holds our token, so a
// request whose lock already expired cannot drop the next holder's lock.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisIdempotencyLocker holds a short-lived lock per idempotency key so two
// identical retries in flight at once do not both reach the database.
type RedisIdempotencyLocker struct {
	rdb      *redis.Client
	ttl      time.Duration
	newToken func() string
}

func NewRedisIdempotencyLocker(rdb *redis.Client, ttl time.Duration) *RedisIdempotencyLocker {
	return &RedisIdempotencyLocker{rdb: rdb, ttl: ttl, newToken: uuid.NewString}
}

// Acquire always succeeds when no Redis client is configured.
func (l *RedisIdempotencyLocker) Acquire(ctx context.Context, key string) (string, bool, error) {
	if l == nil || l.rdb == nil {
		return "", true, nil
	}

	token := l.newToken()
	ok, err := l.rdb.SetNX(ctx, idempotencyKeyPrefix+key, token, l.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (l *RedisIdempotencyLocker) Release(ctx context.Context, key, token string) error {
	if l == nil || l.rdb == nil || token == "" {
		return nil
	}
	return releaseLock.Run(ctx, l.rdb, []string{idempotencyKeyPrefix + key}, token).Err()
}
