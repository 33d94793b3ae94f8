package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const codeKeyPrefix = "verification-code:"

// RedisCodeStore keeps pending codes in Redis with a server-side TTL, for
// deployments running more than one API process. Semantics match the
// in-memory store; expiry purging is handled by Redis itself.
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(addr string) *RedisCodeStore {
	return &RedisCodeStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisCodeStore) Store(ctx context.Context, phone, code string, ttl time.Duration) error {
	return r.client.Set(ctx, codeKeyPrefix+phone, code, ttl).Err()
}

func (r *RedisCodeStore) Check(ctx context.Context, phone, code string) (bool, error) {
	key := codeKeyPrefix + phone

	stored, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if stored != code {
		return false, nil
	}

	// single use
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return false, err
	}
	return true, nil
}
