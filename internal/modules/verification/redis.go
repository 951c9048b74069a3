package verification

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeKeyPrefix = "verification:code:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a code store backed by Redis. TTL-based expiry and
// key-per-email writes give the supersede-on-resend and expire-if-unused
// behavior without any sweeper.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func codeKey(email string) string { return codeKeyPrefix + email }

func (s *redisStore) Put(ctx context.Context, email string, code int, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, email string) (int, bool, error) {
	val, err := s.client.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load verification code: %w", err)
	}
	code, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("malformed verification code %q: %w", val, err)
	}
	return code, true, nil
}

func (s *redisStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, codeKey(email)).Err(); err != nil {
		return fmt.Errorf("delete verification code: %w", err)
	}
	return nil
}
