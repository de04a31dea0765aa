package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loanbook-backend/internal/config"
)

var ErrRedisDisabled = errors.New("redis disabled: REDIS_ADDR is empty")

const pingTimeout = 3 * time.Second

// OpenRedis connects to cfg.RedisAddr and pings once. Callers treat any
// error as "run without cache and idempotency".
func OpenRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, ErrRedisDisabled
	}
	r := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		DB:          cfg.RedisDB,
		DialTimeout: pingTimeout,
	})
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.RedisAddr, err)
	}
	return r, nil
}
