package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smartlogi/frontend/internal/core/domain"
	"github.com/smartlogi/frontend/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

var _ ports.TokenVault = (*RedisVault)(nil)

// RedisVault keeps the token in Redis for kiosk setups where several
// thin terminals share one operator session. No TTL is set: expiry is a
// property of the token itself and enforced by the token service.
type RedisVault struct {
	client *redis.Client
	key    string
}

func NewRedisVault(client *redis.Client, key string) *RedisVault {
	return &RedisVault{client: client, key: key}
}

func (v *RedisVault) Load(ctx context.Context) (string, error) {
	raw, err := v.client.Get(ctx, v.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoToken
		}
		return "", fmt.Errorf("load token: %w", err)
	}
	if raw == "" {
		return "", domain.ErrNoToken
	}
	return raw, nil
}

func (v *RedisVault) Store(ctx context.Context, raw string) error {
	if err := v.client.Set(ctx, v.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (v *RedisVault) Clear(ctx context.Context) error {
	if err := v.client.Del(ctx, v.key).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
