package database

import (
	"context"
	"errors"
	"fmt"
	"time"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps keys in redis under a configurable prefix
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *gecho.Logger
}

func NewRedisStore(ctx context.Context, cfg *structs.RedisConfig, logger *gecho.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,

		// Connection pool settings
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,

		// Timeouts
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,

		// Retry settings
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: cfg.MinRetryBackoff,
		MaxRetryBackoff: cfg.MaxRetryBackoff,
	})

	store := &RedisStore{client: client, prefix: cfg.KeyPrefix, logger: logger}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return store, nil
}

func (r *RedisStore) key(k string) string {
	return r.prefix + k
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := WithRetry(ctx, func() error {
		val, err := r.client.Get(ctx, r.key(key)).Result()
		if errors.Is(err, redis.Nil) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		value, found = val, true
		return nil
	})
	if err != nil {
		r.logger.Warn("Redis get failed", gecho.Field("key", key), gecho.Field("error", err))
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}

	return value, found, nil
}

func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	err := WithRetry(ctx, func() error {
		return r.client.Set(ctx, r.key(key), value, 0).Err()
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	err := WithRetry(ctx, func() error {
		return r.client.Del(ctx, r.key(key)).Err()
	})
	if err != nil {
		return fmt.Errorf("redis remove %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Backend() structs.StorageBackend { return structs.StorageRedis }
