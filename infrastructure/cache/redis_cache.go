package cache

import (
	"context"
	"errors"
	"time"

	"channel-gateway/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "channel-gateway:"

// RedisCache is a shared store backed by Redis; expiry is delegated to Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient creates a client and pings it. A nil client is returned when
// Redis is unreachable so callers can run with the in-memory tier only.
func NewRedisClient(ctx context.Context, addr, username, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get treats every Redis failure as a miss.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if r.client == nil {
		return nil, false
	}
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Redis get failed")
		}
		return nil, false
	}
	return data, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if r.client == nil {
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Redis set failed")
	}
}
