package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"judge/config"
	"judge/metrics"
)

var Redis *redis.Client

// InitRedis connects the cache client. The cache is best-effort: a missing or
// unreachable redis only disables caching, it never fails a request.
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable, caching disabled: ", err)
	}
}

// GetFromCache fetches a JSON value into dest and reports whether it was found
func GetFromCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if Redis == nil {
		return false, nil
	}
	payload, err := Redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		metrics.CacheMisses.Inc()
		return false, nil
	}
	if err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}
	metrics.CacheHits.Inc()
	return true, nil
}

// SetToCache stores a JSON value under key with the given TTL
func SetToCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if Redis == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(ctx, key, payload, ttl).Err()
}

// DeleteFromCache drops a cached value, typically to invalidate after a write
func DeleteFromCache(ctx context.Context, key string) error {
	if Redis == nil {
		return nil
	}
	return Redis.Del(ctx, key).Err()
}
