package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"oasis/config"
	"oasis/metrics"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// DefaultCacheTTL bounds the staleness of cached reads; accepted
// submissions also invalidate affected keys eagerly.
const DefaultCacheTTL = 30 * time.Second

// InitRedis connects the cache client and verifies the connection
func InitRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
}

// GetFromCache reads a JSON value from the cache into dest, reporting whether the key was present
func GetFromCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if RDB == nil {
		return false, nil
	}

	data, err := RDB.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return false, nil
	}
	if err != nil {
		metrics.CacheMisses.Inc()
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	metrics.CacheHits.Inc()
	return true, nil
}

// SetToCache stores a JSON-encoded value under key with the default TTL
func SetToCache(ctx context.Context, key string, value interface{}) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RDB.Set(ctx, key, data, DefaultCacheTTL).Err()
}

// InvalidateCachePattern removes every key matching the given pattern
func InvalidateCachePattern(ctx context.Context, pattern string) error {
	if RDB == nil {
		return nil
	}

	keys, err := RDB.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return RDB.Del(ctx, keys...).Err()
}
