package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// keyPrefix namespaces estimate entries in a shared redis instance.
const keyPrefix = "kitforge:estimate:"

// opTimeout bounds each redis round trip so a slow cache never stalls
// an estimation request for long.
const opTimeout = 250 * time.Millisecond

// RedisCache is a redis-backed estimate cache for deployments where
// several service replicas should share one cache. Values are stored as
// JSON with the configured TTL; redis errors degrade to cache misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a redis-backed cache for the given address.
func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client, ttl: ttl}
}

// NewRedisCacheWithClient wraps an existing redis client. Useful for tests.
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Ping verifies the redis connection is healthy.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func redisKey(key uint64) string {
	return keyPrefix + strconv.FormatUint(key, 16)
}

// Get retrieves a cached estimate. Any redis or decode error is treated
// as a miss.
func (c *RedisCache) Get(key uint64) (model.EstimationResult, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		return model.EstimationResult{}, false
	}

	var result model.EstimationResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Warn().Err(err).Msg("Discarding undecodable cached estimate")
		return model.EstimationResult{}, false
	}
	return result, true
}

// Set stores an estimate with the configured TTL. Failures are logged
// and otherwise ignored; the cache is best-effort.
func (c *RedisCache) Set(key uint64, value model.EstimationResult) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to encode estimate for cache")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, redisKey(key), data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to store estimate in redis")
	}
}

// Invalidate removes a specific key from the cache.
func (c *RedisCache) Invalidate(key uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.client.Del(ctx, redisKey(key)).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate estimate in redis")
	}
}

// Clear removes all estimate entries. It scans by prefix so unrelated
// keys in a shared instance are untouched.
func (c *RedisCache) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Warn().Err(err).Str("key", iter.Val()).Msg("Failed to delete cached estimate")
		}
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to scan estimate keys in redis")
	}
}

// Stop closes the underlying redis client.
func (c *RedisCache) Stop() {
	if err := c.client.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close redis client")
	}
}
