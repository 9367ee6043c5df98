package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCacheWithClient(client, ttl)
	t.Cleanup(c.Stop)

	return c, mr
}

func sampleResult() model.EstimationResult {
	return model.EstimationResult{
		ComplexityScore: 4,
		MassG:           16.37,
		CostUSD:         0.327,
		PrintTimeHours:  1.32,
		RecommendedSettings: model.RecommendedSettings{
			LayerHeightMm:    0.20,
			InfillPercent:    20,
			SupportsRequired: true,
		},
	}
}

func TestRedisCache_GetSet(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Minute)

	_, ok := c.Get(42)
	assert.False(t, ok)

	c.Set(42, sampleResult())

	got, ok := c.Get(42)
	require.True(t, ok)
	assert.Equal(t, sampleResult(), got)
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)

	c.Set(42, sampleResult())

	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(42)
	assert.False(t, ok)
}

func TestRedisCache_Invalidate(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Minute)

	c.Set(1, sampleResult())
	c.Set(2, sampleResult())

	c.Invalidate(1)

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
}

func TestRedisCache_ClearOnlyTouchesOwnPrefix(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)

	c.Set(1, sampleResult())
	c.Set(2, sampleResult())
	require.NoError(t, mr.Set("unrelated:key", "keep"))

	c.Clear()

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.False(t, ok)

	val, err := mr.Get("unrelated:key")
	require.NoError(t, err)
	assert.Equal(t, "keep", val)
}

func TestRedisCache_UndecodableValueIsAMiss(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)

	require.NoError(t, mr.Set(redisKey(7), "not json"))

	_, ok := c.Get(7)
	assert.False(t, ok)
}

func TestRedisCache_Ping(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)

	require.NoError(t, c.Ping(context.Background()))

	mr.Close()

	assert.Error(t, c.Ping(context.Background()))
}
