package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

func testResult(mass float64) model.EstimationResult {
	return model.EstimationResult{
		ComplexityScore: 2,
		MassG:           mass,
		CostUSD:         mass * 0.02,
		PrintTimeHours:  1.5,
	}
}

func TestTTLCache_GetSet(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, testResult(16.37))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, testResult(16.37), got)

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 1, m.Size)
}

func TestTTLCache_Expiration(t *testing.T) {
	c := newTTLCache(10, 20*time.Millisecond)
	defer c.Stop()

	c.Set(1, testResult(1))

	_, ok := c.Get(1)
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestTTLCache_Eviction(t *testing.T) {
	c := newTTLCache(3, time.Minute)
	defer c.Stop()

	for i := uint64(1); i <= 3; i++ {
		c.Set(i, testResult(float64(i)))
	}

	// Touch key 1 so key 2 becomes the LRU entry.
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Set(4, testResult(4))

	_, ok = c.Get(2)
	assert.False(t, ok, "LRU entry should have been evicted")

	for _, key := range []uint64{1, 3, 4} {
		_, ok := c.Get(key)
		assert.True(t, ok, "key %d should survive eviction", key)
	}

	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_SetUpdatesExisting(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(1, testResult(1))
	c.Set(1, testResult(2))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, testResult(2), got)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(1, testResult(1))
	c.Set(2, testResult(2))

	c.Invalidate(1)

	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	for i := uint64(1); i <= 5; i++ {
		c.Set(i, testResult(float64(i)))
	}

	c.Clear()

	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(0), m.Misses)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := uint64(i % 50)
				c.Set(key, testResult(float64(key)))
				if got, ok := c.Get(key); ok {
					assert.Equal(t, float64(key), got.MassG, fmt.Sprintf("worker %d iteration %d", worker, i))
				}
			}
		}(worker)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 100)
}
