// Package cache defines the estimate cache contract and backends.
package cache

import "github.com/kitforge/kitforge-service/internal/domain/model"

// Cache defines the interface for estimate cache operations. Keys are
// hashes of the canonical estimation input, so a hit is a bit-identical
// replay of a previous computation.
type Cache interface {
	Get(key uint64) (model.EstimationResult, bool)
	Set(key uint64, value model.EstimationResult)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
