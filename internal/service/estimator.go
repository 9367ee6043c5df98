package service

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/kitforge/kitforge-service/internal/domain/model"
	"github.com/kitforge/kitforge-service/internal/service/cache"
)

// Estimator defines the interface for the estimation pipeline.
type Estimator interface {
	// Estimate derives the complete engineering estimate for one part.
	Estimate(metrics model.MeshMetrics, materialName string, cfg model.PrintConfig) (model.EstimationResult, error)
}

// Option configures an EstimatorService.
type Option func(*EstimatorService)

// EstimatorService implements Estimator by composing the material
// catalog, complexity scorer, mass/cost estimator, print time estimator,
// and settings recommender. Every stage is pure in-memory arithmetic, so
// the service is safe for unlimited concurrent callers; the optional
// cache only replays previous results and never changes output.
type EstimatorService struct {
	catalog           *MaterialCatalog
	scorer            *ComplexityScorer
	massCost          *MassCostEstimator
	printTime         *PrintTimeEstimator
	settings          *SettingsRecommender
	defaultPrintSpeed float64
	cache             cache.Cache
}

// NewEstimatorService creates a new EstimatorService with the given options.
func NewEstimatorService(opts ...Option) *EstimatorService {
	s := &EstimatorService{
		catalog:           NewMaterialCatalog(),
		scorer:            NewComplexityScorer(),
		massCost:          NewMassCostEstimator(),
		printTime:         NewPrintTimeEstimator(),
		settings:          NewSettingsRecommender(),
		defaultPrintSpeed: DefaultPrintSpeedCm3PerHr,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithDefaultPrintSpeed sets the deposition rate assumed when a request
// does not specify one.
func WithDefaultPrintSpeed(speedCm3PerHr float64) Option {
	return func(s *EstimatorService) {
		if speedCm3PerHr > 0 {
			s.defaultPrintSpeed = speedCm3PerHr
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *EstimatorService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *EstimatorService) {
		s.cache = c
	}
}

// Catalog returns the material catalog the pipeline estimates against.
func (s *EstimatorService) Catalog() *MaterialCatalog {
	return s.catalog
}

// InvalidateCache clears the estimate cache.
func (s *EstimatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Estimate runs the pipeline: catalog lookup, complexity scoring,
// mass/cost and print time estimation, then settings recommendation.
// The first stage error aborts the run with no partial result. The
// pipeline is a pure function of its inputs plus the static catalog, so
// identical arguments always yield bit-identical results.
func (s *EstimatorService) Estimate(metrics model.MeshMetrics, materialName string, cfg model.PrintConfig) (model.EstimationResult, error) {
	material, err := s.catalog.Lookup(materialName)
	if err != nil {
		return model.EstimationResult{}, err
	}

	printSpeed := cfg.PrintSpeedCm3PerHr
	if printSpeed == 0 {
		printSpeed = s.defaultPrintSpeed
	}

	var key uint64
	if s.cache != nil {
		key = estimateKey(metrics, materialName, cfg.InfillFraction, printSpeed)
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	score := s.scorer.Score(metrics)

	massG, costUSD, err := s.massCost.Estimate(metrics.VolumeCm3, material, cfg.InfillFraction)
	if err != nil {
		return model.EstimationResult{}, err
	}

	printHours, err := s.printTime.Estimate(metrics.VolumeCm3, score, cfg.InfillFraction, printSpeed)
	if err != nil {
		return model.EstimationResult{}, err
	}

	recommended := s.settings.Recommend(score, material)

	// Rounding happens once, at the pipeline boundary: mass and time to
	// 2 decimals, cost to 3 (tenth of a cent). Cost is derived from the
	// unrounded mass.
	result := model.EstimationResult{
		ComplexityScore:     score,
		MassG:               roundTo(massG, 2),
		CostUSD:             roundTo(costUSD, 3),
		PrintTimeHours:      roundTo(printHours, 2),
		RecommendedSettings: recommended,
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	return result, nil
}

// roundTo rounds v half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// estimateKey hashes the canonical encoding of an estimation input.
// Floats are hashed by their IEEE-754 bits so the key distinguishes any
// inputs that could produce different outputs.
func estimateKey(metrics model.MeshMetrics, materialName string, infillFraction, printSpeed float64) uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeFloat := func(f float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}
	writeInt := func(i int) {
		binary.BigEndian.PutUint64(buf[:], uint64(i))
		_, _ = h.Write(buf[:])
	}

	writeFloat(metrics.VolumeCm3)
	writeFloat(metrics.SurfaceAreaCm2)
	writeFloat(metrics.BoundingBox.X)
	writeFloat(metrics.BoundingBox.Y)
	writeFloat(metrics.BoundingBox.Z)
	writeInt(metrics.TriangleCount)
	if metrics.IsWatertight {
		writeInt(1)
	} else {
		writeInt(0)
	}
	writeInt(metrics.ShellCount)
	_, _ = h.Write([]byte(materialName))
	writeFloat(infillFraction)
	writeFloat(printSpeed)

	return h.Sum64()
}
