package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

func drawMetrics(t *rapid.T) model.MeshMetrics {
	return model.MeshMetrics{
		VolumeCm3:      rapid.Float64Range(0, 1e6).Draw(t, "volume"),
		SurfaceAreaCm2: rapid.Float64Range(0, 1e7).Draw(t, "surface_area"),
		BoundingBox: model.BoundingBox{
			X: rapid.Float64Range(0, 1000).Draw(t, "bbox_x"),
			Y: rapid.Float64Range(0, 1000).Draw(t, "bbox_y"),
			Z: rapid.Float64Range(0, 1000).Draw(t, "bbox_z"),
		},
		TriangleCount: rapid.IntRange(0, 10_000_000).Draw(t, "triangles"),
		IsWatertight:  rapid.Bool().Draw(t, "watertight"),
		ShellCount:    rapid.IntRange(1, 50).Draw(t, "shells"),
	}
}

func TestComplexityScoreBounds(t *testing.T) {
	scorer := NewComplexityScorer()

	rapid.Check(t, func(t *rapid.T) {
		score := scorer.Score(drawMetrics(t))

		assert.False(t, math.IsNaN(score))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, maxComplexityScore)
	})
}

func TestEstimateOutputsAreFiniteAndNonNegative(t *testing.T) {
	estimator := NewEstimatorService()
	materials := estimator.Catalog().Names()

	rapid.Check(t, func(t *rapid.T) {
		metrics := drawMetrics(t)
		material := rapid.SampledFrom(materials).Draw(t, "material")
		cfg := model.PrintConfig{
			InfillFraction:     rapid.Float64Range(0, 1).Draw(t, "infill"),
			PrintSpeedCm3PerHr: rapid.Float64Range(1, 500).Draw(t, "speed"),
		}

		result, err := estimator.Estimate(metrics, material, cfg)
		require.NoError(t, err)

		for name, v := range map[string]float64{
			"complexity": result.ComplexityScore,
			"mass":       result.MassG,
			"cost":       result.CostUSD,
			"time":       result.PrintTimeHours,
		} {
			assert.False(t, math.IsNaN(v), "%s is NaN", name)
			assert.False(t, math.IsInf(v, 0), "%s is infinite", name)
			assert.GreaterOrEqual(t, v, 0.0, "%s is negative", name)
		}
		assert.Positive(t, result.RecommendedSettings.LayerHeightMm)
		assert.Positive(t, result.RecommendedSettings.InfillPercent)
	})
}

func TestEstimateIsDeterministic(t *testing.T) {
	estimator := NewEstimatorService()
	materials := estimator.Catalog().Names()

	rapid.Check(t, func(t *rapid.T) {
		metrics := drawMetrics(t)
		material := rapid.SampledFrom(materials).Draw(t, "material")
		cfg := model.PrintConfig{
			InfillFraction:     rapid.Float64Range(0, 1).Draw(t, "infill"),
			PrintSpeedCm3PerHr: rapid.Float64Range(1, 500).Draw(t, "speed"),
		}

		first, err := estimator.Estimate(metrics, material, cfg)
		require.NoError(t, err)
		second, err := estimator.Estimate(metrics, material, cfg)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestMassMonotonicInVolumeAndInfill(t *testing.T) {
	estimator := NewMassCostEstimator()
	pla := model.MaterialProfile{Name: model.MaterialPLA, DensityGCm3: 1.24, CostPerGram: 0.02}

	rapid.Check(t, func(t *rapid.T) {
		volume := rapid.Float64Range(0, 1e6).Draw(t, "volume")
		extraVolume := rapid.Float64Range(0, 1e6).Draw(t, "extra_volume")
		infill := rapid.Float64Range(0, 1).Draw(t, "infill")

		smaller, _, err := estimator.Estimate(volume, pla, infill)
		require.NoError(t, err)
		larger, _, err := estimator.Estimate(volume+extraVolume, pla, infill)
		require.NoError(t, err)

		assert.LessOrEqual(t, smaller, larger)
	})
}
