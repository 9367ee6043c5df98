package service

import (
	"github.com/kitforge/kitforge-service/internal/domain/model"
)

const (
	// epsilon guards ratio denominators against degenerate zero-volume
	// and zero-extent meshes. Without it the ratios diverge to +Inf.
	epsilon = 1e-6

	// maxComplexityScore is the upper bound of the complexity scale.
	maxComplexityScore = 10.0
)

// Sub-score thresholds. Boundaries are inclusive: hitting a threshold
// exactly awards the point.
const (
	triangleDensityHigh = 1000.0
	triangleDensityMid  = 500.0
	aspectRatioHigh     = 10.0
	aspectRatioMid      = 5.0
	surfaceVolumeHigh   = 50.0
	surfaceVolumeMid    = 25.0
)

// ComplexityScorer rates how difficult a part is to print on a 0-10
// scale, from five independent geometric sub-scores worth 0-2 points
// each. The scorer is stateless and safe for concurrent use.
type ComplexityScorer struct{}

// NewComplexityScorer creates a new complexity scorer.
func NewComplexityScorer() *ComplexityScorer {
	return &ComplexityScorer{}
}

// Score computes the complexity score for the given mesh metrics.
// The result is always in [0, 10] and never NaN, including for
// degenerate meshes with zero volume or zero extents.
func (s *ComplexityScorer) Score(metrics model.MeshMetrics) float64 {
	score := s.triangleDensityScore(metrics) +
		s.shellCountScore(metrics) +
		s.aspectRatioScore(metrics) +
		s.watertightScore(metrics) +
		s.surfaceVolumeScore(metrics)

	// The sub-scores sum to at most 10; the clamp keeps the bound even
	// if a band table changes.
	if score > maxComplexityScore {
		score = maxComplexityScore
	}
	return score
}

// triangleDensityScore rates triangles per cm3: dense meshes take longer
// to slice and hide fine detail.
func (s *ComplexityScorer) triangleDensityScore(metrics model.MeshMetrics) float64 {
	density := float64(metrics.TriangleCount) / max(metrics.VolumeCm3, epsilon)
	switch {
	case density >= triangleDensityHigh:
		return 2
	case density >= triangleDensityMid:
		return 1
	default:
		return 0
	}
}

// shellCountScore rates disconnected solid bodies: multi-shell parts
// need per-body orientation and bed placement.
func (s *ComplexityScorer) shellCountScore(metrics model.MeshMetrics) float64 {
	switch {
	case metrics.ShellCount > 3:
		return 2
	case metrics.ShellCount > 1:
		return 1
	default:
		return 0
	}
}

// aspectRatioScore rates tall/thin geometry, which is prone to toppling
// and layer shifting.
func (s *ComplexityScorer) aspectRatioScore(metrics model.MeshMetrics) float64 {
	ratio := metrics.BoundingBox.Max() / max(metrics.BoundingBox.Min(), epsilon)
	switch {
	case ratio >= aspectRatioHigh:
		return 2
	case ratio >= aspectRatioMid:
		return 1
	default:
		return 0
	}
}

// watertightScore penalizes open meshes, which need repair before slicing.
func (s *ComplexityScorer) watertightScore(metrics model.MeshMetrics) float64 {
	if !metrics.IsWatertight {
		return 2
	}
	return 0
}

// surfaceVolumeScore rates surface area per cm3: high ratios indicate
// thin walls.
func (s *ComplexityScorer) surfaceVolumeScore(metrics model.MeshMetrics) float64 {
	ratio := metrics.SurfaceAreaCm2 / max(metrics.VolumeCm3, epsilon)
	switch {
	case ratio >= surfaceVolumeHigh:
		return 2
	case ratio >= surfaceVolumeMid:
		return 1
	default:
		return 0
	}
}
