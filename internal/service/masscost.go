package service

import (
	"errors"
	"fmt"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// ErrInvalidInfill is returned when the infill fraction is outside [0, 1].
// An out-of-range infill indicates a caller bug, so it fails instead of
// being clamped silently.
var ErrInvalidInfill = errors.New("infill fraction must be in [0, 1]")

const (
	// solidFloorFraction models the solid minimum of a printed part:
	// two perimeters plus top/bottom layers are roughly 30% solid even
	// at 0% infill.
	solidFloorFraction = 0.3
	// infillRampFraction is the remaining density range covered by the
	// linear infill ramp up to full density.
	infillRampFraction = 0.7
)

// MassCostEstimator converts volume, material, and infill into mass and
// material cost. It is stateless and safe for concurrent use.
type MassCostEstimator struct{}

// NewMassCostEstimator creates a new mass/cost estimator.
func NewMassCostEstimator() *MassCostEstimator {
	return &MassCostEstimator{}
}

// EffectiveDensity returns the material density adjusted for partial
// infill: density * (0.3 + 0.7 * infill).
func (e *MassCostEstimator) EffectiveDensity(material model.MaterialProfile, infillFraction float64) float64 {
	return material.DensityGCm3 * (solidFloorFraction + infillRampFraction*infillFraction)
}

// Estimate returns the estimated mass in grams and material cost in USD.
// Both outputs are non-negative whenever volume is non-negative.
func (e *MassCostEstimator) Estimate(volumeCm3 float64, material model.MaterialProfile, infillFraction float64) (massG, costUSD float64, err error) {
	if infillFraction < 0 || infillFraction > 1 {
		return 0, 0, fmt.Errorf("%w: got %v", ErrInvalidInfill, infillFraction)
	}

	massG = volumeCm3 * e.EffectiveDensity(material, infillFraction)
	costUSD = massG * material.CostPerGram
	return massG, costUSD, nil
}
