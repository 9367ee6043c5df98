package service

import (
	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// Recommendation tiers. Scores at or below lowTierMax print fast and
// coarse; scores at or above highTierMin need fine layers; everything
// between gets the standard profile. The three tiers cover [0, 10] with
// no gaps or overlaps.
const (
	lowTierMax  = 3.0
	highTierMin = 7.0
)

var (
	lowTierSettings  = model.RecommendedSettings{LayerHeightMm: 0.28, InfillPercent: 15, SupportsRequired: false}
	midTierSettings  = model.RecommendedSettings{LayerHeightMm: 0.20, InfillPercent: 20, SupportsRequired: true}
	highTierSettings = model.RecommendedSettings{LayerHeightMm: 0.12, InfillPercent: 25, SupportsRequired: true}
)

// SettingsRecommender converts a complexity score and material into a
// suggested print configuration. It is stateless and safe for
// concurrent use.
type SettingsRecommender struct{}

// NewSettingsRecommender creates a new settings recommender.
func NewSettingsRecommender() *SettingsRecommender {
	return &SettingsRecommender{}
}

// Recommend returns the suggested settings for the given complexity and
// material. Materials that need a heated enclosure (ABS, Nylon, ASA)
// force supports regardless of complexity; the override is applied after
// the tier lookup.
func (r *SettingsRecommender) Recommend(complexityScore float64, material model.MaterialProfile) model.RecommendedSettings {
	var settings model.RecommendedSettings
	switch {
	case complexityScore <= lowTierMax:
		settings = lowTierSettings
	case complexityScore >= highTierMin:
		settings = highTierSettings
	default:
		settings = midTierSettings
	}

	if material.RequiresSupportsProfile() {
		settings.SupportsRequired = true
	}

	return settings
}
