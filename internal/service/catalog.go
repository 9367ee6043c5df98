// Package service contains the business logic for the kitforge service.
package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// ErrUnknownMaterial is returned when a material name is not in the catalog.
var ErrUnknownMaterial = errors.New("unknown material")

// MaterialCatalog is the fixed table of supported print materials.
// It is read-only reference data baked in at process start; lookups are
// pure and safe for concurrent use.
type MaterialCatalog struct {
	profiles map[string]model.MaterialProfile
}

// NewMaterialCatalog creates the catalog with the six supported materials.
func NewMaterialCatalog() *MaterialCatalog {
	return &MaterialCatalog{
		profiles: map[string]model.MaterialProfile{
			model.MaterialPLA:   {Name: model.MaterialPLA, DensityGCm3: 1.24, CostPerGram: 0.02},
			model.MaterialABS:   {Name: model.MaterialABS, DensityGCm3: 1.04, CostPerGram: 0.025},
			model.MaterialPETG:  {Name: model.MaterialPETG, DensityGCm3: 1.27, CostPerGram: 0.03},
			model.MaterialTPU:   {Name: model.MaterialTPU, DensityGCm3: 1.21, CostPerGram: 0.05},
			model.MaterialNylon: {Name: model.MaterialNylon, DensityGCm3: 1.14, CostPerGram: 0.06},
			model.MaterialASA:   {Name: model.MaterialASA, DensityGCm3: 1.07, CostPerGram: 0.035},
		},
	}
}

// Lookup returns the material profile for the given name.
// Returns ErrUnknownMaterial when the name is not one of the fixed entries.
func (c *MaterialCatalog) Lookup(name string) (model.MaterialProfile, error) {
	profile, ok := c.profiles[name]
	if !ok {
		return model.MaterialProfile{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return profile, nil
}

// Names returns the catalog material names in sorted order.
func (c *MaterialCatalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
