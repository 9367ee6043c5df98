package model

// Material names form a closed enumeration; the catalog in the service
// layer is the single source of their physical coefficients.
const (
	MaterialPLA   = "PLA"
	MaterialABS   = "ABS"
	MaterialPETG  = "PETG"
	MaterialTPU   = "TPU"
	MaterialNylon = "Nylon"
	MaterialASA   = "ASA"
)

// MaterialProfile holds the physical and cost coefficients of a print
// material. Profiles are static reference data, initialized once at
// process start and never mutated.
//
// @Description Physical and cost coefficients of a print material
// @Example {"name": "PLA", "density_g_cm3": 1.24, "cost_per_gram": 0.02}
type MaterialProfile struct {
	// Name is the catalog name of the material.
	Name string `bson:"name" json:"name" example:"PLA"`
	// DensityGCm3 is the solid density in g/cm3.
	DensityGCm3 float64 `bson:"density_g_cm3" json:"density_g_cm3" example:"1.24"`
	// CostPerGram is the filament cost in USD per gram.
	CostPerGram float64 `bson:"cost_per_gram" json:"cost_per_gram" example:"0.02"`
} // @name MaterialProfile

// RequiresSupportsProfile reports whether the material is known to need a
// dedicated supports profile (heated enclosure materials warp without one).
func (m MaterialProfile) RequiresSupportsProfile() bool {
	switch m.Name {
	case MaterialABS, MaterialNylon, MaterialASA:
		return true
	default:
		return false
	}
}
