// Package model defines the core domain entities for the kitforge service.
package model

// BoundingBox holds the axis-aligned extents of a mesh in centimeters.
//
// @Description Axis-aligned bounding box extents in cm
// @Example {"x": 5.0, "y": 3.0, "z": 2.0}
type BoundingBox struct {
	X float64 `json:"x" example:"5.0"`
	Y float64 `json:"y" example:"3.0"`
	Z float64 `json:"z" example:"2.0"`
}

// Max returns the largest extent of the bounding box.
func (b BoundingBox) Max() float64 {
	m := b.X
	if b.Y > m {
		m = b.Y
	}
	if b.Z > m {
		m = b.Z
	}
	return m
}

// Min returns the smallest extent of the bounding box.
func (b BoundingBox) Min() float64 {
	m := b.X
	if b.Y < m {
		m = b.Y
	}
	if b.Z < m {
		m = b.Z
	}
	return m
}

// MeshMetrics holds the geometric measurements extracted from a 3D model
// by the mesh-loading collaborator. The estimation pipeline treats it as
// an immutable value and never mutates it.
//
// @Description Geometric measurements of a 3D part
// @Example {"volume_cm3": 30, "surface_area_cm2": 62, "bounding_box": {"x": 5, "y": 3, "z": 2}, "triangle_count": 12, "is_watertight": true, "shell_count": 1}
type MeshMetrics struct {
	// VolumeCm3 is the enclosed volume in cubic centimeters.
	VolumeCm3 float64 `bson:"volume_cm3" json:"volume_cm3" example:"30"`
	// SurfaceAreaCm2 is the total surface area in square centimeters.
	SurfaceAreaCm2 float64 `bson:"surface_area_cm2" json:"surface_area_cm2" example:"62"`
	// BoundingBox holds the part extents in centimeters.
	BoundingBox BoundingBox `bson:"bounding_box" json:"bounding_box"`
	// TriangleCount is the number of triangles in the mesh.
	TriangleCount int `bson:"triangle_count" json:"triangle_count" example:"12"`
	// IsWatertight reports whether the mesh encloses a well-defined volume.
	IsWatertight bool `bson:"is_watertight" json:"is_watertight" example:"true"`
	// ShellCount is the number of disconnected solid bodies (1 = single solid).
	ShellCount int `bson:"shell_count" json:"shell_count" example:"1"`
} // @name MeshMetrics

// PrintConfig holds the per-request print parameters.
//
// @Description Print configuration for an estimation request
// @Example {"infill_fraction": 0.2}
type PrintConfig struct {
	// InfillFraction is the interior fill fraction in [0, 1].
	InfillFraction float64 `bson:"infill_fraction" json:"infill_fraction" example:"0.2"`
	// PrintSpeedCm3PerHr is the deposition rate in cm3/hour.
	// Zero means the server-configured default is used.
	PrintSpeedCm3PerHr float64 `bson:"print_speed_cm3_per_hr,omitempty" json:"print_speed_cm3_per_hr,omitempty" example:"20"`
} // @name PrintConfig

// RecommendedSettings holds the suggested slicer configuration for a part.
//
// @Description Recommended print settings
// @Example {"layer_height_mm": 0.28, "infill_percent": 15, "supports_required": false}
type RecommendedSettings struct {
	// LayerHeightMm is the suggested layer height in millimeters.
	LayerHeightMm float64 `bson:"layer_height_mm" json:"layer_height_mm" example:"0.28"`
	// InfillPercent is the suggested infill percentage.
	InfillPercent int `bson:"infill_percent" json:"infill_percent" example:"15"`
	// SupportsRequired reports whether support structures are recommended.
	SupportsRequired bool `bson:"supports_required" json:"supports_required" example:"false"`
} // @name RecommendedSettings

// EstimationResult is the complete output of the estimation pipeline for
// one analysis request. It is immutable once constructed.
//
// @Description Complete engineering estimate for a part
// @Example {"complexity_score": 0, "mass_g": 16.37, "cost_usd": 0.327, "print_time_hours": 1.32, "recommended_settings": {"layer_height_mm": 0.28, "infill_percent": 15, "supports_required": false}}
type EstimationResult struct {
	// ComplexityScore rates print difficulty on a 0-10 scale.
	ComplexityScore float64 `bson:"complexity_score" json:"complexity_score" example:"0"`
	// MassG is the estimated part mass in grams.
	MassG float64 `bson:"mass_g" json:"mass_g" example:"16.37"`
	// CostUSD is the estimated material cost in US dollars.
	CostUSD float64 `bson:"cost_usd" json:"cost_usd" example:"0.327"`
	// PrintTimeHours is the estimated print duration in hours.
	PrintTimeHours float64 `bson:"print_time_hours" json:"print_time_hours" example:"1.32"`
	// RecommendedSettings is the suggested print configuration.
	RecommendedSettings RecommendedSettings `bson:"recommended_settings" json:"recommended_settings"`
} // @name EstimationResult
