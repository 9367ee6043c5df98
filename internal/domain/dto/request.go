// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/kitforge/kitforge-service/internal/domain/model"
)

// EstimateRequest represents the JSON request body for the estimate endpoint.
//
// The mesh metrics come from the caller's mesh-loading step; the service
// performs no mesh parsing itself. Validation rejects negative geometry
// before the pipeline runs; range errors on infill and print speed are
// the pipeline's own contract checks.
//
// @Description Request to estimate mass, cost, print time and settings for a part
// @Example {"metrics": {"volume_cm3": 30, "surface_area_cm2": 62, "bounding_box": {"x": 5, "y": 3, "z": 2}, "triangle_count": 12, "is_watertight": true, "shell_count": 1}, "material": "PLA", "config": {"infill_fraction": 0.2}}
type EstimateRequest struct {
	// Metrics holds the extracted mesh geometry.
	Metrics model.MeshMetrics `json:"metrics" binding:"required"`
	// Material is the catalog material name (PLA, ABS, PETG, TPU, Nylon, ASA).
	Material string `json:"material" binding:"required" example:"PLA"`
	// Config holds the print parameters for this request.
	Config model.PrintConfig `json:"config"`
} // @name EstimateRequest

// CreateKitCardRequest represents the JSON request body for creating a kit card.
//
// @Description Request to analyze a part and persist the result as a kit card
type CreateKitCardRequest struct {
	// PartName is the human-readable part name.
	PartName string `json:"part_name" binding:"required,min=1,max=120" example:"Tactical Grip"`
	// FileHash is the optional SHA-256 of the source model file.
	FileHash string `json:"file_hash,omitempty" example:"a3f5..."`
	// Metrics holds the extracted mesh geometry.
	Metrics model.MeshMetrics `json:"metrics" binding:"required"`
	// Material is the catalog material name.
	Material string `json:"material" binding:"required" example:"PLA"`
	// Config holds the print parameters for this request.
	Config model.PrintConfig `json:"config"`
} // @name CreateKitCardRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNegativeVolume is returned when volume_cm3 is negative.
	ErrNegativeVolume = &ValidationError{
		Field:   "metrics.volume_cm3",
		Message: "must be non-negative",
	}
	// ErrNegativeSurfaceArea is returned when surface_area_cm2 is negative.
	ErrNegativeSurfaceArea = &ValidationError{
		Field:   "metrics.surface_area_cm2",
		Message: "must be non-negative",
	}
	// ErrNegativeExtent is returned when a bounding box extent is negative.
	ErrNegativeExtent = &ValidationError{
		Field:   "metrics.bounding_box",
		Message: "extents must be non-negative",
	}
	// ErrNegativeTriangleCount is returned when triangle_count is negative.
	ErrNegativeTriangleCount = &ValidationError{
		Field:   "metrics.triangle_count",
		Message: "must be non-negative",
	}
	// ErrInvalidShellCount is returned when shell_count is not positive.
	ErrInvalidShellCount = &ValidationError{
		Field:   "metrics.shell_count",
		Message: "must be a positive integer",
	}
	// ErrMaterialRequired is returned when the material name is empty.
	ErrMaterialRequired = &ValidationError{
		Field:   "material",
		Message: "is required",
	}
	// ErrPartNameRequired is returned when the part name is empty.
	ErrPartNameRequired = &ValidationError{
		Field:   "part_name",
		Message: "is required",
	}
)

// validateMetrics checks the field constraints on caller-supplied geometry.
// Zero volume and zero extents are valid degenerate inputs, only negative
// values are rejected here.
func validateMetrics(m model.MeshMetrics) error {
	if m.VolumeCm3 < 0 {
		return ErrNegativeVolume
	}
	if m.SurfaceAreaCm2 < 0 {
		return ErrNegativeSurfaceArea
	}
	if m.BoundingBox.X < 0 || m.BoundingBox.Y < 0 || m.BoundingBox.Z < 0 {
		return ErrNegativeExtent
	}
	if m.TriangleCount < 0 {
		return ErrNegativeTriangleCount
	}
	if m.ShellCount < 1 {
		return ErrInvalidShellCount
	}
	return nil
}

// Validate performs custom validation on the estimate request.
// Returns an error if validation fails, nil otherwise.
func (r *EstimateRequest) Validate() error {
	if r.Material == "" {
		return ErrMaterialRequired
	}
	return validateMetrics(r.Metrics)
}

// Validate performs custom validation on the kit card creation request.
func (r *CreateKitCardRequest) Validate() error {
	if r.PartName == "" {
		return ErrPartNameRequired
	}
	if r.Material == "" {
		return ErrMaterialRequired
	}
	return validateMetrics(r.Metrics)
}
