package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KitCard is the atomic unit of the kitforge ecosystem: one analyzed part
// with its geometry, estimates, and material choice.
//
// @Description Analyzed part with geometry and engineering estimates
type KitCard struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	// PartName is the human-readable part name.
	PartName string `bson:"part_name" json:"part_name" example:"Tactical Grip"`
	// FileHash is the SHA-256 of the source model file, used for deduplication.
	FileHash string `bson:"file_hash,omitempty" json:"file_hash,omitempty"`

	// Metrics holds the geometry extracted by the mesh-loading collaborator.
	Metrics MeshMetrics `bson:"metrics" json:"metrics"`
	// Material is the material profile the estimate was computed with.
	Material MaterialProfile `bson:"material" json:"material"`
	// Config is the print configuration used for the estimate.
	Config PrintConfig `bson:"config" json:"config"`
	// Estimate is the pipeline output for this part.
	Estimate EstimationResult `bson:"estimate" json:"estimate"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
} // @name KitCard
