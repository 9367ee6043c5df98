// Package model defines user-related domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription tiers.
const (
	TierFree = "free"
	TierPaid = "paid"
)

// DefaultFreeTierCardLimit is the number of kit cards a free-tier user
// may generate per month.
const DefaultFreeTierCardLimit = 5

// User represents a user in the system.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"` // Never serialize password
	// Tier is the subscription tier ("free" or "paid").
	Tier string `bson:"tier" json:"tier"`
	// CardsThisMonth counts kit cards generated in the current quota window.
	CardsThisMonth int `bson:"cards_this_month" json:"cards_this_month"`
	// QuotaResetAt is when CardsThisMonth was last reset.
	QuotaResetAt time.Time `bson:"quota_reset_at" json:"quota_reset_at"`
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// CanGenerateCard reports whether the user may generate another kit card
// under the given free-tier monthly limit. Paid users are unlimited.
func (u *User) CanGenerateCard(freeLimit int) bool {
	if u.Tier == TierPaid {
		return true
	}
	if freeLimit <= 0 {
		freeLimit = DefaultFreeTierCardLimit
	}
	return u.CardsThisMonth < freeLimit
}
