package models

import "time"

// Role and membership values stored on a user record.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	MembershipNormal  = "normal"
	MembershipPremium = "premium"
	MembershipGold    = "gold"

	BadgeBronze = "Bronze"
	BadgeNormal = "Normal"
	BadgeGold   = "Gold"
)

type User struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"unique;not null" json:"email"`
	Photo      string    `json:"photo"`
	Role       string    `gorm:"default:user" json:"role"`
	Membership string    `gorm:"default:normal" json:"membership"`
	Badge      string    `json:"badge"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Photo string `json:"photo"`
}

type MembershipRequest struct {
	Membership string `json:"membership" binding:"required"`
}

// BadgeFor maps a membership tier to the badge shown on the profile.
// Recomputed server-side on every membership update, never trusted from
// the client.
func BadgeFor(membership string) string {
	if membership == MembershipPremium || membership == MembershipGold {
		return BadgeGold
	}
	return BadgeNormal
}
