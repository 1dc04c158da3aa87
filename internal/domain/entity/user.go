// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"bookify/internal/errors"

	"github.com/google/uuid"
)

// ErrInsufficientLoyaltyPoints is returned when a deduction would drive the
// loyalty balance negative.
var ErrInsufficientLoyaltyPoints = errors.New("insufficient loyalty points")

// User is the core identity in the system. It carries the credential hash and
// role used by the delivery layer, plus a pointer to the loyalty profile.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier; unique across the platform.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the user's password.
	Role         string    // Role name, one of constants.RoleUser / constants.RoleAdmin.
	Profile      *UserProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile holds the commerce-facing data of a user, most importantly the
// loyalty point balance mutated by redemptions and payment settlement.
type UserProfile struct {
	UserID        uuid.UUID // Foreign key to the owning User.
	LoyaltyPoints int       // Non-negative loyalty point balance.
	UpdatedAt     time.Time
}

// AddLoyaltyPoints credits points to the balance. Negative deltas are ignored.
func (p *UserProfile) AddLoyaltyPoints(points int) {
	if points <= 0 {
		return
	}
	p.LoyaltyPoints += points
}

// DeductLoyaltyPoints debits points from the balance. The balance never goes
// negative; an over-deduction fails without mutating the profile.
func (p *UserProfile) DeductLoyaltyPoints(points int) error {
	if points < 0 {
		return errors.New("deduction must not be negative")
	}
	if p.LoyaltyPoints < points {
		return ErrInsufficientLoyaltyPoints
	}
	p.LoyaltyPoints -= points

	return nil
}
