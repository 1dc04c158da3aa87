// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when creating a user whose email is taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user (with loyalty profile) by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user (with loyalty profile) by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its loyalty profile.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile persists the loyalty profile of a user.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error
}
