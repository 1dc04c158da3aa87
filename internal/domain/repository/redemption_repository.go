package repository

import (
	"context"

	"bookify/internal/domain/entity"
	"bookify/internal/errors"

	"github.com/google/uuid"
)

// ErrRedemptionNotFound is returned when a redemption is not found.
var ErrRedemptionNotFound = errors.New("redemption not found")

// RedemptionRepository defines the interface for loyalty redemption persistence.
type RedemptionRepository interface {
	// Create persists a new redemption.
	Create(ctx context.Context, redemption *entity.Redemption) error

	// FindByUserAndStatus lists a user's redemptions in the given status,
	// ordered by creation time ascending. Settlement relies on that order for
	// its first-match finalization.
	FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.RedemptionStatus) ([]*entity.Redemption, error)

	// UpdateStatus sets the redemption status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RedemptionStatus) error
}
